package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go-bank-console/common"
	"go-bank-console/service"
	"go-bank-console/view"
)

// snapshotter is implemented by every page controller.
type snapshotter interface {
	Snapshot() service.State
}

// respondPage writes the page view after an operation, or the mapped error.
func respondPage(w http.ResponseWriter, name string, page snapshotter, code int, err error) *common.AppError {
	pv := view.NewPageView(name, page.Snapshot())
	if err != nil {
		return pageError(err, pv)
	}
	common.WriteJSON(w, code, pv)
	return nil
}

// formAmount accepts an amount sent either as a JSON string or a number.
type formAmount string

func (a *formAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = formAmount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a string: %w", err)
	}
	*a = formAmount(n.String())
	return nil
}
