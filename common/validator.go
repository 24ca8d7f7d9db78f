package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAndDecode reads a JSON body into payload and checks its validate
// tags. An empty body leaves payload untouched before validation.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil && !errors.Is(err, io.EOF) {
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewAppError(http.StatusBadRequest, validationErrors.Error(), nil)
		}
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	return nil
}
