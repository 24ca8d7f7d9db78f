package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork wraps every failure where no response was received from the
// accounts service, timeouts included.
var ErrNetwork = errors.New("network error")

// APIError is a non-2xx answer from the accounts service. Body is the payload
// exactly as received.
type APIError struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("accounts service returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return apiErr
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		apiErr.Detail = text
		return apiErr
	}
	if !bytes.Equal(payload.Detail, []byte("null")) {
		apiErr.Detail = string(payload.Detail)
	}
	return apiErr
}

// Message returns the text shown to the user for a failed operation: the
// backend "detail" when there is one, a generic message otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return fmt.Sprintf("request failed with status code %d", apiErr.StatusCode)
	}
	if errors.Is(err, ErrNetwork) {
		return "network error: the accounts service could not be reached"
	}
	return err.Error()
}

// IsNotFound reports whether err is a 404 from the accounts service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
