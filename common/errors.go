package common

import (
	"encoding/json"
	"net/http"

	"go-bank-console/logger"

	"github.com/sirupsen/logrus"
)

// AppError is the error answer of every console endpoint. Page carries the
// page view when the failure was reported on a page.
type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Page    interface{} `json:"page,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithPage attaches the page view to the error.
func (e *AppError) WithPage(page interface{}) *AppError {
	e.Page = page
	return e
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		fields := logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}
		if e.Code >= http.StatusInternalServerError {
			logger.Log.WithFields(fields).Error(e.Message)
		} else {
			logger.Log.WithFields(fields).Warn(e.Message)
		}
	}

	WriteJSON(w, e.Code, e)
}

// WriteJSON writes payload with the given status code.
func WriteJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.WithError(err).Error("Failed to encode response")
	}
}
