package handler

import (
	"errors"
	"net/http"

	"go-bank-console/client"
	"go-bank-console/common"
	"go-bank-console/service"
	"go-bank-console/view"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// pageError maps the result of a page operation to an HTTP error carrying the
// page view. Failures reported by the accounts service keep their 4xx status;
// 5xx answers and network failures become 502 and 503.
func pageError(err error, pv view.PageView) *common.AppError {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, service.ErrDeleteNotConfirmed):
		return common.NewAppError(http.StatusBadRequest, "Account deletion was not confirmed", nil).WithPage(pv)
	case service.IsValidationError(err):
		return common.NewAppError(http.StatusBadRequest, warningText(err, pv), nil).WithPage(pv)
	case errors.Is(err, service.ErrOperationInFlight):
		return common.NewAppError(http.StatusConflict, "Another operation is still in progress", nil).WithPage(pv)
	case errors.Is(err, service.ErrPageClosed):
		return common.NewAppError(http.StatusGone, "The page is no longer active", nil).WithPage(pv)
	case errors.As(err, &apiErr):
		code := apiErr.StatusCode
		if code < http.StatusBadRequest || code >= http.StatusInternalServerError {
			code = http.StatusBadGateway
		}
		return common.NewAppError(code, errorText(err, pv), err).WithPage(pv)
	case errors.Is(err, client.ErrNetwork):
		return common.NewAppError(http.StatusServiceUnavailable, errorText(err, pv), err).WithPage(pv)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Unexpected error", err).WithPage(pv)
	}
}

// warningText is the warning shown on the page for a rejected form.
func warningText(err error, pv view.PageView) string {
	if pv.Message != nil && pv.Message.Kind == service.MessageWarning {
		return pv.Message.Text
	}
	return err.Error()
}

// errorText is the error shown on the page for a failed request.
func errorText(err error, pv view.PageView) string {
	if pv.Error != "" {
		return pv.Error
	}
	return client.Message(err)
}
