package service

import "errors"

// Validation failures. They are reported on the page as warnings and never
// reach the accounts service.
var (
	ErrAmountNotPositive   = errors.New("amount must be a number greater than zero")
	ErrInsufficientBalance = errors.New("insufficient balance for this withdrawal")
	ErrIBANRequired        = errors.New("an IBAN is required")
	ErrPANRequired         = errors.New("a card number (PAN) is required")
	ErrNoAccountLoaded     = errors.New("no account is loaded")
	ErrNothingToUpdate     = errors.New("no field to update")
	ErrDeleteNotConfirmed  = errors.New("account deletion was not confirmed")
	ErrInvalidForm         = errors.New("invalid form")
)

// Page lifecycle errors.
var (
	ErrOperationInFlight = errors.New("another operation is still in progress")
	ErrPageClosed        = errors.New("page is no longer active")
)

// IsValidationError reports whether err was raised by local form validation.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrAmountNotPositive, ErrInsufficientBalance, ErrIBANRequired, ErrPANRequired,
		ErrNoAccountLoaded, ErrNothingToUpdate, ErrInvalidForm,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
