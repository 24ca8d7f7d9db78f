package service

import (
	"errors"
	"fmt"
	"strings"

	"go-bank-console/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// validateForm checks the validate tags of a form payload and folds the
// field errors into a single ErrInvalidForm.
func validateForm(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "email":
			parts = append(parts, field+" must be a valid email address")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidForm, strings.Join(parts, "; "))
}

// ParseAmount reads an amount typed in a form. Empty, unparsable, zero and
// negative inputs are all rejected with ErrAmountNotPositive.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrAmountNotPositive
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}
	return amount, nil
}

// TransactionForm is the deposit/withdraw form of the account detail page.
type TransactionForm struct {
	Direction model.Direction `json:"type"`
	Amount    string          `json:"amount"`
}

// Validate turns the form into a TransactionIntent. The amount must be
// positive and a withdrawal may not exceed the known balance. The balance
// check is advisory; the accounts service has the final word.
func (f TransactionForm) Validate(balance decimal.Decimal) (model.TransactionIntent, error) {
	direction := f.Direction
	if direction == "" {
		direction = model.DirectionDeposit
	}

	intent := model.TransactionIntent{Direction: direction}
	if err := validateForm(intent); err != nil {
		return model.TransactionIntent{}, err
	}

	amount, err := ParseAmount(f.Amount)
	if err != nil {
		return model.TransactionIntent{}, err
	}
	intent.Amount = amount

	if direction == model.DirectionWithdraw && amount.GreaterThan(balance) {
		return model.TransactionIntent{}, ErrInsufficientBalance
	}
	return intent, nil
}
