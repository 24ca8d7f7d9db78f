// file: model/request.go

package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload of POST /v1/accounts/.
type CreateAccountRequest struct {
	Name         string       `json:"name" validate:"required"`
	Email        string       `json:"email" validate:"required,email"`
	Subscription Subscription `json:"subscription" validate:"omitempty,oneof=Free Premium Gold"`
}

// UpdateAccountRequest is a partial update; nil fields are not sent.
type UpdateAccountRequest struct {
	Name         *string       `json:"name,omitempty" validate:"omitempty,min=1"`
	Email        *string       `json:"email,omitempty" validate:"omitempty,email"`
	Subscription *Subscription `json:"subscription,omitempty" validate:"omitempty,oneof=Free Premium Gold"`
}

// NewUpdateAccountRequest builds a partial update from form values, keeping
// only the fields that were filled in.
func NewUpdateAccountRequest(name, email string, subscription Subscription) UpdateAccountRequest {
	var req UpdateAccountRequest
	if name = strings.TrimSpace(name); name != "" {
		req.Name = &name
	}
	if email = strings.TrimSpace(email); email != "" {
		req.Email = &email
	}
	if subscription != "" {
		req.Subscription = &subscription
	}
	return req
}

// Empty reports whether the update carries no field at all.
func (r UpdateAccountRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Subscription == nil
}

// UpdateBalanceRequest carries the signed balance delta of
// PATCH /v1/accounts/operation/{iban}: positive credits, negative debits.
type UpdateBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// MarshalJSON sends the delta as a JSON number rather than a quoted string.
func (r UpdateBalanceRequest) MarshalJSON() ([]byte, error) {
	return []byte(`{"balance":` + r.Balance.String() + `}`), nil
}

// DeleteCardRequest is the body of DELETE /v1/accounts/card/{iban}.
type DeleteCardRequest struct {
	PAN string `json:"pan" validate:"required"`
}
