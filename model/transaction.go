package model

import "github.com/shopspring/decimal"

// Direction tells whether a transaction credits or debits the account.
type Direction string

const (
	DirectionDeposit  Direction = "deposit"
	DirectionWithdraw Direction = "withdraw"
)

// TransactionIntent is what the transaction form produces. It never leaves
// the client as such; it is turned into a balance delta.
type TransactionIntent struct {
	Direction Direction       `json:"type" validate:"required,oneof=deposit withdraw"`
	Amount    decimal.Decimal `json:"amount"`
}

// Delta returns the signed balance delta: +|amount| for deposits and
// -|amount| for withdrawals.
func (t TransactionIntent) Delta() decimal.Decimal {
	abs := t.Amount.Abs()
	if t.Direction == DirectionWithdraw {
		return abs.Neg()
	}
	return abs
}
