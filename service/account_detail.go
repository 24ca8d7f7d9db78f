package service

import (
	"context"
	"strings"

	"go-bank-console/client"
	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AccountDetail shows a single account, looked up by the IBAN in its route,
// together with the deposit/withdraw form.
type AccountDetail struct {
	*Page
	client client.IAccountClient
	iban   string
}

func NewAccountDetail(c client.IAccountClient, iban string, opts PageOptions) *AccountDetail {
	return &AccountDetail{
		Page:   newPage("accountDetail", opts),
		client: c,
		iban:   strings.TrimSpace(iban),
	}
}

// IBAN is the route parameter the page was opened with.
func (a *AccountDetail) IBAN() string {
	return a.iban
}

// Open loads the account. A 404 leaves the page errored with the detail
// returned by the service.
func (a *AccountDetail) Open(ctx context.Context) error {
	const op = "open"

	if a.iban == "" {
		return a.reject(op, ErrIBANRequired)
	}

	token, err := a.begin(op)
	if err != nil {
		return err
	}
	acc, err := a.client.GetAccountByIBAN(ctx, a.iban)
	if err != nil {
		a.fail(token, op, "Loading the account", err)
		return err
	}
	a.succeed(token, op, acc, "Account loaded successfully")
	return nil
}

// Submit validates the transaction form against the displayed balance and
// sends it to the accounts service. The page shows the account returned by
// the service afterwards.
func (a *AccountDetail) Submit(ctx context.Context, form TransactionForm) error {
	const op = "transaction"

	acc := a.Account()
	if acc == nil {
		return a.reject(op, ErrNoAccountLoaded)
	}

	intent, err := form.Validate(acc.Balance)
	if err != nil {
		return a.reject(op, err)
	}

	token, err := a.begin(op)
	if err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"iban":   acc.IBAN,
		"type":   intent.Direction,
		"amount": intent.Amount.String(),
	}).Info("Submitting transaction")

	var call func(context.Context, string, decimal.Decimal) (*model.Account, error)
	success := "Deposit completed successfully"
	if intent.Direction == model.DirectionWithdraw {
		call = a.client.Withdraw
		success = "Withdrawal completed successfully"
	} else {
		call = a.client.Deposit
	}

	updated, err := call(ctx, acc.IBAN, intent.Amount)
	if err == nil && updated == nil {
		updated, err = a.client.GetAccountByIBAN(ctx, acc.IBAN)
	}
	if err != nil {
		a.fail(token, op, "Processing the transaction", err)
		return err
	}
	a.succeed(token, op, updated, success)
	return nil
}
