package client

import (
	"context"
	"net/http"
	"net/url"

	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Operation names, used for logging and metrics labels.
const (
	OpCreateAccount    = "createAccount"
	OpGetAccountByIBAN = "getAccountByIban"
	OpUpdateAccount    = "updateAccount"
	OpDeleteAccount    = "deleteAccount"
	OpUpdateBalance    = "updateBalance"
	OpBlockAccount     = "blockAccount"
	OpUnblockAccount   = "unblockAccount"
	OpCreateCard       = "createCard"
	OpDeleteCard       = "deleteCard"
	OpHealthCheck      = "healthCheck"
)

// IAccountClient is the operation catalogue of the accounts service.
type IAccountClient interface {
	CreateAccount(ctx context.Context, req model.CreateAccountRequest) (*model.Account, error)
	GetAccountByIBAN(ctx context.Context, iban string) (*model.Account, error)
	UpdateAccount(ctx context.Context, iban string, req model.UpdateAccountRequest) (*model.Account, error)
	DeleteAccount(ctx context.Context, iban string) error
	UpdateBalance(ctx context.Context, iban string, delta decimal.Decimal) (*model.Account, error)
	Deposit(ctx context.Context, iban string, amount decimal.Decimal) (*model.Account, error)
	Withdraw(ctx context.Context, iban string, amount decimal.Decimal) (*model.Account, error)
	BlockAccount(ctx context.Context, iban string) (*model.Account, error)
	UnblockAccount(ctx context.Context, iban string) (*model.Account, error)
	CreateCard(ctx context.Context, iban string) (*model.Account, error)
	DeleteCard(ctx context.Context, iban, pan string) error
	HealthCheck(ctx context.Context) (*model.HealthStatus, error)
}

// AccountClient implements IAccountClient on top of API. Every method maps to
// exactly one HTTP call.
type AccountClient struct {
	api *API
}

func NewAccountClient(api *API) *AccountClient {
	return &AccountClient{api: api}
}

// BaseURL is the address of the accounts service.
func (c *AccountClient) BaseURL() string {
	return c.api.BaseURL()
}

func accountPath(iban string) string {
	return "/v1/accounts/" + url.PathEscape(iban)
}

func (c *AccountClient) account(ctx context.Context, operation, method, path string, body interface{}) (*model.Account, error) {
	var acc *model.Account
	if err := c.api.Do(ctx, operation, method, path, body, &acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// CreateAccount opens a new account. The subscription defaults to Free.
func (c *AccountClient) CreateAccount(ctx context.Context, req model.CreateAccountRequest) (*model.Account, error) {
	if req.Subscription == "" {
		req.Subscription = model.DefaultSubscription
	}
	logger.Log.WithFields(logrus.Fields{
		"email":        req.Email,
		"subscription": req.Subscription,
	}).Info("Requesting account creation")

	return c.account(ctx, OpCreateAccount, http.MethodPost, "/v1/accounts/", req)
}

func (c *AccountClient) GetAccountByIBAN(ctx context.Context, iban string) (*model.Account, error) {
	logger.Log.WithField("iban", iban).Info("Requesting account by IBAN")
	return c.account(ctx, OpGetAccountByIBAN, http.MethodGet, accountPath(iban), nil)
}

// UpdateAccount sends a partial update; only non-nil fields are encoded.
func (c *AccountClient) UpdateAccount(ctx context.Context, iban string, req model.UpdateAccountRequest) (*model.Account, error) {
	logger.Log.WithField("iban", iban).Info("Requesting account update")
	return c.account(ctx, OpUpdateAccount, http.MethodPatch, accountPath(iban), req)
}

// DeleteAccount removes the account. It cannot be undone.
func (c *AccountClient) DeleteAccount(ctx context.Context, iban string) error {
	logger.Log.WithField("iban", iban).Warn("Requesting account deletion")
	return c.api.Do(ctx, OpDeleteAccount, http.MethodDelete, accountPath(iban), nil, nil)
}

// UpdateBalance applies a signed delta: positive credits, negative debits.
func (c *AccountClient) UpdateBalance(ctx context.Context, iban string, delta decimal.Decimal) (*model.Account, error) {
	logger.Log.WithFields(logrus.Fields{
		"iban":  iban,
		"delta": delta.String(),
	}).Info("Requesting balance update")

	return c.account(ctx, OpUpdateBalance, http.MethodPatch, "/v1/accounts/operation/"+url.PathEscape(iban),
		model.UpdateBalanceRequest{Balance: delta})
}

// Deposit credits |amount|.
func (c *AccountClient) Deposit(ctx context.Context, iban string, amount decimal.Decimal) (*model.Account, error) {
	return c.UpdateBalance(ctx, iban, amount.Abs())
}

// Withdraw debits |amount|.
func (c *AccountClient) Withdraw(ctx context.Context, iban string, amount decimal.Decimal) (*model.Account, error) {
	return c.UpdateBalance(ctx, iban, amount.Abs().Neg())
}

// BlockAccount returns the updated account, or nil when the service answers
// without a body.
func (c *AccountClient) BlockAccount(ctx context.Context, iban string) (*model.Account, error) {
	logger.Log.WithField("iban", iban).Info("Requesting account block")
	return c.account(ctx, OpBlockAccount, http.MethodPatch, accountPath(iban)+"/block", nil)
}

func (c *AccountClient) UnblockAccount(ctx context.Context, iban string) (*model.Account, error) {
	logger.Log.WithField("iban", iban).Info("Requesting account unblock")
	return c.account(ctx, OpUnblockAccount, http.MethodPatch, accountPath(iban)+"/unblock", nil)
}

// CreateCard issues a new card and returns the account with the card appended.
func (c *AccountClient) CreateCard(ctx context.Context, iban string) (*model.Account, error) {
	logger.Log.WithField("iban", iban).Info("Requesting card creation")
	return c.account(ctx, OpCreateCard, http.MethodPost, "/v1/accounts/card/"+url.PathEscape(iban), nil)
}

func (c *AccountClient) DeleteCard(ctx context.Context, iban, pan string) error {
	logger.Log.WithField("iban", iban).Info("Requesting card deletion")
	return c.api.Do(ctx, OpDeleteCard, http.MethodDelete, "/v1/accounts/card/"+url.PathEscape(iban),
		model.DeleteCardRequest{PAN: pan}, nil)
}

func (c *AccountClient) HealthCheck(ctx context.Context) (*model.HealthStatus, error) {
	var status model.HealthStatus
	if err := c.api.Do(ctx, OpHealthCheck, http.MethodGet, "/v1/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
