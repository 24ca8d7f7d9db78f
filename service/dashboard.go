// file: service/dashboard.go

package service

import (
	"context"
	"fmt"
	"strings"

	"go-bank-console/client"
	"go-bank-console/model"
)

// DeleteAccountPrompt is shown to the user before an account is deleted.
const DeleteAccountPrompt = "Are you sure you want to delete this account? This action cannot be undone."

// Confirmer asks the user to approve an irreversible action.
type Confirmer func(prompt string) bool

// AlwaysConfirm approves without asking, for callers that already collected
// the confirmation.
func AlwaysConfirm(string) bool { return true }

// Dashboard is the operations page: it works on one loaded account at a
// time and exposes every operation of the accounts service.
type Dashboard struct {
	*Page
	client client.IAccountClient
}

func NewDashboard(c client.IAccountClient, opts PageOptions) *Dashboard {
	return &Dashboard{Page: newPage("dashboard", opts), client: c}
}

// requireAccount returns the IBAN of the loaded account or warns that one
// must be loaded first.
func (d *Dashboard) requireAccount(op string) (string, error) {
	acc := d.Account()
	if acc == nil {
		return "", d.reject(op, fmt.Errorf("%w: load an account first", ErrNoAccountLoaded))
	}
	return acc.IBAN, nil
}

// accountOperation runs an operation on the loaded account and replaces it
// with the result. When the service answers without a body the account is
// fetched again.
func (d *Dashboard) accountOperation(ctx context.Context, op, action, success string,
	call func(ctx context.Context, iban string) (*model.Account, error)) error {
	iban, err := d.requireAccount(op)
	if err != nil {
		return err
	}
	token, err := d.begin(op)
	if err != nil {
		return err
	}

	acc, err := call(ctx, iban)
	if err == nil && acc == nil {
		acc, err = d.client.GetAccountByIBAN(ctx, iban)
	}
	if err != nil {
		d.fail(token, op, action, err)
		return err
	}
	d.succeed(token, op, acc, success)
	return nil
}

// CreateAccount opens a new account and makes it the loaded one.
func (d *Dashboard) CreateAccount(ctx context.Context, req model.CreateAccountRequest) error {
	const op = "createAccount"

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateForm(req); err != nil {
		return d.reject(op, err)
	}

	token, err := d.begin(op)
	if err != nil {
		return err
	}
	acc, err := d.client.CreateAccount(ctx, req)
	if err != nil {
		d.fail(token, op, "Creating the account", err)
		return err
	}

	iban := ""
	if acc != nil {
		iban = acc.IBAN
	}
	d.succeed(token, op, acc, "Account created successfully. IBAN: "+iban)
	return nil
}

// SearchAccount loads the account with the given IBAN.
func (d *Dashboard) SearchAccount(ctx context.Context, iban string) error {
	const op = "searchAccount"

	iban = strings.TrimSpace(iban)
	if iban == "" {
		return d.reject(op, fmt.Errorf("%w: please enter an IBAN", ErrIBANRequired))
	}

	token, err := d.begin(op)
	if err != nil {
		return err
	}
	acc, err := d.client.GetAccountByIBAN(ctx, iban)
	if err != nil {
		d.fail(token, op, "Loading the account", err)
		return err
	}
	d.succeed(token, op, acc, "Account loaded successfully")
	return nil
}

// UpdateAccount sends the filled-in fields of the update form.
func (d *Dashboard) UpdateAccount(ctx context.Context, req model.UpdateAccountRequest) error {
	const op = "updateAccount"

	if _, err := d.requireAccount(op); err != nil {
		return err
	}
	if req.Empty() {
		return d.reject(op, ErrNothingToUpdate)
	}
	if err := validateForm(req); err != nil {
		return d.reject(op, err)
	}

	return d.accountOperation(ctx, op, "Updating the account", "Account updated successfully",
		func(ctx context.Context, iban string) (*model.Account, error) {
			return d.client.UpdateAccount(ctx, iban, req)
		})
}

// Deposit credits the amount typed in the balance form.
func (d *Dashboard) Deposit(ctx context.Context, amount string) error {
	return d.updateBalance(ctx, model.DirectionDeposit, amount)
}

// Withdraw debits the amount typed in the balance form. Unlike the account
// detail form there is no local balance check here.
func (d *Dashboard) Withdraw(ctx context.Context, amount string) error {
	return d.updateBalance(ctx, model.DirectionWithdraw, amount)
}

func (d *Dashboard) updateBalance(ctx context.Context, direction model.Direction, raw string) error {
	op := string(direction)

	if _, err := d.requireAccount(op); err != nil {
		return err
	}
	amount, err := ParseAmount(raw)
	if err != nil {
		return d.reject(op, err)
	}

	success := "Deposit completed successfully"
	call := d.client.Deposit
	if direction == model.DirectionWithdraw {
		success = "Withdrawal completed successfully"
		call = d.client.Withdraw
	}

	return d.accountOperation(ctx, op, "Updating the balance", success,
		func(ctx context.Context, iban string) (*model.Account, error) {
			return call(ctx, iban, amount)
		})
}

// CreateCard issues a new card for the loaded account.
func (d *Dashboard) CreateCard(ctx context.Context) error {
	return d.accountOperation(ctx, "createCard", "Creating the card", "Card created successfully",
		d.client.CreateCard)
}

// DeleteCard removes a card and then reloads the account so the card list
// reflects the change.
func (d *Dashboard) DeleteCard(ctx context.Context, pan string) error {
	const op = "deleteCard"

	iban, err := d.requireAccount(op)
	if err != nil {
		return err
	}
	pan = strings.TrimSpace(pan)
	if pan == "" {
		return d.reject(op, ErrPANRequired)
	}

	token, err := d.begin(op)
	if err != nil {
		return err
	}
	if err := d.client.DeleteCard(ctx, iban, pan); err != nil {
		d.fail(token, op, "Deleting the card", err)
		return err
	}
	acc, err := d.client.GetAccountByIBAN(ctx, iban)
	if err != nil {
		d.fail(token, op, "Deleting the card", err)
		return err
	}
	d.succeed(token, op, acc, "Card deleted successfully")
	return nil
}

func (d *Dashboard) BlockAccount(ctx context.Context) error {
	return d.accountOperation(ctx, "blockAccount", "Blocking the account", "Account blocked successfully",
		d.client.BlockAccount)
}

func (d *Dashboard) UnblockAccount(ctx context.Context) error {
	return d.accountOperation(ctx, "unblockAccount", "Unblocking the account", "Account unblocked successfully",
		d.client.UnblockAccount)
}

// DeleteAccount deletes the loaded account once confirm approves it. A
// declined confirmation leaves the page untouched.
func (d *Dashboard) DeleteAccount(ctx context.Context, confirm Confirmer) error {
	const op = "deleteAccount"

	iban, err := d.requireAccount(op)
	if err != nil {
		return err
	}
	if confirm == nil || !confirm(DeleteAccountPrompt) {
		return ErrDeleteNotConfirmed
	}

	token, err := d.begin(op)
	if err != nil {
		return err
	}
	if err := d.client.DeleteAccount(ctx, iban); err != nil {
		d.fail(token, op, "Deleting the account", err)
		return err
	}
	d.succeed(token, op, nil, "Account deleted successfully")
	return nil
}

// HealthCheck asks the accounts service whether it is alive. The loaded
// account is not affected.
func (d *Dashboard) HealthCheck(ctx context.Context) (*model.HealthStatus, error) {
	const op = "healthCheck"

	token, err := d.begin(op)
	if err != nil {
		return nil, err
	}
	status, err := d.client.HealthCheck(ctx)
	if err != nil {
		d.fail(token, op, "Checking the accounts service", err)
		return nil, err
	}
	d.succeedKeep(token, op, fmt.Sprintf("Accounts service is %s", status.Status))
	return status, nil
}
