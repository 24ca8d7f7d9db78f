package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go-bank-console/model"
	"go-bank-console/service"

	"github.com/spf13/cobra"
)

func newAccountCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountCreateCommand(opts),
		newAccountGetCommand(opts),
		newAccountUpdateCommand(opts),
		newAccountDeleteCommand(opts),
		newBalanceCommand(opts, model.DirectionDeposit),
		newBalanceCommand(opts, model.DirectionWithdraw),
		newAccountBlockCommand(opts, true),
		newAccountBlockCommand(opts, false),
	)
	return cmd
}

func newAccountCreateCommand(opts *globalOptions) *cobra.Command {
	var req model.CreateAccountRequest
	var subscription string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}
			defer c.close()

			req.Subscription = model.Subscription(subscription)
			return c.finish(c.dashboard.CreateAccount(cmd.Context(), req))
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "account holder name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "account holder email (required)")
	cmd.Flags().StringVar(&subscription, "subscription", string(model.DefaultSubscription), "Free, Premium or Gold")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAccountGetCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get IBAN",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}
			defer c.close()

			return c.finish(c.dashboard.SearchAccount(cmd.Context(), args[0]))
		},
	}
}

func newAccountUpdateCommand(opts *globalOptions) *cobra.Command {
	var name, email, subscription string

	cmd := &cobra.Command{
		Use:   "update IBAN",
		Short: "Change the name, email or subscription of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}

			req := model.NewUpdateAccountRequest(name, email, model.Subscription(subscription))
			return c.withAccount(cmd, args[0], func() error {
				return c.dashboard.UpdateAccount(cmd.Context(), req)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new holder name")
	cmd.Flags().StringVar(&email, "email", "", "new holder email")
	cmd.Flags().StringVar(&subscription, "subscription", "", "new subscription: Free, Premium or Gold")

	return cmd
}

func newAccountDeleteCommand(opts *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete IBAN",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}

			confirm := service.AlwaysConfirm
			if !yes {
				confirm = promptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
			}
			return c.withAccount(cmd, args[0], func() error {
				return c.dashboard.DeleteAccount(cmd.Context(), confirm)
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}

// promptConfirmer asks on out and accepts "y" or "yes" from in.
func promptConfirmer(in io.Reader, out io.Writer) service.Confirmer {
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

func newBalanceCommand(opts *globalOptions, direction model.Direction) *cobra.Command {
	short := "Credit an amount to an account"
	if direction == model.DirectionWithdraw {
		short = "Debit an amount from an account"
	}

	return &cobra.Command{
		Use:   string(direction) + " IBAN AMOUNT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}

			return c.withAccount(cmd, args[0], func() error {
				if direction == model.DirectionWithdraw {
					return c.dashboard.Withdraw(cmd.Context(), args[1])
				}
				return c.dashboard.Deposit(cmd.Context(), args[1])
			})
		},
	}
}

func newAccountBlockCommand(opts *globalOptions, block bool) *cobra.Command {
	use, short := "block IBAN", "Block an account"
	if !block {
		use, short = "unblock IBAN", "Unblock an account"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}

			return c.withAccount(cmd, args[0], func() error {
				if block {
					return c.dashboard.BlockAccount(cmd.Context())
				}
				return c.dashboard.UnblockAccount(cmd.Context())
			})
		},
	}
}
