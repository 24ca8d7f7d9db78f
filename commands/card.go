package commands

import "github.com/spf13/cobra"

func newCardCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage the cards of an account",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create IBAN",
		Short: "Issue a new card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}
			return c.withAccount(cmd, args[0], func() error {
				return c.dashboard.CreateCard(cmd.Context())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete IBAN PAN",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}
			return c.withAccount(cmd, args[0], func() error {
				return c.dashboard.DeleteCard(cmd.Context(), args[1])
			})
		},
	})

	return cmd
}
