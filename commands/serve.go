package commands

import (
	"go-bank-console/app"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the console HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Run()
			return nil
		},
	}
}

func newHealthCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the accounts service is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole(cmd, opts)
			if err != nil {
				return err
			}
			defer c.close()

			status, err := c.dashboard.HealthCheck(cmd.Context())
			if err != nil {
				return c.finish(err)
			}
			return writeOutput(c.out, c.format, status)
		},
	}
}
