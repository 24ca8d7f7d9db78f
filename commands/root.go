package commands

import (
	"fmt"

	"go-bank-console/config"
	"go-bank-console/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

type globalOptions struct {
	configPath string
	baseURL    string
	output     string
	verbose    bool
}

// NewRootCommand creates the bankctl command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "bankctl",
		Short:   "Operations console for the accounts service",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", ".", "directory containing config.yml")
	flags.StringVar(&opts.baseURL, "base-url", "", "accounts service address (overrides api.base_url)")
	flags.StringVarP(&opts.output, "output", "o", formatJSON, "output format: json or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every request to stderr")

	rootCmd.AddCommand(
		newServeCommand(),
		newHealthCommand(opts),
		newAccountCommand(opts),
		newCardCommand(opts),
	)

	return rootCmd
}

// setup loads the configuration and points the logger at stderr.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	if o.output != formatJSON && o.output != formatYAML {
		return fmt.Errorf("unsupported output format %q (want %s or %s)", o.output, formatJSON, formatYAML)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.baseURL != "" {
		cfg.API.BaseURL = o.baseURL
	}
	config.AppConfig = cfg

	logger.Init()
	logger.Log.SetOutput(cmd.ErrOrStderr())
	if cmd.Name() == "serve" {
		logger.Log.SetOutput(cmd.OutOrStdout())
		return nil
	}

	logger.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if o.verbose {
		logger.Log.SetLevel(logrus.DebugLevel)
	} else {
		logger.Log.SetLevel(logrus.ErrorLevel)
	}
	return nil
}
