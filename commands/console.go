package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go-bank-console/client"
	"go-bank-console/config"
	"go-bank-console/service"
	"go-bank-console/view"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// console drives a dashboard page from the command line: every command loads
// the account it works on, runs one operation and prints the page.
type console struct {
	dashboard *service.Dashboard
	out       io.Writer
	format    string
}

func newConsole(cmd *cobra.Command, opts *globalOptions) (*console, error) {
	api, err := client.NewAPI(client.Options{
		BaseURL: config.AppConfig.API.BaseURL,
		Timeout: config.AppConfig.API.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return &console{
		dashboard: service.NewDashboard(client.NewAccountClient(api), service.PageOptions{
			MessageTTL: config.AppConfig.UI.MessageTTL,
		}),
		out:    cmd.OutOrStdout(),
		format: opts.output,
	}, nil
}

func (c *console) close() {
	c.dashboard.Close()
}

// finish prints the page after an operation. A failed operation is reported
// with the message shown on the page.
func (c *console) finish(opErr error) error {
	pv := view.NewPageView("dashboard", c.dashboard.Snapshot())
	if opErr != nil {
		if errors.Is(opErr, service.ErrDeleteNotConfirmed) {
			return opErr
		}
		if pv.Error != "" {
			return errors.New(pv.Error)
		}
		if pv.Message != nil {
			return errors.New(pv.Message.Text)
		}
		return opErr
	}
	return writeOutput(c.out, c.format, pv)
}

// withAccount loads iban, then runs op on the loaded account.
func (c *console) withAccount(cmd *cobra.Command, iban string, op func() error) error {
	defer c.close()

	if err := c.dashboard.SearchAccount(cmd.Context(), iban); err != nil {
		return c.finish(err)
	}
	return c.finish(op())
}

// writeOutput prints v as JSON or YAML. YAML keys follow the JSON field
// names.
func writeOutput(w io.Writer, format string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	if format == formatYAML {
		var generic interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		data, err = yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
