// cmd/main.go
package main

import (
	"os"

	"go-bank-console/commands"
)

// @title           Go-Bank Console API
// @version         1.0
// @description     Operations console in front of the accounts service.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey ConsoleSession
// @in header
// @name X-Console-Session
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
