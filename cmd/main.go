/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blnkfinance/teller/config"
)

// Teller represents the CLI application, encapsulating the root Cobra command.
type Teller struct {
	cmd *cobra.Command
}

// tellerInstance holds what every command needs once the configuration is loaded.
type tellerInstance struct {
	cnf    *config.Configuration
	logger *logrus.Logger
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and builds the logger before running any command.
func preRun(app *tellerInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			return errors.Wrap(err, "error loading config")
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		app.cnf = cnf
		app.logger = cnf.Logger()
		app.logger.SetOutput(cmd.ErrOrStderr())
		return nil
	}
}

// NewCLI creates the command-line interface. Without a sub-command it starts
// the interactive shell.
func NewCLI() *Teller {
	var configFile string
	app := &tellerInstance{}

	shell := shellCommands(app)
	rootCmd := &cobra.Command{
		Use:           "teller",
		Short:         "Single branch retail banking simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          shell.RunE,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./teller.json", "Configuration file for teller")
	rootCmd.PersistentPreRunE = preRun(app, &configFile)

	rootCmd.AddCommand(shell)
	rootCmd.AddCommand(configCommands(app))

	return &Teller{cmd: rootCmd}
}

func (t Teller) executeCLI() {
	if err := t.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
