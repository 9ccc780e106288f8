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

	"github.com/spf13/cobra"

	"github.com/blnkfinance/teller"
	"github.com/blnkfinance/teller/internal/render"
	"github.com/blnkfinance/teller/internal/shell"
)

func shellCommands(app *tellerInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "start an interactive banking session",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank := teller.NewBank()
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome to %s\n", app.cnf.ProjectName)

			app.logger.WithField("project", app.cnf.ProjectName).Debug("session started")
			session := shell.New(bank, cmd.InOrStdin(), cmd.OutOrStdout(),
				shell.WithLogger(app.logger),
				shell.WithRenderer(render.New(app.cnf.Statement)),
			)
			return session.Run(cmd.Context())
		},
	}
	return cmd
}
