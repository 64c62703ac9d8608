// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.jsonOut {
				return app.printJSON(map[string]string{
					"version": app.build.Version(),
					"commit":  app.build.Commit(),
					"date":    app.build.Date(),
				})
			}
			fmt.Fprintf(app.out, "taskdesk %s\n", app.build.Version())
			fmt.Fprintf(app.out, "%s %s\n", dimStyle.Render("commit:"), app.build.Commit())
			fmt.Fprintf(app.out, "%s  %s\n", dimStyle.Render("built:"), app.build.Date())
			return nil
		},
	}
}
