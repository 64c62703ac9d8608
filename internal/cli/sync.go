// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk-cli/internal/cache"
	"github.com/taskdesk/taskdesk-cli/models"
)

func newSyncCmd(app *App) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:     "sync",
		GroupID: groupAccount,
		Short:   "Refresh the local cache from the service",
		Long: `Refresh the local cache from the service, ignoring the freshness window.

A normal sync sends the saved sync token and applies only what changed
since the last refresh. --full discards the tokens first, so the next
request downloads the complete account again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			scopes := models.AllScopes()

			if full && app.store != nil {
				if err := app.store.ResetTokens(ctx, scopes...); err != nil {
					return fmt.Errorf("reset sync tokens: %w", err)
				}
			}

			start := time.Now()
			err := app.manager.Refresh(ctx, scopes...)
			if errors.Is(err, cache.ErrDisabled) {
				return errors.New("cache is disabled; nothing to sync")
			}
			if err != nil {
				return fmt.Errorf("sync: %w", err)
			}
			elapsed := time.Since(start).Round(time.Millisecond)

			states, err := app.store.ScopeStates(ctx)
			if err != nil {
				return fmt.Errorf("read cache state: %w", err)
			}

			if app.jsonOut {
				return app.printJSON(map[string]any{
					"full":        full,
					"duration_ms": elapsed.Milliseconds(),
					"scopes":      scopeStatuses(states),
				})
			}

			total := 0
			for _, st := range states {
				total += st.Entities
			}
			fmt.Fprintf(app.out, "%s %d entities across %d scopes in %s.\n",
				okStyle.Render("Synced"), total, len(states), elapsed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "discard sync tokens and download everything again")

	return cmd
}
