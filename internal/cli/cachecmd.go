// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk-cli/internal/cache"
)

func newCacheCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		GroupID: groupAccount,
		Short:   "Inspect and manage the local cache",
	}
	cmd.AddCommand(newCacheStatusCmd(app), newCacheClearCmd(app))
	return cmd
}

// scopeStatus is the JSON shape of one cache scope in status and sync
// output.
type scopeStatus struct {
	Scope         string     `json:"scope"`
	Entities      int        `json:"entities"`
	HasToken      bool       `json:"has_token"`
	LastRefreshed *time.Time `json:"last_refreshed,omitempty"`
}

func scopeStatuses(states []cache.ScopeState) []scopeStatus {
	out := make([]scopeStatus, 0, len(states))
	for _, st := range states {
		row := scopeStatus{
			Scope:    string(st.Scope),
			Entities: st.Entities,
			HasToken: st.SyncToken != "",
		}
		if !st.LastRefreshed.IsZero() {
			t := st.LastRefreshed
			row.LastRefreshed = &t
		}
		out = append(out, row)
	}
	return out
}

func newCacheStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show per-scope cache state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.store == nil {
				if app.cfg != nil && app.cfg.Cache.Disabled {
					fmt.Fprintln(app.out, "Cache is disabled.")
				} else {
					fmt.Fprintln(app.out, "Cache is unavailable.")
				}
				return nil
			}

			states, err := app.store.ScopeStates(cmd.Context())
			if err != nil {
				return fmt.Errorf("read cache state: %w", err)
			}

			if app.jsonOut {
				return app.printJSON(map[string]any{
					"path":   app.store.Path(),
					"ttl":    app.cfg.Cache.TTL.String(),
					"scopes": scopeStatuses(states),
				})
			}

			fmt.Fprintf(app.out, "%s %s\n", titleStyle.Render("Cache:"), app.store.Path())
			fmt.Fprintf(app.out, "%s %s\n\n", titleStyle.Render("TTL:"), app.cfg.Cache.TTL)

			now := time.Now()
			rows := make([][]string, 0, len(states))
			for _, st := range states {
				token := "yes"
				if st.SyncToken == "" {
					token = dimStyle.Render("none")
				}
				synced := formatAge(st.LastRefreshed, now)
				if st.LastRefreshed.IsZero() {
					synced = dimStyle.Render(synced)
				}
				rows = append(rows, []string{
					string(st.Scope),
					strconv.Itoa(st.Entities),
					synced,
					token,
				})
			}
			renderTable(app.out, []string{"SCOPE", "ENTITIES", "SYNCED", "TOKEN"}, rows)
			return nil
		},
	}
}

func newCacheClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop all cached data and sync tokens",
		Long: `Drop all cached data and sync tokens.

The saved login is kept. The next command that needs the cache runs a
full download.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.store == nil {
				fmt.Fprintln(app.out, "Cache is disabled; nothing to clear.")
				return nil
			}
			if err := app.store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			fmt.Fprintln(app.out, okStyle.Render("Cache cleared."))
			return nil
		},
	}
}
