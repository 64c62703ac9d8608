// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

// Package cli assembles the taskdesk command tree and wires every
// command to the shared application state: configuration, logger, API
// client, local cache, and credential store.
//
// Read commands go through the cache manager first and fall back to the
// live API when the cache cannot serve; write commands always go to the
// service and then mark the touched scopes stale so the next read
// re-syncs them. Every command supports --json for machine-readable
// output on stdout.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/auth"
	"github.com/taskdesk/taskdesk-cli/internal/cache"
	"github.com/taskdesk/taskdesk-cli/internal/config"
	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/models"
)

// Command group ids shown in help output.
const (
	groupTasks   = "tasks"
	groupAccount = "account"
)

// App carries the dependencies shared by all commands. It is wired once
// per invocation in the root command's PersistentPreRunE.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	client  api.Client
	creds   *auth.FileStore
	store   *cache.Store
	manager *cache.Manager
	auth    *auth.Service

	build   models.BuildInfo
	out     io.Writer
	jsonOut bool

	// ownStore marks a store opened by wire, closed again after the run.
	ownStore bool
}

// NewRoot builds the taskdesk command tree for the given build metadata.
func NewRoot(build models.BuildInfo) *cobra.Command {
	app := &App{build: build, out: os.Stdout}
	return newRoot(app)
}

func newRoot(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdesk",
		Short: "Taskdesk from the terminal",
		Long: `taskdesk is a command-line client for the Taskdesk service.

Listings are served from a local cache that syncs incrementally with the
service and falls back to direct API calls when the cache cannot answer.
Run 'taskdesk auth login' once, then manage your tasks offline-tolerant:

  taskdesk task list --due today
  taskdesk task add "Pay rent" --due "first of every month"
  taskdesk task done 6X7rM8997g3RQmvh`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.jsonOut, _ = cmd.Flags().GetBool("json")
			if !needsSetup(cmd) || app.cfg != nil {
				return nil
			}
			if err := app.wire(cmd); err != nil {
				return err
			}
			cmd.SetContext(app.log.WithContext(cmd.Context()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.shutdown()
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTasks, Title: "Work:"},
		&cobra.Group{ID: groupAccount, Title: "Account and data:"},
	)

	root.PersistentFlags().String("config", "", "path to a JSON config file")
	root.PersistentFlags().Bool("json", false, "print JSON instead of formatted text")

	root.AddCommand(
		newTaskCmd(app),
		newProjectCmd(app),
		newSectionCmd(app),
		newLabelCmd(app),
		newFilterCmd(app),
		newWorkspaceCmd(app),
		newAuthCmd(app),
		newSyncCmd(app),
		newCacheCmd(app),
		newWhoamiCmd(app),
		newVersionCmd(app),
	)

	return root
}

// needsSetup reports whether cmd requires the full application wiring.
// Help, completion, and version run without configuration so they work
// on a machine that has none.
func needsSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" || c.Name() == "help" {
			return false
		}
	}
	return true
}

// wire builds the shared dependencies from configuration. The cache is
// best effort: a store that cannot open degrades every read to the live
// path instead of failing the command.
func (a *App) wire(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewCLILogger("taskdesk", cfg.Log.Level, cfg.Log.File)

	client, err := api.New(cfg.API, a.log)
	if err != nil {
		return err
	}
	a.client = client

	a.creds = auth.NewFileStore(cfg.Auth.File, a.log)
	// An explicitly configured token wins over the saved credential.
	if cfg.API.Token == "" {
		if creds, err := a.creds.Load(); err == nil {
			client.SetToken(creds.Token)
		}
	}

	if !cfg.Cache.Disabled {
		store, err := cache.Open(cfg.Cache.Dir, a.log)
		if err != nil {
			a.log.Warn().Err(err).
				Str("func", "cli.App.wire").
				Msg("cache unavailable, running without it")
		} else {
			a.store = store
			a.ownStore = true
		}
	}

	a.manager = cache.NewManager(a.store, client, *cfg.Cache.TTL, cfg.Cache.Disabled, a.log)
	a.auth = auth.NewService(a.creds, client, a.store, a.log)

	return nil
}

func (a *App) shutdown() {
	if a.ownStore && a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).
				Str("func", "cli.App.shutdown").
				Msg("failed to close cache store")
		}
	}
}

// printJSON writes v to the output as indented JSON.
func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// invalidate marks scopes stale after a direct remote write so the next
// cached read re-syncs them. Cache trouble here is logged, never fatal:
// the write itself already succeeded.
func (a *App) invalidate(ctx context.Context, scopes ...models.Scope) {
	if a.store == nil {
		return
	}
	if err := a.store.InvalidateScopes(ctx, scopes...); err != nil {
		a.log.Warn().Err(err).
			Str("func", "cli.App.invalidate").
			Msg("failed to invalidate cache scopes after write")
	}
}

// savedUserID returns the user id of the stored credential, or "".
func (a *App) savedUserID() string {
	if a.creds == nil {
		return ""
	}
	creds, err := a.creds.Load()
	if err != nil {
		return ""
	}
	return creds.UserID
}
