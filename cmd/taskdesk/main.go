// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/auth"
	"github.com/taskdesk/taskdesk-cli/internal/cli"
	"github.com/taskdesk/taskdesk-cli/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRoot(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		switch {
		case errors.Is(err, auth.ErrNotLoggedIn):
			fmt.Fprintln(os.Stderr, "Run 'taskdesk auth login' to save an API token.")
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Fprintln(os.Stderr, "The service rejected your token. Run 'taskdesk auth login' to replace it.")
		}
		os.Exit(1)
	}
}
