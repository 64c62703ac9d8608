// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/auth"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		GroupID: groupAccount,
		Short:   "Log in and out of Taskdesk",
	}
	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthStatusCmd(app),
		newAuthTokenCmd(app),
		newAuthLogoutCmd(app),
	)
	return cmd
}

func newAuthLoginCmd(app *App) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save an API token",
		Long: `Save an API token after verifying it against the service.

The token is read from --token, from $TASKDESK_TOKEN, or interactively.
Create one in the Taskdesk app under Settings > Integrations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if token == "" {
				token = os.Getenv("TASKDESK_TOKEN")
			}
			if token == "" {
				var err error
				if token, err = promptToken(cmd.InOrStdin(), app.out); err != nil {
					return err
				}
			}
			if token == "" {
				return errors.New("no token provided")
			}

			user, err := app.auth.Login(ctx, token)
			if err != nil {
				if errors.Is(err, api.ErrUnauthorized) {
					return errors.New("the service rejected this token; check it and try again")
				}
				return err
			}

			if app.jsonOut {
				return app.printJSON(user)
			}
			fmt.Fprintf(app.out, "%s as %s <%s>\n", okStyle.Render("Logged in"), user.DisplayName(), user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "API token (prompted for when omitted)")

	return cmd
}

func promptToken(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "API token: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func newAuthStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the signed-in account",
		Long:  "Show the signed-in account, re-verifying the saved token against the service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			creds, err := app.auth.Credentials()
			if errors.Is(err, auth.ErrNotLoggedIn) {
				if app.jsonOut {
					return app.printJSON(map[string]any{"logged_in": false})
				}
				fmt.Fprintln(app.out, "Not logged in. Run 'taskdesk auth login'.")
				return nil
			}
			if err != nil {
				return err
			}

			user, err := app.auth.Status(ctx)
			switch {
			case errors.Is(err, api.ErrUnauthorized):
				if app.jsonOut {
					return app.printJSON(map[string]any{"logged_in": false, "saved_email": creds.Email, "token_rejected": true})
				}
				fmt.Fprintf(app.out, "%s The saved token for %s was rejected; run 'taskdesk auth login'.\n",
					alertStyle.Render("Token expired."), creds.Email)
				return nil
			case errors.Is(err, api.ErrRemoteUnavailable):
				if app.jsonOut {
					return app.printJSON(map[string]any{"logged_in": true, "user_id": creds.UserID, "email": creds.Email, "verified": false})
				}
				fmt.Fprintf(app.out, "Logged in as %s <%s> %s\n",
					creds.FullName, creds.Email, dimStyle.Render("(service unreachable, not re-verified)"))
				return nil
			case err != nil:
				return err
			}

			if app.jsonOut {
				return app.printJSON(map[string]any{"logged_in": true, "user_id": user.ID, "email": user.Email, "verified": true})
			}
			fmt.Fprintf(app.out, "Logged in as %s <%s>\n", user.DisplayName(), user.Email)
			return nil
		},
	}
}

func newAuthTokenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the saved API token",
		Long:  "Print the saved API token, for use in scripts and other tools.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := app.auth.Credentials()
			if err != nil {
				return err
			}
			if app.jsonOut {
				return app.printJSON(map[string]string{"token": creds.Token})
			}
			fmt.Fprintln(app.out, creds.Token)
			return nil
		},
	}
}

func newAuthLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved token and clear the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%s Local cache cleared.\n", okStyle.Render("Logged out."))
			return nil
		},
	}
}
