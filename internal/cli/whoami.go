// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk-cli/models"
)

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		GroupID: groupAccount,
		Short:   "Print the account you are working as",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, ok := app.cachedUser(ctx)
			if !ok {
				var err error
				if user, err = app.client.CurrentUser(ctx); err != nil {
					return fmt.Errorf("look up account: %w", err)
				}
			}

			if app.jsonOut {
				return app.printJSON(user)
			}
			fmt.Fprintf(app.out, "%s <%s> (%s)\n", user.DisplayName(), user.Email, user.ID)
			return nil
		},
	}
}

// cachedUser answers whoami from the cache alone. The collaborator
// scope carries the account owner too, so after any sync the identity
// is known without a network call.
func (a *App) cachedUser(ctx context.Context) (models.User, bool) {
	if a.store == nil {
		return models.User{}, false
	}

	id, err := a.store.CurrentUserID(ctx)
	if err != nil || id == "" {
		return models.User{}, false
	}

	raw, err := a.store.Get(ctx, models.ScopeCollaborators, id)
	if err != nil {
		return models.User{}, false
	}

	var user models.User
	if err = json.Unmarshal(raw, &user); err != nil {
		return models.User{}, false
	}
	return user, true
}
