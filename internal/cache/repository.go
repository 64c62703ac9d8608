// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/models"
)

// Repository is a read-only, typed view over a synced store. Commands
// receive one from Manager.EnsureFresh and must treat it as a snapshot:
// it never fetches, so every accessor is fast and works offline.
type Repository struct {
	store *Store
}

// Tasks returns every cached task, completed ones included. Callers
// slice the result down with the filter helpers in this package.
func (r *Repository) Tasks(ctx context.Context) ([]models.Task, error) {
	return decodeScope[models.Task](ctx, r.store, models.ScopeItems)
}

// Task returns one cached task by id. ErrNotFound when the id is not
// cached, which callers treat as "try the live API".
func (r *Repository) Task(ctx context.Context, id string) (models.Task, error) {
	return decodeOne[models.Task](ctx, r.store, models.ScopeItems, id)
}

// Projects returns every cached project, archived ones included.
func (r *Repository) Projects(ctx context.Context) ([]models.Project, error) {
	return decodeScope[models.Project](ctx, r.store, models.ScopeProjects)
}

// Project returns one cached project by id.
func (r *Repository) Project(ctx context.Context, id string) (models.Project, error) {
	return decodeOne[models.Project](ctx, r.store, models.ScopeProjects, id)
}

func (r *Repository) Sections(ctx context.Context) ([]models.Section, error) {
	return decodeScope[models.Section](ctx, r.store, models.ScopeSections)
}

func (r *Repository) Labels(ctx context.Context) ([]models.Label, error) {
	return decodeScope[models.Label](ctx, r.store, models.ScopeLabels)
}

func (r *Repository) Filters(ctx context.Context) ([]models.Filter, error) {
	return decodeScope[models.Filter](ctx, r.store, models.ScopeFilters)
}

// Collaborators returns every user known to the cache across all shared
// projects and workspaces.
func (r *Repository) Collaborators(ctx context.Context) ([]models.User, error) {
	return decodeScope[models.User](ctx, r.store, models.ScopeCollaborators)
}

func (r *Repository) Workspaces(ctx context.Context) ([]models.Workspace, error) {
	return decodeScope[models.Workspace](ctx, r.store, models.ScopeWorkspaces)
}

func (r *Repository) Folders(ctx context.Context) ([]models.Folder, error) {
	return decodeScope[models.Folder](ctx, r.store, models.ScopeFolders)
}

// CurrentUserID returns the id of the account the cache was synced for,
// or "" when no sync has recorded one yet.
func (r *Repository) CurrentUserID(ctx context.Context) (string, error) {
	return r.store.CurrentUserID(ctx)
}

// decodeScope loads and unmarshals every row of one scope.
func decodeScope[T any](ctx context.Context, s *Store, scope models.Scope) ([]T, error) {
	log := logger.FromContext(ctx)

	raw, err := s.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for _, payload := range raw {
		var v T
		if err = json.Unmarshal(payload, &v); err != nil {
			log.Err(err).
				Str("func", "cache.decodeScope").
				Str("scope", scope.String()).
				Msg("failed to decode cached entity")
			return nil, fmt.Errorf("decode cached %s: %w", scope, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeOne[T any](ctx context.Context, s *Store, scope models.Scope, id string) (T, error) {
	var v T

	payload, err := s.Get(ctx, scope, id)
	if err != nil {
		return v, err
	}

	if err = json.Unmarshal(payload, &v); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cache.decodeOne").
			Str("scope", scope.String()).
			Str("id", id).
			Msg("failed to decode cached entity")
		return v, fmt.Errorf("decode cached %s %s: %w", scope, id, err)
	}
	return v, nil
}
