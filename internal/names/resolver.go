// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

// Package names resolves collaborator ids to display names for output
// rendering. A [Resolver] lives for one command run and is never
// persisted: it is seeded from the cached users scope and falls back to
// the project collaborator endpoints for ids the cache does not know.
package names

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/models"
)

// preloadConcurrency bounds the collaborator fetch fan-out.
const preloadConcurrency = 4

// Resolver maps user ids to display names, in memory only.
type Resolver struct {
	client api.Client
	log    *logger.Logger

	mu    sync.RWMutex
	names map[string]string
}

// NewResolver returns an empty resolver. client may be nil when no
// remote lookups are wanted; Preload then resolves from seeds alone.
func NewResolver(client api.Client, log *logger.Logger) *Resolver {
	return &Resolver{client: client, log: log, names: make(map[string]string)}
}

// Seed registers known users without any network traffic.
func (r *Resolver) Seed(users []models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range users {
		if u.ID != "" {
			r.names[u.ID] = u.DisplayName()
		}
	}
}

// Preload makes the given user ids resolvable before rendering starts.
// Ids already seeded cost nothing; the rest are looked up through the
// collaborator listings of the shared projects, one paged fetch per
// project, a few projects at a time. Lookups are best effort: a failed
// fetch is logged and the ids it would have covered render as raw ids.
func (r *Resolver) Preload(ctx context.Context, userIDs []string, projects []models.Project) {
	if len(r.missing(userIDs)) == 0 || r.client == nil {
		return
	}
	log := logger.FromContext(ctx)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)

	seen := make(map[string]bool)
	for _, p := range projects {
		// Personal projects have no collaborator listing.
		if !p.IsShared && p.WorkspaceID == nil {
			continue
		}
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		if len(r.missing(userIDs)) == 0 {
			break
		}

		projectID := p.ID
		g.Go(func() error {
			if err := r.fetchProject(ctx, projectID); err != nil {
				log.Warn().Err(err).
					Str("func", "names.Resolver.Preload").
					Str("project_id", projectID).
					Msg("collaborator lookup failed")
			}
			return nil
		})
	}

	_ = g.Wait()
}

// fetchProject walks the collaborator pages of one project.
func (r *Resolver) fetchProject(ctx context.Context, projectID string) error {
	var cursor string
	for {
		page, err := r.client.ProjectCollaborators(ctx, projectID, api.PageParams{Cursor: cursor})
		if err != nil {
			return err
		}
		r.Seed(page.Results)

		if page.NextCursor == nil || *page.NextCursor == "" {
			return nil
		}
		cursor = *page.NextCursor
	}
}

// missing returns the subset of ids with no known name.
func (r *Resolver) missing(userIDs []string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		if _, ok := r.names[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Resolve returns the display name for id. ok is false when the id is
// unknown.
func (r *Resolver) Resolve(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[id]
	return name, ok
}

// DisplayName resolves id, falling back to the raw id.
func (r *Resolver) DisplayName(id string) string {
	if name, ok := r.Resolve(id); ok {
		return name
	}
	return id
}
