// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/models"
)

// newTestStore opens a fresh store in a per-test directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// mustApply folds a delta into the store, failing the test on error.
func mustApply(t *testing.T, s *Store, scopes []models.Scope, delta models.DeltaPayload) {
	t.Helper()
	require.NoError(t, s.Apply(context.Background(), scopes, delta))
}

func task(id, content string) models.Task {
	return models.Task{
		ID:        id,
		ProjectID: "p1",
		Content:   content,
		Priority:  models.PriorityNormal,
		AddedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func project(id, name string) models.Project {
	return models.Project{
		ID:        id,
		Name:      name,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// fullSnapshot builds a complete-snapshot payload carrying the given
// tasks under the given token.
func fullSnapshot(token string, tasks ...models.Task) models.DeltaPayload {
	return models.DeltaPayload{
		SyncToken: token,
		FullSync:  true,
		Items:     tasks,
	}
}

// ── Open / Close ─────────────────────────────────────────────────────────────

func TestOpen_CreatesDatabase(t *testing.T) {
	s := newTestStore(t)

	assert.FileExists(t, s.Path())
}

func TestOpen_CorruptDatabaseIsReset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, dbFileName)
	require.NoError(t, os.WriteFile(path, []byte("this is not a sqlite file"), 0o600))

	s, err := Open(dir, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// The reset store starts empty and is fully usable.
	n, err := s.Count(context.Background(), models.ScopeItems)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir, logger.Nop())
	require.NoError(t, err)
	mustApply(t, s, []models.Scope{models.ScopeItems}, fullSnapshot("tok-1", task("t1", "buy milk")))
	require.NoError(t, s.Close())

	s, err = Open(dir, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	n, err := s.Count(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	token, err := s.Token(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestStore_ClosedStoreRejectsOperations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Close())

	_, err := s.Get(ctx, models.ScopeItems, "t1")
	require.ErrorIs(t, err, ErrClosed)

	_, err = s.List(ctx, models.ScopeItems)
	require.ErrorIs(t, err, ErrClosed)

	require.ErrorIs(t, s.Clear(ctx), ErrClosed)
}

// ── Entities ─────────────────────────────────────────────────────────────────

func TestStore_GetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), models.ScopeItems, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetReturnsStoredPayload(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustApply(t, s, []models.Scope{models.ScopeItems}, fullSnapshot("tok-1", task("t1", "buy milk")))

	payload, err := s.Get(ctx, models.ScopeItems, "t1")
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"buy milk"`)
}

func TestStore_ListIsScopedAndOrdered(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustApply(t, s, []models.Scope{models.ScopeItems, models.ScopeProjects}, models.DeltaPayload{
		SyncToken: "tok-1",
		FullSync:  true,
		Items:     []models.Task{task("t2", "two"), task("t1", "one")},
		Projects:  []models.Project{project("p1", "Inbox")},
	})

	payloads, err := s.List(ctx, models.ScopeItems)
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	// Ordered by id regardless of payload order.
	assert.Contains(t, string(payloads[0]), `"t1"`)
	assert.Contains(t, string(payloads[1]), `"t2"`)
}

// ── Sync state ───────────────────────────────────────────────────────────────

func TestStore_ScopeStateDefaultsToNeverSynced(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	token, err := s.Token(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Empty(t, token)

	refreshed, err := s.LastRefreshed(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.True(t, refreshed.IsZero())
}

func TestStore_SetStateRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)

	require.NoError(t, s.SetState(ctx, models.ScopeItems, "tok-9", at))

	token, err := s.Token(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, "tok-9", token)

	refreshed, err := s.LastRefreshed(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.WithinDuration(t, at, refreshed, time.Second)
}

func TestStore_InvalidateScopesKeepsToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustApply(t, s, []models.Scope{models.ScopeItems}, fullSnapshot("tok-1", task("t1", "buy milk")))

	require.NoError(t, s.InvalidateScopes(ctx, models.ScopeItems))

	// The scope reads as stale but the next fetch can still be an
	// incremental delta.
	refreshed, err := s.LastRefreshed(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.True(t, refreshed.IsZero())

	token, err := s.Token(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	n, err := s.Count(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_ResetTokensDropsState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustApply(t, s, []models.Scope{models.ScopeItems}, fullSnapshot("tok-1", task("t1", "buy milk")))

	require.NoError(t, s.ResetTokens(ctx, models.ScopeItems))

	token, err := s.Token(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Empty(t, token)

	// Entities stay; only the sync state is forgotten.
	n, err := s.Count(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ── Clear ────────────────────────────────────────────────────────────────────

func TestStore_ClearRemovesEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustApply(t, s, []models.Scope{models.ScopeItems}, models.DeltaPayload{
		SyncToken: "tok-1",
		FullSync:  true,
		Items:     []models.Task{task("t1", "buy milk")},
		User:      &models.User{ID: "u1", Email: "ann@example.com"},
	})

	require.NoError(t, s.Clear(ctx))

	n, err := s.Count(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Zero(t, n)

	token, err := s.Token(ctx, models.ScopeItems)
	require.NoError(t, err)
	assert.Empty(t, token)

	id, err := s.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

// ── Meta ─────────────────────────────────────────────────────────────────────

func TestStore_CurrentUserIDRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, s.SetCurrentUserID(ctx, "u42"))

	id, err = s.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u42", id)
}

// ── ScopeStates ──────────────────────────────────────────────────────────────

func TestStore_ScopeStatesCoversAllScopes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustApply(t, s, []models.Scope{models.ScopeItems}, fullSnapshot("tok-1", task("t1", "buy milk"), task("t2", "walk dog")))

	states, err := s.ScopeStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, len(models.AllScopes()))

	byScope := make(map[models.Scope]ScopeState, len(states))
	for _, st := range states {
		byScope[st.Scope] = st
	}

	items := byScope[models.ScopeItems]
	assert.Equal(t, "tok-1", items.SyncToken)
	assert.Equal(t, 2, items.Entities)
	assert.False(t, items.LastRefreshed.IsZero())

	projects := byScope[models.ScopeProjects]
	assert.Empty(t, projects.SyncToken)
	assert.Zero(t, projects.Entities)
}
