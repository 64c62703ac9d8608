// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/models"
)

// Fetcher is the slice of the API client the cache needs: one delta
// fetch. token is the opaque marker from the previous fetch, or
// models.FullSyncToken for a full snapshot.
type Fetcher interface {
	Sync(ctx context.Context, scopes []models.Scope, token string) (models.DeltaPayload, error)
}

// Manager decides, per read, whether the cache can answer and refreshes
// it when it cannot. It owns the freshness rules:
//
//   - a scope is fresh while its last successful refresh is younger than
//     the TTL; fresh scopes are served without any network traffic;
//   - stale scopes are refreshed before serving, and concurrent requests
//     for overlapping scopes share one in-flight fetch instead of each
//     issuing their own;
//   - a failed refresh falls back to the previous snapshot when one
//     exists, and to "no cache" when it does not. Refresh failures are
//     logged, never surfaced to the caller.
type Manager struct {
	store   *Store
	fetcher Fetcher
	ttl     time.Duration
	off     bool
	log     *logger.Logger

	mu       sync.Mutex
	inflight map[models.Scope]*refresh
}

// refresh is one in-flight fetch shared by every request that overlaps
// its scope set. err may be read only after done is closed.
type refresh struct {
	done chan struct{}
	err  error
}

// NewManager wires a freshness manager over a store and a delta fetcher.
// store may be nil when the local database could not be opened; every
// read then degrades to the live path. disabled turns the cache off
// regardless of store state.
func NewManager(store *Store, fetcher Fetcher, ttl time.Duration, disabled bool, log *logger.Logger) *Manager {
	return &Manager{
		store:    store,
		fetcher:  fetcher,
		ttl:      ttl,
		off:      disabled,
		log:      log,
		inflight: make(map[models.Scope]*refresh),
	}
}

// EnsureFresh returns a repository view over the cache once every given
// scope is usable, refreshing stale ones first. A nil return means the
// cache cannot serve this read (disabled, unusable, or never synced and
// currently unreachable) and the caller must use the live API instead.
// EnsureFresh never returns an error: cache trouble degrades, it does
// not fail the command.
func (m *Manager) EnsureFresh(ctx context.Context, scopes ...models.Scope) *Repository {
	if m.off || m.store == nil {
		return nil
	}
	log := logger.FromContext(ctx)

	for {
		stale, err := m.staleScopes(ctx, scopes)
		if err != nil {
			log.Err(err).
				Str("func", "cache.Manager.EnsureFresh").
				Msg("failed to read cache sync state, falling back to live")
			return nil
		}
		if len(stale) == 0 {
			return m.repository()
		}

		mine, waits := m.claim(stale)

		var own *refresh
		if len(mine) > 0 {
			own = m.run(ctx, mine)
		}

		for _, w := range waits {
			select {
			case <-w.done:
			case <-ctx.Done():
				log.Warn().
					Str("func", "cache.Manager.EnsureFresh").
					Msg("context cancelled while waiting for in-flight refresh")
				return nil
			}
		}

		failed := own != nil && own.err != nil
		for _, w := range waits {
			failed = failed || w.err != nil
		}
		if failed {
			return m.afterFailure(ctx, scopes)
		}

		if own != nil && len(waits) == 0 {
			return m.repository()
		}
		// A shared refresh finished; re-check freshness from scratch.
	}
}

// Refresh fetches the given scopes now, regardless of TTL. In-flight
// refreshes are joined rather than duplicated. Unlike EnsureFresh the
// error is returned, so an explicit `taskdesk sync` can report failure.
func (m *Manager) Refresh(ctx context.Context, scopes ...models.Scope) error {
	if m.off {
		return ErrDisabled
	}
	if m.store == nil {
		return errors.New("cache store is not available")
	}

	mine, waits := m.claim(scopes)

	var errs []error
	if len(mine) > 0 {
		if own := m.run(ctx, mine); own.err != nil {
			errs = append(errs, own.err)
		}
	}
	for _, w := range waits {
		select {
		case <-w.done:
			if w.err != nil {
				errs = append(errs, w.err)
			}
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
		}
	}

	return errors.Join(errs...)
}

// staleScopes returns the subset of scopes whose last refresh is older
// than the TTL, including scopes never refreshed at all.
func (m *Manager) staleScopes(ctx context.Context, scopes []models.Scope) ([]models.Scope, error) {
	now := time.Now()

	var stale []models.Scope
	for _, scope := range scopes {
		refreshed, err := m.store.LastRefreshed(ctx, scope)
		if err != nil {
			return nil, err
		}
		if refreshed.IsZero() || now.Sub(refreshed) >= m.ttl {
			stale = append(stale, scope)
		}
	}
	return stale, nil
}

// claim splits the stale set into scopes this caller will refresh itself
// (atomically registered as in-flight) and refreshes started by others
// that must be waited on.
func (m *Manager) claim(stale []models.Scope) ([]models.Scope, []*refresh) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var mine []models.Scope
	seen := make(map[*refresh]bool)
	var waits []*refresh
	for _, scope := range stale {
		if r, ok := m.inflight[scope]; ok {
			if !seen[r] {
				seen[r] = true
				waits = append(waits, r)
			}
			continue
		}
		mine = append(mine, scope)
	}

	if len(mine) > 0 {
		r := &refresh{done: make(chan struct{})}
		for _, scope := range mine {
			m.inflight[scope] = r
		}
	}

	return mine, waits
}

// run performs the registered refresh for mine and publishes its result.
func (m *Manager) run(ctx context.Context, mine []models.Scope) *refresh {
	m.mu.Lock()
	r := m.inflight[mine[0]]
	m.mu.Unlock()

	r.err = m.refreshScopes(ctx, mine)

	m.mu.Lock()
	for _, scope := range mine {
		delete(m.inflight, scope)
	}
	m.mu.Unlock()
	close(r.done)

	return r
}

// refreshScopes does one fetch-and-merge cycle for the given scopes.
func (m *Manager) refreshScopes(ctx context.Context, scopes []models.Scope) error {
	log := logger.FromContext(ctx)

	token, err := m.resolveToken(ctx, scopes)
	if err != nil {
		return err
	}

	delta, err := m.fetcher.Sync(ctx, scopes, token)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "cache.Manager.refreshScopes").
			Str("token", token).
			Msg("delta fetch failed")
		return err
	}

	if err = m.store.Apply(ctx, scopes, delta); err != nil {
		log.Warn().Err(err).
			Str("func", "cache.Manager.refreshScopes").
			Msg("delta merge failed")
		return err
	}

	return nil
}

// resolveToken picks the sync token for a fetch covering scopes. All
// covered scopes normally share one token because Apply advances them
// together. A scope set with mixed or missing tokens cannot be expressed
// as one incremental request, so it is refetched as a full snapshot.
func (m *Manager) resolveToken(ctx context.Context, scopes []models.Scope) (string, error) {
	token := ""
	for i, scope := range scopes {
		t, err := m.store.Token(ctx, scope)
		if err != nil {
			return "", err
		}
		if i == 0 {
			token = t
			continue
		}
		if t != token {
			return models.FullSyncToken, nil
		}
	}
	if token == "" {
		return models.FullSyncToken, nil
	}
	return token, nil
}

// afterFailure decides what a failed refresh leaves the caller with:
// the previous snapshot when every requested scope has been synced
// before, nothing otherwise.
func (m *Manager) afterFailure(ctx context.Context, scopes []models.Scope) *Repository {
	log := logger.FromContext(ctx)

	for _, scope := range scopes {
		token, err := m.store.Token(ctx, scope)
		if err != nil || token == "" {
			log.Info().
				Str("func", "cache.Manager.afterFailure").
				Str("scope", scope.String()).
				Msg("no usable cache after refresh failure, falling back to live")
			return nil
		}
	}

	log.Warn().
		Str("func", "cache.Manager.afterFailure").
		Msg("refresh failed, serving previous snapshot")
	return m.repository()
}

func (m *Manager) repository() *Repository {
	return &Repository{store: m.store}
}
