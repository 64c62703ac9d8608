// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/migrations"
	"github.com/taskdesk/taskdesk-cli/models"
)

const (
	dbFileName = "cache.db"

	// metaCurrentUserID is the meta table key holding the id of the
	// account the cached data belongs to.
	metaCurrentUserID = "current_user_id"

	// tsFormat is the column format of every timestamp in the database.
	// The empty string means "never".
	tsFormat = time.RFC3339Nano
)

// Store is the durable half of the cache: one SQLite database holding the
// latest known snapshot of every synced entity plus per-scope sync state.
//
// All mutating sync operations run inside a single transaction per delta,
// so readers never observe a half-applied payload.
type Store struct {
	db   *sql.DB
	path string
	log  *logger.Logger
}

// Open opens (or creates) the cache database inside dir and brings its
// schema up to date.
//
// A database that cannot be opened or migrated is treated as corrupt: the
// files are removed and a fresh empty database is created in their place.
// The cache never blocks the client over its own state.
func Open(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	path := filepath.Join(dir, dbFileName)

	db, err := openAndMigrate(path)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "cache.Open").
			Str("path", path).
			Msg("cache database unusable, resetting to empty")

		removeDatabaseFiles(path)
		db, err = openAndMigrate(path)
		if err != nil {
			return nil, fmt.Errorf("failed to reset cache database: %w", err)
		}
	}

	return &Store{db: db, path: path, log: log}, nil
}

func openAndMigrate(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	// WAL keeps readers unblocked while a delta is being applied.
	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err = db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func removeDatabaseFiles(path string) {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		_ = os.Remove(p)
	}
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.path
}

// Close checkpoints the WAL and closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		s.log.Warn().Err(err).
			Str("func", "cache.Store.Close").
			Msg("failed to checkpoint WAL before close")
	}

	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("failed to close cache database: %w", err)
	}
	return nil
}

func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}

// Get returns the stored snapshot of one entity, or ErrNotFound.
func (s *Store) Get(ctx context.Context, scope models.Scope, id string) (json.RawMessage, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	var payload json.RawMessage
	err = db.QueryRowContext(ctx, getEntity, scope, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "cache.Store.Get").
			Str("scope", scope.String()).
			Str("id", id).
			Msg("failed to query entity")
		return nil, fmt.Errorf("failed to get cached entity %s/%s: %w", scope, id, err)
	}

	return payload, nil
}

// List returns the stored snapshots of every entity in one scope.
func (s *Store) List(ctx context.Context, scope models.Scope) ([]json.RawMessage, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, listEntities, scope)
	if err != nil {
		log.Err(err).
			Str("func", "cache.Store.List").
			Str("scope", scope.String()).
			Msg("failed to query scope entities")
		return nil, fmt.Errorf("failed to list cached %s: %w", scope, err)
	}
	defer rows.Close()

	var payloads []json.RawMessage
	for rows.Next() {
		var payload json.RawMessage
		if err = rows.Scan(&payload); err != nil {
			log.Err(err).
				Str("func", "cache.Store.List").
				Str("scope", scope.String()).
				Msg("failed to scan entity row")
			return nil, fmt.Errorf("failed to scan cached %s row: %w", scope, err)
		}
		payloads = append(payloads, payload)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "cache.Store.List").
			Str("scope", scope.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached %s rows: %w", scope, err)
	}

	return payloads, nil
}

// Count returns the number of entities stored in one scope.
func (s *Store) Count(ctx context.Context, scope models.Scope) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var n int
	if err = db.QueryRowContext(ctx, countEntities, scope).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cached %s: %w", scope, err)
	}
	return n, nil
}

// Token returns the sync token of one scope. An empty token means the
// scope has never been synced and the next fetch must request a full
// snapshot.
func (s *Store) Token(ctx context.Context, scope models.Scope) (string, error) {
	token, _, err := s.scopeState(ctx, scope)
	return token, err
}

// LastRefreshed returns when one scope last completed a successful
// refresh. The zero time means never.
func (s *Store) LastRefreshed(ctx context.Context, scope models.Scope) (time.Time, error) {
	_, refreshed, err := s.scopeState(ctx, scope)
	return refreshed, err
}

func (s *Store) scopeState(ctx context.Context, scope models.Scope) (string, time.Time, error) {
	db, err := s.conn()
	if err != nil {
		return "", time.Time{}, err
	}

	var token, refreshedRaw string
	err = db.QueryRowContext(ctx, getScopeState, scope).Scan(&token, &refreshedRaw)
	if err == sql.ErrNoRows {
		return "", time.Time{}, nil
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to get sync state for %s: %w", scope, err)
	}

	refreshed, err := parseTimestamp(refreshedRaw)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to parse refresh timestamp for %s: %w", scope, err)
	}

	return token, refreshed, nil
}

// SetState records the sync token and refresh time of one scope.
func (s *Store) SetState(ctx context.Context, scope models.Scope, token string, refreshedAt time.Time) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, upsertScopeState, scope, token, formatTimestamp(refreshedAt))
	if err != nil {
		return fmt.Errorf("failed to set sync state for %s: %w", scope, err)
	}
	return nil
}

// InvalidateScopes marks scopes stale by zeroing their refresh timestamps
// while keeping their sync tokens, so the next read triggers a cheap
// incremental delta instead of a full snapshot. Used after the client
// mutates data through the direct API.
func (s *Store) InvalidateScopes(ctx context.Context, scopes ...models.Scope) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	for _, scope := range scopes {
		if _, err = db.ExecContext(ctx, resetScopeRefresh, scope); err != nil {
			log.Err(err).
				Str("func", "cache.Store.InvalidateScopes").
				Str("scope", scope.String()).
				Msg("failed to invalidate scope")
			return fmt.Errorf("failed to invalidate scope %s: %w", scope, err)
		}
	}
	return nil
}

// ResetTokens drops the sync state of the given scopes entirely, forcing
// the next refresh to request a full snapshot.
func (s *Store) ResetTokens(ctx context.Context, scopes ...models.Scope) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	for _, scope := range scopes {
		if _, err = db.ExecContext(ctx, deleteScopeState, scope); err != nil {
			return fmt.Errorf("failed to reset sync token for %s: %w", scope, err)
		}
	}
	return nil
}

// Clear removes every entity, scope state, and meta entry. Called on
// logout before credentials are deleted, and by `taskdesk cache clear`.
func (s *Store) Clear(ctx context.Context) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin clear transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{clearEntities, clearScopeState, clearMeta} {
		if _, err = tx.ExecContext(ctx, q); err != nil {
			log.Err(err).
				Str("func", "cache.Store.Clear").
				Msg("failed to clear cache table")
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear transaction: %w", err)
	}
	return nil
}

// CurrentUserID returns the id of the account the cached data belongs
// to, or "" when no sync has recorded one yet.
func (s *Store) CurrentUserID(ctx context.Context) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	var id string
	err = db.QueryRowContext(ctx, getMeta, metaCurrentUserID).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get current user id: %w", err)
	}
	return id, nil
}

// SetCurrentUserID records the id of the account the cached data belongs to.
func (s *Store) SetCurrentUserID(ctx context.Context, id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err = db.ExecContext(ctx, upsertMeta, metaCurrentUserID, id); err != nil {
		return fmt.Errorf("failed to set current user id: %w", err)
	}
	return nil
}

// ScopeState is a per-scope summary row for diagnostics output.
type ScopeState struct {
	Scope         models.Scope
	SyncToken     string
	LastRefreshed time.Time
	Entities      int
}

// ScopeStates returns the sync state and entity count of every known
// scope, in the stable scope order.
func (s *Store) ScopeStates(ctx context.Context) ([]ScopeState, error) {
	states := make([]ScopeState, 0, len(models.AllScopes()))
	for _, scope := range models.AllScopes() {
		token, refreshed, err := s.scopeState(ctx, scope)
		if err != nil {
			return nil, err
		}
		count, err := s.Count(ctx, scope)
		if err != nil {
			return nil, err
		}
		states = append(states, ScopeState{
			Scope:         scope,
			SyncToken:     token,
			LastRefreshed: refreshed,
			Entities:      count,
		})
	}
	return states, nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(tsFormat)
}

func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(tsFormat, raw)
}
