// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/models"
)

// Apply folds one delta payload into the store.
//
// scopes is the set the fetch covered; every scope in it gets its sync
// token and refresh timestamp advanced even when the payload carries no
// changes for it. The whole payload is applied in a single transaction,
// so a reader sees either the state before the delta or the state after
// it, never anything in between, and a failure leaves the previous
// snapshot and token untouched.
//
// On a full sync the stored state of each covered scope is replaced by
// the payload outright. On an incremental delta, changed entities are
// upserted, entities the service marked deleted are removed, and ids in
// the payload's deletion lists are removed last, so a deletion wins over
// an upsert of the same id inside one payload. Removed entities leave no
// trace; nothing in the row format marks past deletions.
//
// Applying the same payload twice leaves the store in the same state.
func (s *Store) Apply(ctx context.Context, scopes []models.Scope, delta models.DeltaPayload) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	now := time.Now()

	if delta.SyncToken == "" {
		// A token-less payload cannot advance sync state. Apply nothing
		// rather than half of it.
		log.Warn().
			Str("func", "cache.Store.Apply").
			Msg("delta payload carries no sync token, skipping")
		return fmt.Errorf("delta payload carries no sync token")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer tx.Rollback()

	for _, scope := range scopes {
		if delta.FullSync {
			err = replaceScope(ctx, tx, scope, delta, now)
		} else {
			err = mergeScope(ctx, tx, scope, delta, now)
		}
		if err != nil {
			log.Err(err).
				Str("func", "cache.Store.Apply").
				Str("scope", scope.String()).
				Bool("full_sync", delta.FullSync).
				Msg("failed to apply delta for scope")
			return fmt.Errorf("failed to apply delta for %s: %w", scope, err)
		}

		_, err = tx.ExecContext(ctx, upsertScopeState, scope, delta.SyncToken, formatTimestamp(now))
		if err != nil {
			return fmt.Errorf("failed to advance sync state for %s: %w", scope, err)
		}
	}

	if delta.User != nil {
		if _, err = tx.ExecContext(ctx, upsertMeta, metaCurrentUserID, delta.User.ID); err != nil {
			return fmt.Errorf("failed to record current user: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge transaction: %w", err)
	}

	log.Debug().
		Str("func", "cache.Store.Apply").
		Bool("full_sync", delta.FullSync).
		Int("scopes", len(scopes)).
		Msg("delta applied")
	return nil
}

// replaceScope rebuilds one scope from a full snapshot: everything stored
// before is discarded, entities the snapshot marks deleted are dropped.
func replaceScope(ctx context.Context, tx *sql.Tx, scope models.Scope, delta models.DeltaPayload, now time.Time) error {
	if _, err := tx.ExecContext(ctx, deleteScopeEntities, scope); err != nil {
		return fmt.Errorf("failed to clear scope: %w", err)
	}

	for _, entity := range delta.ByScope(scope) {
		if entity.EntityDeleted() {
			continue
		}
		if err := upsertOne(ctx, tx, scope, entity, now); err != nil {
			return err
		}
	}

	return removeListed(ctx, tx, scope, delta.Deleted[scope])
}

// mergeScope folds an incremental delta into one scope. Entities absent
// from the delta keep their stored snapshots.
func mergeScope(ctx context.Context, tx *sql.Tx, scope models.Scope, delta models.DeltaPayload, now time.Time) error {
	for _, entity := range delta.ByScope(scope) {
		if entity.EntityDeleted() {
			if _, err := tx.ExecContext(ctx, deleteEntity, scope, entity.EntityID()); err != nil {
				return fmt.Errorf("failed to remove deleted entity %s: %w", entity.EntityID(), err)
			}
			continue
		}
		if err := upsertOne(ctx, tx, scope, entity, now); err != nil {
			return err
		}
	}

	return removeListed(ctx, tx, scope, delta.Deleted[scope])
}

func upsertOne(ctx context.Context, tx *sql.Tx, scope models.Scope, entity models.Entity, now time.Time) error {
	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to encode entity %s: %w", entity.EntityID(), err)
	}

	_, err = tx.ExecContext(ctx, upsertEntity, scope, entity.EntityID(), payload, formatTimestamp(now))
	if err != nil {
		return fmt.Errorf("failed to upsert entity %s: %w", entity.EntityID(), err)
	}
	return nil
}

func removeListed(ctx context.Context, tx *sql.Tx, scope models.Scope, ids []string) error {
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, deleteEntity, scope, id); err != nil {
			return fmt.Errorf("failed to remove listed deletion %s: %w", id, err)
		}
	}
	return nil
}
