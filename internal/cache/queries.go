// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cache

const (
	upsertEntity = `
		INSERT INTO entities (scope, id, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(scope, id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at;`

	deleteEntity = `
		DELETE FROM entities
		WHERE scope = ? AND id = ?;`

	deleteScopeEntities = `
		DELETE FROM entities
		WHERE scope = ?;`

	getEntity = `
		SELECT payload
		FROM entities
		WHERE scope = ? AND id = ?;`

	listEntities = `
		SELECT payload
		FROM entities
		WHERE scope = ?
		ORDER BY id;`

	countEntities = `
		SELECT COUNT(*)
		FROM entities
		WHERE scope = ?;`

	upsertScopeState = `
		INSERT INTO scope_state (scope, sync_token, last_refreshed_at)
		VALUES (?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET
			sync_token        = excluded.sync_token,
			last_refreshed_at = excluded.last_refreshed_at;`

	getScopeState = `
		SELECT sync_token, last_refreshed_at
		FROM scope_state
		WHERE scope = ?;`

	resetScopeRefresh = `
		UPDATE scope_state
		SET last_refreshed_at = ''
		WHERE scope = ?;`

	deleteScopeState = `
		DELETE FROM scope_state
		WHERE scope = ?;`

	clearEntities   = `DELETE FROM entities;`
	clearScopeState = `DELETE FROM scope_state;`
	clearMeta       = `DELETE FROM meta;`

	upsertMeta = `
		INSERT INTO meta (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value;`

	getMeta = `
		SELECT value
		FROM meta
		WHERE key = ?;`
)
