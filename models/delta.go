// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package models

// FullSyncToken requests a complete snapshot instead of an incremental
// delta. It is the sync token of a client that has no prior state.
const FullSyncToken = "*"

// Entity is the common surface every synced resource exposes to the
// local cache: a stable identifier and the deletion flag the service
// sets on records removed since the last sync.
type Entity interface {
	EntityID() string
	EntityDeleted() bool
}

// SyncRequest is the body of a sync call. The client names the resource
// collections it wants deltas for and presents the token returned by the
// previous call, or FullSyncToken when it has none.
type SyncRequest struct {
	// SyncToken is the opaque state marker from the previous sync.
	SyncToken string `json:"sync_token"`

	// ResourceTypes lists the scopes the delta should cover.
	ResourceTypes []Scope `json:"resource_types"`
}

// DeltaPayload is the response of a sync call: everything that changed
// in the requested scopes since the presented token, plus the token to
// present next time.
//
// When FullSync is true the payload is a complete snapshot of every
// requested scope and the client must discard prior local state for
// those scopes instead of merging. The service answers with a full sync
// whenever the presented token is FullSyncToken or has expired on the
// server side.
type DeltaPayload struct {
	// SyncToken is the new state marker. It must replace the stored
	// token only after the payload has been applied successfully.
	SyncToken string `json:"sync_token"`

	// FullSync reports whether the payload is a snapshot rather than
	// an incremental delta.
	FullSync bool `json:"full_sync"`

	Items         []Task      `json:"items,omitempty"`
	Projects      []Project   `json:"projects,omitempty"`
	Sections      []Section   `json:"sections,omitempty"`
	Labels        []Label     `json:"labels,omitempty"`
	Filters       []Filter    `json:"filters,omitempty"`
	Collaborators []User      `json:"collaborators,omitempty"`
	Workspaces    []Workspace `json:"workspaces,omitempty"`
	Folders       []Folder    `json:"folders,omitempty"`

	// User is the account that owns the session. Present on full syncs
	// and whenever the account settings changed.
	User *User `json:"user,omitempty"`

	// Deleted lists identifiers removed since the last sync, keyed by
	// scope. Services may communicate deletions either through this
	// list or by delivering the entity with its deletion flag set;
	// clients must honor both forms.
	Deleted map[Scope][]string `json:"deleted,omitempty"`
}

// ByScope returns the entity changes the payload carries for one scope.
func (d DeltaPayload) ByScope(s Scope) []Entity {
	switch s {
	case ScopeItems:
		return asEntities(d.Items)
	case ScopeProjects:
		return asEntities(d.Projects)
	case ScopeSections:
		return asEntities(d.Sections)
	case ScopeLabels:
		return asEntities(d.Labels)
	case ScopeFilters:
		return asEntities(d.Filters)
	case ScopeCollaborators:
		return asEntities(d.Collaborators)
	case ScopeWorkspaces:
		return asEntities(d.Workspaces)
	case ScopeFolders:
		return asEntities(d.Folders)
	default:
		return nil
	}
}

func asEntities[T Entity](in []T) []Entity {
	if len(in) == 0 {
		return nil
	}
	out := make([]Entity, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}
