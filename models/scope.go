// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package models

import "fmt"

// Scope identifies one resource collection tracked by the sync protocol.
// The string value is the wire name used in the `resource_types` field of
// a sync request and as the storage key of the local cache.
type Scope string

const (
	// ScopeItems covers active tasks.
	ScopeItems Scope = "items"

	// ScopeProjects covers projects, both personal and workspace ones.
	ScopeProjects Scope = "projects"

	// ScopeSections covers sections inside projects.
	ScopeSections Scope = "sections"

	// ScopeLabels covers personal labels.
	ScopeLabels Scope = "labels"

	// ScopeFilters covers saved filter queries.
	ScopeFilters Scope = "filters"

	// ScopeCollaborators covers users visible to the account through
	// shared projects, including the account owner.
	ScopeCollaborators Scope = "collaborators"

	// ScopeWorkspaces covers workspaces the user is a member of.
	ScopeWorkspaces Scope = "workspaces"

	// ScopeFolders covers workspace folders used to group projects.
	ScopeFolders Scope = "folders"
)

// AllScopes returns every scope known to the client, in a stable order.
func AllScopes() []Scope {
	return []Scope{
		ScopeItems,
		ScopeProjects,
		ScopeSections,
		ScopeLabels,
		ScopeFilters,
		ScopeCollaborators,
		ScopeWorkspaces,
		ScopeFolders,
	}
}

// ParseScope converts a user-supplied name into a Scope.
func ParseScope(s string) (Scope, error) {
	for _, known := range AllScopes() {
		if string(known) == s {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown resource scope %q", s)
}

func (s Scope) String() string {
	return string(s)
}
