package models

import "time"

// Project is a container for tasks. A project either lives in the user's
// personal space (WorkspaceID nil) or belongs to a shared workspace.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Color is the service color name used when rendering the project.
	Color string `json:"color,omitempty"`

	// ParentID nests the project under another project.
	ParentID *string `json:"parent_id,omitempty"`

	// WorkspaceID is set for workspace projects, nil for personal ones.
	WorkspaceID *string `json:"workspace_id,omitempty"`

	// FolderID groups the project into a workspace folder.
	FolderID *string `json:"folder_id,omitempty"`

	IsShared   bool `json:"is_shared,omitempty"`
	IsArchived bool `json:"is_archived,omitempty"`
	IsDeleted  bool `json:"is_deleted,omitempty"`

	// InboxProject marks the default project new tasks land in.
	InboxProject bool `json:"inbox_project,omitempty"`

	ChildOrder int       `json:"child_order,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p Project) EntityID() string    { return p.ID }
func (p Project) EntityDeleted() bool { return p.IsDeleted }

// Section divides a project into named groups of tasks.
type Section struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	Name         string `json:"name"`
	SectionOrder int    `json:"section_order,omitempty"`
	IsDeleted    bool   `json:"is_deleted,omitempty"`
}

func (s Section) EntityID() string    { return s.ID }
func (s Section) EntityDeleted() bool { return s.IsDeleted }

// Folder groups workspace projects. Folders exist only inside workspaces.
type Folder struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	ChildOrder  int    `json:"child_order,omitempty"`
	IsDeleted   bool   `json:"is_deleted,omitempty"`
}

func (f Folder) EntityID() string    { return f.ID }
func (f Folder) EntityDeleted() bool { return f.IsDeleted }
