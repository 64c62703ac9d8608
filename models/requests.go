package models

// CreateTaskRequest is the body of a task creation call. ProjectID may
// be empty, in which case the service files the task into the inbox.
type CreateTaskRequest struct {
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	ProjectID   string   `json:"project_id,omitempty"`
	SectionID   string   `json:"section_id,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Labels      []string `json:"labels,omitempty"`

	// DueString is a human phrase ("tomorrow", "every friday") the
	// service parses into a concrete Due.
	DueString  string `json:"due_string,omitempty"`
	AssigneeID string `json:"assignee_id,omitempty"`
}

// UpdateTaskRequest carries a partial task update. Nil fields keep
// their current value.
type UpdateTaskRequest struct {
	Content     *string   `json:"content,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *int      `json:"priority,omitempty"`
	Labels      *[]string `json:"labels,omitempty"`
	DueString   *string   `json:"due_string,omitempty"`
	AssigneeID  *string   `json:"assignee_id,omitempty"`
}

// CreateProjectRequest is the body of a project creation call.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	WorkspaceID string `json:"workspace_id,omitempty"`
}
