// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

// Package api implements the HTTP client for the Taskdesk service.
//
// The primary abstraction is [Client], which decouples commands and the
// local cache from the transport. The package ships an HTTP/REST
// implementation ([New]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. Every remote failure wraps one of the two category
// errors: [ErrRemoteUnavailable] for faults worth retrying later
// (transport failures, 5xx, timeouts, rate limits) and [ErrRemoteRejected]
// for requests the service understood and refused.
package api

import (
	"context"

	"github.com/taskdesk/taskdesk-cli/internal/paginate"
	"github.com/taskdesk/taskdesk-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// PageParams selects one page of a cursor-paginated listing. A zero
// value asks for the first page at the service's default size.
type PageParams struct {
	Cursor string
	Limit  int
}

// TaskListParams narrows a live task listing. Empty fields are omitted
// from the query.
type TaskListParams struct {
	PageParams

	ProjectID string
	SectionID string
	Label     string
}

// Client is the full surface of the Taskdesk service the CLI uses.
// Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type Client interface {
	// SetToken stores the API token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the API token currently held by the client, or an
	// empty string if none has been set.
	Token() string

	// Sync fetches the changes in the given scopes since token. An
	// empty or FullSyncToken token requests a complete snapshot. The
	// returned payload carries the token to present on the next call.
	Sync(ctx context.Context, scopes []models.Scope, token string) (models.DeltaPayload, error)

	// CurrentUser returns the account the token belongs to. It doubles
	// as the token validity check during login.
	CurrentUser(ctx context.Context) (models.User, error)

	// ListTasks returns one page of active tasks matching params.
	ListTasks(ctx context.Context, params TaskListParams) (paginate.Page[models.Task], error)

	// GetTask returns a single task by id.
	GetTask(ctx context.Context, id string) (models.Task, error)

	// CreateTask creates a task and returns it as stored by the service.
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)

	// UpdateTask applies a partial update and returns the updated task.
	UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (models.Task, error)

	// CloseTask marks a task completed. Recurring tasks advance to
	// their next occurrence instead of closing.
	CloseTask(ctx context.Context, id string) error

	// ReopenTask reverts a completed task to active.
	ReopenTask(ctx context.Context, id string) error

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, id string) error

	// ListProjects returns one page of projects.
	ListProjects(ctx context.Context, params PageParams) (paginate.Page[models.Project], error)

	// CreateProject creates a project and returns it as stored.
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error)

	// DeleteProject removes a project and everything in it.
	DeleteProject(ctx context.Context, id string) error

	// ListSections returns one page of sections, optionally narrowed to
	// one project by projectID.
	ListSections(ctx context.Context, projectID string, params PageParams) (paginate.Page[models.Section], error)

	// ListLabels returns one page of personal labels.
	ListLabels(ctx context.Context, params PageParams) (paginate.Page[models.Label], error)

	// ListFilters returns one page of saved filter queries.
	ListFilters(ctx context.Context, params PageParams) (paginate.Page[models.Filter], error)

	// ListWorkspaces returns one page of workspaces the account belongs to.
	ListWorkspaces(ctx context.Context, params PageParams) (paginate.Page[models.Workspace], error)

	// ProjectCollaborators returns one page of users who can see the
	// given project.
	ProjectCollaborators(ctx context.Context, projectID string, params PageParams) (paginate.Page[models.User], error)
}
