// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/taskdesk/taskdesk-cli/internal/config"
	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/internal/paginate"
	"github.com/taskdesk/taskdesk-cli/models"
)

type httpClient struct {
	client *resty.Client
	log    *logger.Logger

	mu    sync.RWMutex
	token string
}

// New constructs the HTTP implementation of [Client] from the API
// configuration. It normalises and validates the base URL, configures
// the underlying resty client with the resolved base URL and request
// timeout, and seeds the token when the configuration carries one.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func New(cfg config.API, log *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", "taskdesk-cli")

	c := &httpClient{client: cli, log: log}
	if cfg.Token != "" {
		c.SetToken(cfg.Token)
	}
	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [Client]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (c *httpClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token implements [Client].
func (c *httpClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// authedRequest builds a request carrying the bearer token and a fresh
// request id, so a server-side trace can be matched to a client log line.
func (c *httpClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// Sync implements [Client]. It POSTs the presented token and scope list
// to POST /api/v1/sync and decodes the delta payload. The service
// answers with a full snapshot when token is FullSyncToken or no longer
// valid; the payload's FullSync flag tells the two apart.
func (c *httpClient) Sync(ctx context.Context, scopes []models.Scope, token string) (models.DeltaPayload, error) {
	if token == "" {
		token = models.FullSyncToken
	}

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SyncRequest{SyncToken: token, ResourceTypes: scopes}).
		Post("/api/v1/sync")
	if err != nil {
		return models.DeltaPayload{}, transportErr("sync request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeltaPayload{}, err
	}

	var delta models.DeltaPayload
	if err = json.Unmarshal(resp.Body(), &delta); err != nil {
		return models.DeltaPayload{}, fmt.Errorf("decode sync response: %w", err)
	}

	return delta, nil
}

// CurrentUser implements [Client]. It GETs /api/v1/user.
func (c *httpClient) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := c.authedRequest(ctx).
		SetResult(&user).
		Get("/api/v1/user")
	if err != nil {
		return models.User{}, transportErr("current user request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListTasks implements [Client]. It GETs one page of /api/v1/tasks.
func (c *httpClient) ListTasks(ctx context.Context, params TaskListParams) (paginate.Page[models.Task], error) {
	return getPage[models.Task](ctx, c, "/api/v1/tasks", params.PageParams, map[string]string{
		"project_id": params.ProjectID,
		"section_id": params.SectionID,
		"label":      params.Label,
	})
}

// GetTask implements [Client].
func (c *httpClient) GetTask(ctx context.Context, id string) (models.Task, error) {
	var task models.Task

	resp, err := c.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&task).
		Get("/api/v1/tasks/{id}")
	if err != nil {
		return models.Task{}, transportErr("get task request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// CreateTask implements [Client]. It POSTs the request to /api/v1/tasks
// and returns the task as the service stored it, ids and parsed due
// date included.
func (c *httpClient) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	var task models.Task

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&task).
		Post("/api/v1/tasks")
	if err != nil {
		return models.Task{}, transportErr("create task request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// UpdateTask implements [Client]. It POSTs the partial update to
// POST /api/v1/tasks/{id}.
func (c *httpClient) UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (models.Task, error) {
	var task models.Task

	resp, err := c.authedRequest(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&task).
		Post("/api/v1/tasks/{id}")
	if err != nil {
		return models.Task{}, transportErr("update task request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// CloseTask implements [Client]. POST /api/v1/tasks/{id}/close.
func (c *httpClient) CloseTask(ctx context.Context, id string) error {
	resp, err := c.authedRequest(ctx).
		SetPathParam("id", id).
		Post("/api/v1/tasks/{id}/close")
	if err != nil {
		return transportErr("close task request", err)
	}
	return mapHTTPError(resp)
}

// ReopenTask implements [Client]. POST /api/v1/tasks/{id}/reopen.
func (c *httpClient) ReopenTask(ctx context.Context, id string) error {
	resp, err := c.authedRequest(ctx).
		SetPathParam("id", id).
		Post("/api/v1/tasks/{id}/reopen")
	if err != nil {
		return transportErr("reopen task request", err)
	}
	return mapHTTPError(resp)
}

// DeleteTask implements [Client]. DELETE /api/v1/tasks/{id}.
func (c *httpClient) DeleteTask(ctx context.Context, id string) error {
	resp, err := c.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/v1/tasks/{id}")
	if err != nil {
		return transportErr("delete task request", err)
	}
	return mapHTTPError(resp)
}

// ListProjects implements [Client]. It GETs one page of /api/v1/projects.
func (c *httpClient) ListProjects(ctx context.Context, params PageParams) (paginate.Page[models.Project], error) {
	return getPage[models.Project](ctx, c, "/api/v1/projects", params, nil)
}

// CreateProject implements [Client].
func (c *httpClient) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	var proj models.Project

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&proj).
		Post("/api/v1/projects")
	if err != nil {
		return models.Project{}, transportErr("create project request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return proj, nil
}

// DeleteProject implements [Client]. DELETE /api/v1/projects/{id}.
func (c *httpClient) DeleteProject(ctx context.Context, id string) error {
	resp, err := c.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/v1/projects/{id}")
	if err != nil {
		return transportErr("delete project request", err)
	}
	return mapHTTPError(resp)
}

// ListSections implements [Client]. It GETs one page of /api/v1/sections.
func (c *httpClient) ListSections(ctx context.Context, projectID string, params PageParams) (paginate.Page[models.Section], error) {
	return getPage[models.Section](ctx, c, "/api/v1/sections", params, map[string]string{
		"project_id": projectID,
	})
}

// ListLabels implements [Client]. It GETs one page of /api/v1/labels.
func (c *httpClient) ListLabels(ctx context.Context, params PageParams) (paginate.Page[models.Label], error) {
	return getPage[models.Label](ctx, c, "/api/v1/labels", params, nil)
}

// ListFilters implements [Client]. It GETs one page of /api/v1/filters.
func (c *httpClient) ListFilters(ctx context.Context, params PageParams) (paginate.Page[models.Filter], error) {
	return getPage[models.Filter](ctx, c, "/api/v1/filters", params, nil)
}

// ListWorkspaces implements [Client]. It GETs one page of
// /api/v1/workspaces.
func (c *httpClient) ListWorkspaces(ctx context.Context, params PageParams) (paginate.Page[models.Workspace], error) {
	return getPage[models.Workspace](ctx, c, "/api/v1/workspaces", params, nil)
}

// ProjectCollaborators implements [Client]. It GETs one page of
// /api/v1/projects/{id}/collaborators.
func (c *httpClient) ProjectCollaborators(ctx context.Context, projectID string, params PageParams) (paginate.Page[models.User], error) {
	return getPage[models.User](ctx, c, "/api/v1/projects/"+url.PathEscape(projectID)+"/collaborators", params, nil)
}

// getPage GETs one page of a cursor-paginated collection. extra holds
// resource-specific query parameters; empty values are omitted.
func getPage[T any](ctx context.Context, c *httpClient, path string, params PageParams, extra map[string]string) (paginate.Page[T], error) {
	req := c.authedRequest(ctx)
	if params.Cursor != "" {
		req.SetQueryParam("cursor", params.Cursor)
	}
	if params.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(params.Limit))
	}
	for key, value := range extra {
		if value != "" {
			req.SetQueryParam(key, value)
		}
	}

	resp, err := req.Get(path)
	if err != nil {
		return paginate.Page[T]{}, transportErr("list request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return paginate.Page[T]{}, err
	}

	var page paginate.Page[T]
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return paginate.Page[T]{}, fmt.Errorf("decode list response: %w", err)
	}

	return page, nil
}
