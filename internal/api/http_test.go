// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdesk/taskdesk-cli/internal/config"
	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/models"
)

// newTestClient builds an httpClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpClient {
	t.Helper()

	c, err := New(config.API{
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return c.(*httpClient)
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSync_FullSnapshotRequest(t *testing.T) {
	want := models.DeltaPayload{
		SyncToken: "tok-1",
		FullSync:  true,
		Items:     []models.Task{{ID: "t1", ProjectID: "p1", Content: "buy milk"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sync", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req models.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.FullSyncToken, req.SyncToken)
		assert.Equal(t, []models.Scope{models.ScopeItems}, req.ResourceTypes)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("sometoken")

	// An empty token is presented as a full-sync request.
	got, err := c.Sync(context.Background(), []models.Scope{models.ScopeItems}, "")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.SyncToken)
	assert.True(t, got.FullSync)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "buy milk", got.Items[0].Content)
}

func TestSync_PresentsStoredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tok-5", req.SyncToken)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DeltaPayload{SyncToken: "tok-6"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Sync(context.Background(), []models.Scope{models.ScopeItems}, "tok-5")

	require.NoError(t, err)
	assert.Equal(t, "tok-6", got.SyncToken)
}

func TestSync_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Sync(context.Background(), []models.Scope{models.ScopeItems}, "tok-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestSync_ConnectionErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := newTestClient(t, srv.URL)
	_, err := c.Sync(context.Background(), []models.Scope{models.ScopeItems}, "tok-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestCurrentUser_Success(t *testing.T) {
	want := models.User{ID: "u1", Email: "ann@example.com", FullName: "Ann Ford"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/user", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("sometoken")

	got, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCurrentUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CurrentUser(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrRemoteRejected)
}

// ── ListTasks ────────────────────────────────────────────────────────────────

func TestListTasks_PageRequest(t *testing.T) {
	next := "cursor-2"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tasks", r.URL.Path)
		assert.Equal(t, "cursor-1", r.URL.Query().Get("cursor"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "p1", r.URL.Query().Get("project_id"))
		assert.Empty(t, r.URL.Query().Get("label"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results":     []models.Task{{ID: "t1", ProjectID: "p1", Content: "buy milk"}},
			"next_cursor": next,
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	page, err := c.ListTasks(context.Background(), TaskListParams{
		PageParams: PageParams{Cursor: "cursor-1", Limit: 100},
		ProjectID:  "p1",
	})

	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "buy milk", page.Results[0].Content)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, next, *page.NextCursor)
}

func TestListTasks_FinalPageHasNoCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []models.Task{},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	page, err := c.ListTasks(context.Background(), TaskListParams{})

	require.NoError(t, err)
	assert.Empty(t, page.Results)
	assert.Nil(t, page.NextCursor)
}

// ── Task mutations ───────────────────────────────────────────────────────────

func TestCreateTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.CreateTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "buy milk", req.Content)
		assert.Equal(t, "tomorrow", req.DueString)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Task{ID: "t1", ProjectID: "p1", Content: req.Content})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("sometoken")

	got, err := c.CreateTask(context.Background(), models.CreateTaskRequest{
		Content:   "buy milk",
		DueString: "tomorrow",
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
}

func TestCloseTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tasks/t1/close", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.CloseTask(context.Background(), "t1"))
}

func TestReopenTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tasks/t1/reopen", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.ReopenTask(context.Background(), "t1"))
}

func TestDeleteTask_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("task not found"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.DeleteTask(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Projects ─────────────────────────────────────────────────────────────────

func TestCreateProject_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects", r.URL.Path)

		var req models.CreateProjectRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Errands", req.Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Project{ID: "p9", Name: req.Name})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.CreateProject(context.Background(), models.CreateProjectRequest{Name: "Errands"})

	require.NoError(t, err)
	assert.Equal(t, "p9", got.ID)
}

func TestProjectCollaborators_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects/p1/collaborators", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []models.User{{ID: "u1", FullName: "Ann Ford"}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	page, err := c.ProjectCollaborators(context.Background(), "p1", PageParams{})

	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Ann Ford", page.Results[0].FullName)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrRemoteRejected},
		{"unauthorized", http.StatusUnauthorized, ErrRemoteRejected},
		{"forbidden", http.StatusForbidden, ErrRemoteRejected},
		{"not found", http.StatusNotFound, ErrRemoteRejected},
		{"conflict", http.StatusConflict, ErrRemoteRejected},
		{"request timeout", http.StatusRequestTimeout, ErrRemoteUnavailable},
		{"rate limited", http.StatusTooManyRequests, ErrRemoteUnavailable},
		{"internal error", http.StatusInternalServerError, ErrRemoteUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.CurrentUser(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid https", "https://api.taskdesk.io", "https://api.taskdesk.io", false},
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme defaults to https", "api.taskdesk.io", "https://api.taskdesk.io", false},
		{"trailing slash", "https://api.taskdesk.io/", "https://api.taskdesk.io", false},
		{"empty", "", "", true},
		{"no host", "https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
