// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/auth"
	"github.com/taskdesk/taskdesk-cli/internal/cache"
	"github.com/taskdesk/taskdesk-cli/internal/config"
	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/internal/mock"
	"github.com/taskdesk/taskdesk-cli/internal/paginate"
	"github.com/taskdesk/taskdesk-cli/models"
)

// ── Harness ──────────────────────────────────────────────────────────────────

// newTestApp wires an App around a mock client and a real on-disk cache
// store, bypassing configuration loading. Commands run against it the
// same way the binary runs them.
func newTestApp(t *testing.T, client api.Client) *App {
	t.Helper()

	store, err := cache.Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ttl := time.Hour
	creds := auth.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"), logger.Nop())

	return &App{
		cfg:     &config.Config{Cache: config.Cache{TTL: &ttl}},
		log:     logger.Nop(),
		client:  client,
		creds:   creds,
		store:   store,
		manager: cache.NewManager(store, client, ttl, false, logger.Nop()),
		auth:    auth.NewService(creds, client, store, logger.Nop()),
		build:   models.NewBuildInfo("1.2.3", "2026-08-01", "abc1234"),
		out:     &bytes.Buffer{},
	}
}

func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	out := app.out.(*bytes.Buffer)
	out.Reset()

	root := newRoot(app)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// seedCache loads a synced snapshot for account u1: two tasks, one
// project, two collaborators. Every scope gets the token, so reads stay
// local for the test TTL.
func seedCache(t *testing.T, app *App) {
	t.Helper()

	assignee := "u2"
	delta := models.DeltaPayload{
		SyncToken: "tok-1",
		FullSync:  true,
		Items: []models.Task{
			{ID: "t1", Content: "buy oat milk", ProjectID: "p1", Priority: models.PriorityNormal},
			{ID: "t2", Content: "file taxes", ProjectID: "p1", Priority: models.PriorityHigh, AssigneeID: &assignee},
		},
		Projects: []models.Project{{ID: "p1", Name: "Home"}},
		Collaborators: []models.User{
			{ID: "u1", Email: "ada@example.com", FullName: "Ada Lovelace"},
			{ID: "u2", Email: "grace@example.com", FullName: "Grace Hopper"},
		},
		User: &models.User{ID: "u1", Email: "ada@example.com", FullName: "Ada Lovelace"},
	}
	require.NoError(t, app.store.Apply(context.Background(), models.AllScopes(), delta))
}

func decodePage[T any](t *testing.T, out string) paginate.Page[T] {
	t.Helper()
	var page paginate.Page[T]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	return page
}

// ── task list ────────────────────────────────────────────────────────────────

func TestTaskList_ServedFromCacheWithoutNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT calls: any network traffic fails the test.
	app := newTestApp(t, mock.NewMockClient(ctrl))
	seedCache(t, app)

	out, err := runCmd(t, app, "task", "list", "--json")
	require.NoError(t, err)

	// The default listing is "mine": u1's tasks plus unassigned ones.
	page := decodePage[models.Task](t, out)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "t1", page.Results[0].ID)

	out, err = runCmd(t, app, "task", "list", "--json", "--assignee", "all")
	require.NoError(t, err)
	assert.Len(t, decodePage[models.Task](t, out).Results, 2)
}

func TestTaskList_PagesCachedResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mock.NewMockClient(ctrl))
	seedCache(t, app)

	out, err := runCmd(t, app, "task", "list", "--json", "--assignee", "all", "--limit", "1")
	require.NoError(t, err)

	page := decodePage[models.Task](t, out)
	require.Len(t, page.Results, 1)
	require.NotNil(t, page.NextCursor)

	out, err = runCmd(t, app, "task", "list", "--json", "--assignee", "all", "--limit", "1", "--cursor", *page.NextCursor)
	require.NoError(t, err)

	page = decodePage[models.Task](t, out)
	require.Len(t, page.Results, 1)
	assert.Nil(t, page.NextCursor)
}

func TestTaskList_NeverSyncedFetchesDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)

	scopes := []models.Scope{models.ScopeItems, models.ScopeProjects, models.ScopeCollaborators}
	client.EXPECT().
		Sync(gomock.Any(), scopes, models.FullSyncToken).
		Return(models.DeltaPayload{
			SyncToken: "tok-1",
			FullSync:  true,
			Items:     []models.Task{{ID: "t1", Content: "buy oat milk", ProjectID: "p1"}},
			Projects:  []models.Project{{ID: "p1", Name: "Home"}},
			User:      &models.User{ID: "u1", Email: "ada@example.com"},
		}, nil)

	out, err := runCmd(t, app, "task", "list", "--json")
	require.NoError(t, err)

	page := decodePage[models.Task](t, out)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "t1", page.Results[0].ID)

	// The delta landed in the cache, not just in the output.
	token, err := app.store.Token(context.Background(), models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestTaskList_FallsBackToLiveWhenSyncFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)

	client.EXPECT().
		Sync(gomock.Any(), gomock.Any(), models.FullSyncToken).
		Return(models.DeltaPayload{}, api.ErrRemoteUnavailable)
	client.EXPECT().
		ListTasks(gomock.Any(), api.TaskListParams{}).
		Return(paginate.Page[models.Task]{
			Results: []models.Task{{ID: "t7", Content: "from the service", ProjectID: "p1"}},
		}, nil)
	client.EXPECT().
		ListProjects(gomock.Any(), api.PageParams{Limit: paginate.MaxLimit}).
		Return(paginate.Page[models.Project]{Results: []models.Project{{ID: "p1", Name: "Home"}}}, nil)

	out, err := runCmd(t, app, "task", "list", "--json", "--assignee", "all")
	require.NoError(t, err)

	page := decodePage[models.Task](t, out)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "t7", page.Results[0].ID)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestTaskAdd_InvalidatesItemsScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)
	seedCache(t, app)

	client.EXPECT().
		CreateTask(gomock.Any(), models.CreateTaskRequest{Content: "hello world", Priority: models.PriorityNormal}).
		Return(models.Task{ID: "t9", Content: "hello world", ProjectID: "p1"}, nil)

	out, err := runCmd(t, app, "task", "add", "hello", "world")
	require.NoError(t, err)
	assert.Contains(t, out, "t9")

	// The write marks items stale but keeps the sync token, so the next
	// read fetches an incremental delta rather than a full snapshot.
	refreshed, err := app.store.LastRefreshed(context.Background(), models.ScopeItems)
	require.NoError(t, err)
	assert.True(t, refreshed.IsZero())

	token, err := app.store.Token(context.Background(), models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestTaskAdd_RejectsBadPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mock.NewMockClient(ctrl))

	_, err := runCmd(t, app, "task", "add", "hello", "--priority", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
}

func TestTaskEdit_RequiresAtLeastOneChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mock.NewMockClient(ctrl))

	_, err := runCmd(t, app, "task", "edit", "t1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestTaskView_FallsBackToLiveWhenNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)
	seedCache(t, app)

	client.EXPECT().
		GetTask(gomock.Any(), "zz").
		Return(models.Task{ID: "zz", Content: "shared with me", ProjectID: "p-foreign"}, nil)

	out, err := runCmd(t, app, "task", "view", "zz")
	require.NoError(t, err)
	assert.Contains(t, out, "shared with me")
}

// ── sync ─────────────────────────────────────────────────────────────────────

func TestSync_PresentsSavedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)
	seedCache(t, app)

	client.EXPECT().
		Sync(gomock.Any(), models.AllScopes(), "tok-1").
		Return(models.DeltaPayload{SyncToken: "tok-2"}, nil)

	out, err := runCmd(t, app, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Synced")

	token, err := app.store.Token(context.Background(), models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestSyncFull_RequestsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)
	seedCache(t, app)

	client.EXPECT().
		Sync(gomock.Any(), models.AllScopes(), models.FullSyncToken).
		Return(models.DeltaPayload{
			SyncToken: "tok-2",
			FullSync:  true,
			Items:     []models.Task{{ID: "t1", Content: "buy oat milk", ProjectID: "p1"}},
		}, nil)

	_, err := runCmd(t, app, "sync", "--full")
	require.NoError(t, err)

	// The snapshot replaced the two seeded tasks.
	n, err := app.store.Count(context.Background(), models.ScopeItems)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ── Account commands ─────────────────────────────────────────────────────────

func TestWhoami_ServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mock.NewMockClient(ctrl))
	seedCache(t, app)

	out, err := runCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace <ada@example.com> (u1)\n", out)
}

func TestWhoami_FallsBackToLiveWhenNeverSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)

	client.EXPECT().
		CurrentUser(gomock.Any()).
		Return(models.User{ID: "u1", Email: "ada@example.com", FullName: "Ada Lovelace"}, nil)

	out, err := runCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "(u1)")
}

func TestAuthLogin_TokenFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)

	client.EXPECT().SetToken("tok-flag")
	client.EXPECT().
		CurrentUser(gomock.Any()).
		Return(models.User{ID: "u1", Email: "ada@example.com", FullName: "Ada Lovelace"}, nil)

	out, err := runCmd(t, app, "auth", "login", "--token", "tok-flag")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in")

	creds, err := app.creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-flag", creds.Token)
	assert.Equal(t, "u1", creds.UserID)
}

func TestAuthLogin_PromptsWhenNoTokenGiven(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	t.Setenv("TASKDESK_TOKEN", "")

	client := mock.NewMockClient(ctrl)
	app := newTestApp(t, client)

	client.EXPECT().SetToken("tok-stdin")
	client.EXPECT().
		CurrentUser(gomock.Any()).
		Return(models.User{ID: "u1", Email: "ada@example.com"}, nil)

	out := app.out.(*bytes.Buffer)
	root := newRoot(app)
	root.SetIn(strings.NewReader("tok-stdin\n"))
	root.SetArgs([]string{"auth", "login"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "API token:")

	creds, err := app.creds.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-stdin", creds.Token)
}

func TestAuthToken_PrintsSavedCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mock.NewMockClient(ctrl))
	require.NoError(t, app.creds.Save(auth.Credentials{Token: "tok-xyz", UserID: "u1"}))

	out, err := runCmd(t, app, "auth", "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz\n", out)
}

func TestAuthStatus_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mock.NewMockClient(ctrl))

	out, err := runCmd(t, app, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

// ── cache ────────────────────────────────────────────────────────────────────

func TestCacheStatus_ShowsPerScopeState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mock.NewMockClient(ctrl))
	seedCache(t, app)

	out, err := runCmd(t, app, "cache", "status")
	require.NoError(t, err)
	assert.Contains(t, out, app.store.Path())
	assert.Contains(t, out, "items")
	assert.Contains(t, out, "collaborators")
}

func TestCacheClear_DropsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newTestApp(t, mock.NewMockClient(ctrl))
	seedCache(t, app)

	_, err := runCmd(t, app, "cache", "clear")
	require.NoError(t, err)

	n, err := app.store.Count(context.Background(), models.ScopeItems)
	require.NoError(t, err)
	assert.Zero(t, n)

	token, err := app.store.Token(context.Background(), models.ScopeItems)
	require.NoError(t, err)
	assert.Empty(t, token)
}

// ── version ──────────────────────────────────────────────────────────────────

func TestVersion_RunsWithoutConfiguration(t *testing.T) {
	// No cfg, no store, no client: version must not need any of them.
	app := &App{build: models.NewBuildInfo("1.2.3", "2026-08-01", "abc1234"), out: &bytes.Buffer{}}

	out, err := runCmd(t, app, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "taskdesk 1.2.3")
}

func TestVersion_JSON(t *testing.T) {
	app := &App{build: models.NewBuildInfo("1.2.3", "2026-08-01", "abc1234"), out: &bytes.Buffer{}}

	out, err := runCmd(t, app, "version", "--json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.2.3", got["version"])
	assert.Equal(t, "abc1234", got["commit"])
}
