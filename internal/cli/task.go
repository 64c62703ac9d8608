// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/cache"
	"github.com/taskdesk/taskdesk-cli/internal/logger"
	"github.com/taskdesk/taskdesk-cli/internal/names"
	"github.com/taskdesk/taskdesk-cli/internal/paginate"
	"github.com/taskdesk/taskdesk-cli/models"
)

// webAppBaseURL is the browser-facing application, used for the links
// `task view --copy` puts on the clipboard.
const webAppBaseURL = "https://app.taskdesk.io"

func taskURL(id string) string {
	return webAppBaseURL + "/app/task/" + url.PathEscape(id)
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		GroupID: groupTasks,
		Short:   "List and manage tasks",
	}
	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskAddCmd(app),
		newTaskEditCmd(app),
		newTaskDoneCmd(app),
		newTaskReopenCmd(app),
		newTaskRemoveCmd(app),
		newTaskViewCmd(app),
	)
	return cmd
}

// taskListFlags narrows `task list` output. The zero value lists the
// caller's tasks across all projects.
type taskListFlags struct {
	project   string
	section   string
	label     string
	workspace string
	personal  bool
	assignee  string
	due       string
	limit     int
	cursor    string
}

func newTaskListCmd(app *App) *cobra.Command {
	var f taskListFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active tasks",
		Long: `List active tasks, served from the local cache when it is fresh.

By default the listing shows your tasks: the ones assigned to you plus
the unassigned ones. Use --assignee all for everything, or --assignee ID
for one collaborator.

Examples:
  taskdesk task list --due today
  taskdesk task list --project 6X7rM8997g3RQmvh --assignee all
  taskdesk task list --workspace 42 --due 7d --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTaskList(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVar(&f.project, "project", "", "only tasks in this project id")
	cmd.Flags().StringVar(&f.section, "section", "", "only tasks in this section id")
	cmd.Flags().StringVar(&f.label, "label", "", "only tasks carrying this label")
	cmd.Flags().StringVar(&f.workspace, "workspace", "", "only tasks in projects of this workspace id")
	cmd.Flags().BoolVar(&f.personal, "personal", false, "only tasks in personal projects")
	cmd.Flags().StringVar(&f.assignee, "assignee", "me", "assignee filter: me, all, or a user id")
	cmd.Flags().StringVar(&f.due, "due", "", "due filter: today, overdue, or a window like 7d")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "page size (default 50, max 200)")
	cmd.Flags().StringVar(&f.cursor, "cursor", "", "cursor from a previous page")

	return cmd
}

func (a *App) runTaskList(ctx context.Context, f taskListFlags) error {
	repo := a.manager.EnsureFresh(ctx, models.ScopeItems, models.ScopeProjects, models.ScopeCollaborators)
	if repo != nil {
		err := a.listTasksCached(ctx, repo, f)
		if err == nil || !errors.Is(err, errCacheRead) {
			return err
		}
		// Unreadable cache rows degrade to the live path.
	}
	return a.listTasksLive(ctx, f)
}

// errCacheRead marks failures of the cached read path that should fall
// back to the live API rather than fail the command.
var errCacheRead = errors.New("cache read failed")

func (a *App) listTasksCached(ctx context.Context, repo *cache.Repository, f taskListFlags) error {
	log := logger.FromContext(ctx)

	tasks, err := repo.Tasks(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "cli.App.listTasksCached").
			Msg("cached tasks unreadable, falling back to live")
		return errCacheRead
	}
	projects, err := repo.Projects(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "cli.App.listTasksCached").
			Msg("cached projects unreadable, falling back to live")
		return errCacheRead
	}

	userID, err := repo.CurrentUserID(ctx)
	if err != nil || userID == "" {
		userID = a.savedUserID()
	}

	tasks, err = applyTaskFilters(tasks, projects, f, userID, time.Now(), time.Local)
	if err != nil {
		return err
	}
	cache.SortTasks(tasks, time.Local)

	page, err := paginate.Slice(tasks, f.cursor, f.limit)
	if err != nil {
		return err
	}

	resolver := names.NewResolver(a.client, a.log)
	if users, err := repo.Collaborators(ctx); err == nil {
		resolver.Seed(users)
	}
	resolver.Preload(ctx, assigneeIDs(page.Results), projects)

	return a.printTaskPage(page, projects, resolver)
}

func (a *App) listTasksLive(ctx context.Context, f taskListFlags) error {
	page, err := a.client.ListTasks(ctx, api.TaskListParams{
		PageParams: api.PageParams{Cursor: f.cursor, Limit: f.limit},
		ProjectID:  f.project,
		SectionID:  f.section,
		Label:      f.label,
	})
	if err != nil {
		return err
	}

	// One page of projects covers name rendering and the workspace
	// filters; projects beyond it render by id.
	var projects []models.Project
	if pp, err := a.client.ListProjects(ctx, api.PageParams{Limit: paginate.MaxLimit}); err == nil {
		projects = pp.Results
	}

	page.Results, err = applyTaskFilters(page.Results, projects, f, a.savedUserID(), time.Now(), time.Local)
	if err != nil {
		return err
	}

	resolver := names.NewResolver(a.client, a.log)
	resolver.Preload(ctx, assigneeIDs(page.Results), projects)

	return a.printTaskPage(page, projects, resolver)
}

// applyTaskFilters narrows tasks per the list flags. projects back the
// workspace, personal, and name lookups; userID resolves the "me"
// assignee. The same rules run on cached and on live results.
func applyTaskFilters(tasks []models.Task, projects []models.Project, f taskListFlags, userID string, now time.Time, loc *time.Location) ([]models.Task, error) {
	tasks = cache.Active(tasks)

	if f.project != "" {
		tasks = cache.ByProject(tasks, f.project)
	}
	if f.section != "" {
		tasks = cache.BySection(tasks, f.section)
	}
	if f.label != "" {
		tasks = cache.ByLabel(tasks, f.label)
	}
	if f.workspace != "" {
		tasks = cache.InWorkspace(tasks, projects, f.workspace)
	}
	if f.personal {
		tasks = cache.Personal(tasks, projects)
	}

	switch f.assignee {
	case "all":
	case "", "me":
		tasks = cache.Mine(tasks, userID)
	default:
		tasks = cache.AssignedTo(tasks, f.assignee)
	}

	switch f.due {
	case "":
	case "today":
		tasks = cache.DueToday(tasks, now, loc)
	case "overdue":
		tasks = cache.Overdue(tasks, now, loc)
	default:
		days, err := parseDueWindow(f.due)
		if err != nil {
			return nil, err
		}
		tasks = cache.DueBy(tasks, now.AddDate(0, 0, days), loc)
	}

	return tasks, nil
}

// parseDueWindow reads a forward-looking window like "7d" or "7".
func parseDueWindow(s string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
	if err != nil || days < 0 {
		return 0, fmt.Errorf("invalid --due value %q: want today, overdue, or a day count like 7d", s)
	}
	return days, nil
}

// assigneeIDs collects the distinct assignees of tasks, for name
// preloading.
func assigneeIDs(tasks []models.Task) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, t := range tasks {
		if t.AssigneeID == nil || seen[*t.AssigneeID] {
			continue
		}
		seen[*t.AssigneeID] = true
		ids = append(ids, *t.AssigneeID)
	}
	return ids
}

func projectNames(projects []models.Project) map[string]string {
	byID := make(map[string]string, len(projects))
	for _, p := range projects {
		byID[p.ID] = p.Name
	}
	return byID
}

func (a *App) printTaskPage(page paginate.Page[models.Task], projects []models.Project, resolver *names.Resolver) error {
	if a.jsonOut {
		return a.printJSON(page)
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No tasks."))
		return nil
	}

	byProject := projectNames(projects)
	now := time.Now()

	rows := make([][]string, 0, len(page.Results))
	for _, t := range page.Results {
		project := t.ProjectID
		if name, ok := byProject[t.ProjectID]; ok {
			project = name
		}
		assignee := ""
		if t.AssigneeID != nil {
			assignee = resolver.DisplayName(*t.AssigneeID)
		}
		rows = append(rows, []string{
			t.ID,
			truncate(t.Content, 60),
			formatPriority(t.Priority),
			formatDue(t.Due, now, time.Local),
			truncate(project, 24),
			truncate(assignee, 24),
		})
	}

	renderTable(a.out, []string{"ID", "TASK", "PRI", "DUE", "PROJECT", "ASSIGNEE"}, rows)
	nextPageHint(a.out, page.NextCursor)
	return nil
}

// ── Mutations ────────────────────────────────────────────────────────────────

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		project     string
		section     string
		parent      string
		description string
		due         string
		assignee    string
		priority    int
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "add CONTENT...",
		Short: "Add a task",
		Long: `Add a task. The remaining arguments form the task content.

Examples:
  taskdesk task add Pay rent --due "first of every month"
  taskdesk task add "Review the deploy checklist" --project 6X7r --priority 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if priority < models.PriorityNormal || priority > models.PriorityUrgent {
				return fmt.Errorf("priority must be between %d and %d", models.PriorityNormal, models.PriorityUrgent)
			}

			task, err := app.client.CreateTask(ctx, models.CreateTaskRequest{
				Content:     strings.Join(args, " "),
				Description: description,
				ProjectID:   project,
				SectionID:   section,
				ParentID:    parent,
				Priority:    priority,
				Labels:      labels,
				DueString:   due,
				AssigneeID:  assignee,
			})
			if err != nil {
				return err
			}
			app.invalidate(ctx, models.ScopeItems)

			if app.jsonOut {
				return app.printJSON(task)
			}
			fmt.Fprintf(app.out, "%s %s  %s\n", okStyle.Render("Added"), task.ID, task.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "project id (defaults to the inbox)")
	cmd.Flags().StringVar(&section, "section", "", "section id inside the project")
	cmd.Flags().StringVar(&parent, "parent", "", "parent task id, making this a sub-task")
	cmd.Flags().StringVar(&description, "description", "", "free-form task description")
	cmd.Flags().StringVar(&due, "due", "", `due phrase, e.g. "tomorrow 9am" or "every friday"`)
	cmd.Flags().StringVar(&assignee, "assignee", "", "user id to assign the task to")
	cmd.Flags().IntVar(&priority, "priority", models.PriorityNormal, "priority from 1 (normal) to 4 (urgent)")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "label names to attach")

	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var (
		content     string
		description string
		due         string
		assignee    string
		priority    int
		labels      []string
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task",
		Long:  "Edit a task. Only the flags you pass change; everything else stays.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var req models.UpdateTaskRequest
			if cmd.Flags().Changed("content") {
				req.Content = &content
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("due") {
				req.DueString = &due
			}
			if cmd.Flags().Changed("assignee") {
				req.AssigneeID = &assignee
			}
			if cmd.Flags().Changed("priority") {
				if priority < models.PriorityNormal || priority > models.PriorityUrgent {
					return fmt.Errorf("priority must be between %d and %d", models.PriorityNormal, models.PriorityUrgent)
				}
				req.Priority = &priority
			}
			if cmd.Flags().Changed("labels") {
				req.Labels = &labels
			}
			if req == (models.UpdateTaskRequest{}) {
				return errors.New("nothing to change: pass at least one of --content, --description, --due, --priority, --labels, --assignee")
			}

			task, err := app.client.UpdateTask(ctx, args[0], req)
			if err != nil {
				return err
			}
			app.invalidate(ctx, models.ScopeItems)

			if app.jsonOut {
				return app.printJSON(task)
			}
			fmt.Fprintf(app.out, "%s %s  %s\n", okStyle.Render("Updated"), task.ID, task.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "new task content")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&due, "due", "", "new due phrase; an empty value removes the deadline")
	cmd.Flags().StringVar(&assignee, "assignee", "", "new assignee user id; an empty value unassigns")
	cmd.Flags().IntVar(&priority, "priority", 0, "new priority from 1 (normal) to 4 (urgent)")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "replacement label set")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Complete a task",
		Long:  "Complete a task. Recurring tasks advance to their next occurrence.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.client.CloseTask(ctx, args[0]); err != nil {
				return err
			}
			app.invalidate(ctx, models.ScopeItems)
			fmt.Fprintf(app.out, "%s %s\n", okStyle.Render("Completed"), args[0])
			return nil
		},
	}
}

func newTaskReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen ID",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.client.ReopenTask(ctx, args[0]); err != nil {
				return err
			}
			app.invalidate(ctx, models.ScopeItems)
			fmt.Fprintf(app.out, "%s %s\n", okStyle.Render("Reopened"), args[0])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.client.DeleteTask(ctx, args[0]); err != nil {
				return err
			}
			app.invalidate(ctx, models.ScopeItems)
			fmt.Fprintf(app.out, "%s %s\n", okStyle.Render("Deleted"), args[0])
			return nil
		},
	}
}

func newTaskViewCmd(app *App) *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "view ID",
		Short: "Show one task in full",
		Long:  "Show one task in full. With --copy the task's web link goes to the clipboard.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			task, repo, err := app.findTask(ctx, id)
			if err != nil {
				return err
			}

			if app.jsonOut {
				if err := app.printJSON(task); err != nil {
					return err
				}
			} else {
				app.printTaskDetail(ctx, task, repo)
			}

			if copyURL {
				if err := clipboard.WriteAll(taskURL(id)); err != nil {
					return fmt.Errorf("copy link to clipboard: %w", err)
				}
				if !app.jsonOut {
					fmt.Fprintln(app.out, dimStyle.Render("Link copied to clipboard."))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyURL, "copy", false, "copy the task's web link to the clipboard")

	return cmd
}

// findTask reads the task from the cache when possible, otherwise from
// the service. The repository is returned for follow-up name lookups
// and is nil on the live path.
func (a *App) findTask(ctx context.Context, id string) (models.Task, *cache.Repository, error) {
	if repo := a.manager.EnsureFresh(ctx, models.ScopeItems); repo != nil {
		task, err := repo.Task(ctx, id)
		if err == nil {
			return task, repo, nil
		}
		// Not cached yet (fresh write, foreign share): ask the service.
	}
	task, err := a.client.GetTask(ctx, id)
	return task, nil, err
}

func (a *App) printTaskDetail(ctx context.Context, t models.Task, repo *cache.Repository) {
	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(a.out, "%s %s\n", dimStyle.Render(pad(name+":", 10)), value)
		}
	}

	fmt.Fprintln(a.out, titleStyle.Render(t.Content))
	if t.Description != "" {
		fmt.Fprintln(a.out, t.Description)
	}
	fmt.Fprintln(a.out)

	field("id", t.ID)

	project := t.ProjectID
	if repo != nil {
		if p, err := repo.Project(ctx, t.ProjectID); err == nil {
			project = fmt.Sprintf("%s (%s)", p.Name, p.ID)
		}
	}
	field("project", project)
	if t.SectionID != nil {
		field("section", *t.SectionID)
	}
	if t.ParentID != nil {
		field("parent", *t.ParentID)
	}
	field("priority", formatPriority(t.Priority))
	if t.Due != nil {
		due := formatDue(t.Due, time.Now(), time.Local)
		if t.Due.Text != "" {
			due += dimStyle.Render("  (" + t.Due.Text + ")")
		}
		field("due", due)
	}
	field("labels", strings.Join(t.Labels, ", "))
	if t.AssigneeID != nil {
		assignee := *t.AssigneeID
		if repo != nil {
			resolver := names.NewResolver(a.client, a.log)
			if users, err := repo.Collaborators(ctx); err == nil {
				resolver.Seed(users)
			}
			assignee = resolver.DisplayName(*t.AssigneeID)
		}
		field("assignee", assignee)
	}
	if !t.AddedAt.IsZero() {
		field("added", t.AddedAt.Local().Format("2006-01-02 15:04"))
	}
	field("link", taskURL(t.ID))
}
