// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/cache"
	"github.com/taskdesk/taskdesk-cli/internal/paginate"
	"github.com/taskdesk/taskdesk-cli/models"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		GroupID: groupTasks,
		Short:   "List and manage projects",
	}
	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectAddCmd(app),
		newProjectRemoveCmd(app),
	)
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var (
		workspace string
		limit     int
		cursor    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runProjectList(cmd.Context(), workspace, cursor, limit)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "only projects in this workspace id")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (default 50, max 200)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")

	return cmd
}

func (a *App) runProjectList(ctx context.Context, workspace, cursor string, limit int) error {
	var (
		projects   []models.Project
		workspaces []models.Workspace
	)

	repo := a.manager.EnsureFresh(ctx, models.ScopeProjects, models.ScopeWorkspaces)
	if repo != nil {
		var err error
		projects, err = repo.Projects(ctx)
		if err != nil {
			repo = nil
		} else if workspaces, err = repo.Workspaces(ctx); err != nil {
			repo = nil
		}
	}
	if repo == nil {
		page, err := a.client.ListProjects(ctx, api.PageParams{Limit: paginate.MaxLimit})
		if err != nil {
			return err
		}
		projects = page.Results
		if wp, err := a.client.ListWorkspaces(ctx, api.PageParams{}); err == nil {
			workspaces = wp.Results
		}
	}

	if workspace != "" {
		kept := projects[:0:0]
		for _, p := range projects {
			if p.WorkspaceID != nil && *p.WorkspaceID == workspace {
				kept = append(kept, p)
			}
		}
		projects = kept
	}
	cache.SortProjects(projects)

	page, err := paginate.Slice(projects, cursor, limit)
	if err != nil {
		return err
	}

	if a.jsonOut {
		return a.printJSON(page)
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No projects."))
		return nil
	}

	wsNames := make(map[string]string, len(workspaces))
	for _, w := range workspaces {
		wsNames[w.ID] = w.Name
	}

	rows := make([][]string, 0, len(page.Results))
	for _, p := range page.Results {
		ws := ""
		if p.WorkspaceID != nil {
			ws = *p.WorkspaceID
			if name, ok := wsNames[ws]; ok {
				ws = name
			}
		}
		var marks []string
		if p.InboxProject {
			marks = append(marks, accentStyle.Render("inbox"))
		}
		if p.IsShared {
			marks = append(marks, "shared")
		}
		if p.IsArchived {
			marks = append(marks, dimStyle.Render("archived"))
		}
		rows = append(rows, []string{
			p.ID,
			truncate(p.Name, 40),
			truncate(ws, 24),
			strings.Join(marks, " "),
		})
	}

	renderTable(a.out, []string{"ID", "NAME", "WORKSPACE", ""}, rows)
	nextPageHint(a.out, page.NextCursor)
	return nil
}

func newProjectAddCmd(app *App) *cobra.Command {
	var (
		workspace string
		parent    string
		color     string
	)

	cmd := &cobra.Command{
		Use:   "add NAME...",
		Short: "Create a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			project, err := app.client.CreateProject(ctx, models.CreateProjectRequest{
				Name:        strings.Join(args, " "),
				Color:       color,
				ParentID:    parent,
				WorkspaceID: workspace,
			})
			if err != nil {
				return err
			}
			app.invalidate(ctx, models.ScopeProjects)

			if app.jsonOut {
				return app.printJSON(project)
			}
			fmt.Fprintf(app.out, "%s %s  %s\n", okStyle.Render("Created"), project.ID, project.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "create inside this workspace id")
	cmd.Flags().StringVar(&parent, "parent", "", "nest under this project id")
	cmd.Flags().StringVar(&color, "color", "", "service color name")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a project and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.client.DeleteProject(ctx, args[0]); err != nil {
				return err
			}
			app.invalidate(ctx, models.ScopeProjects, models.ScopeSections, models.ScopeItems)
			fmt.Fprintf(app.out, "%s %s\n", okStyle.Render("Deleted"), args[0])
			return nil
		},
	}
}
