// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk-cli/internal/api"
	"github.com/taskdesk/taskdesk-cli/internal/paginate"
	"github.com/taskdesk/taskdesk-cli/models"
)

// The small read-only listings share one shape: serve the whole scope
// from the cache when it is usable, hit the paginated endpoint when it
// is not, page the result, and print either a table or JSON.

func newSectionCmd(app *App) *cobra.Command {
	var (
		project string
		limit   int
		cursor  string
	)

	cmd := &cobra.Command{
		Use:     "section",
		GroupID: groupTasks,
		Short:   "List sections",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List sections, optionally within one project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var sections []models.Section
			if repo := app.manager.EnsureFresh(ctx, models.ScopeSections); repo != nil {
				if cached, err := repo.Sections(ctx); err == nil {
					sections = cached
					if project != "" {
						kept := sections[:0:0]
						for _, s := range sections {
							if s.ProjectID == project {
								kept = append(kept, s)
							}
						}
						sections = kept
					}
					sort.SliceStable(sections, func(i, j int) bool {
						if sections[i].ProjectID != sections[j].ProjectID {
							return sections[i].ProjectID < sections[j].ProjectID
						}
						return sections[i].SectionOrder < sections[j].SectionOrder
					})
				}
			}
			if sections == nil {
				page, err := app.client.ListSections(ctx, project, api.PageParams{Cursor: cursor, Limit: limit})
				if err != nil {
					return err
				}
				return app.printSectionPage(page)
			}

			page, err := paginate.Slice(sections, cursor, limit)
			if err != nil {
				return err
			}
			return app.printSectionPage(page)
		},
	}

	list.Flags().StringVar(&project, "project", "", "only sections of this project id")
	list.Flags().IntVar(&limit, "limit", 0, "page size (default 50, max 200)")
	list.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")

	cmd.AddCommand(list)
	return cmd
}

func (a *App) printSectionPage(page paginate.Page[models.Section]) error {
	if a.jsonOut {
		return a.printJSON(page)
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No sections."))
		return nil
	}
	rows := make([][]string, 0, len(page.Results))
	for _, s := range page.Results {
		rows = append(rows, []string{s.ID, truncate(s.Name, 40), s.ProjectID})
	}
	renderTable(a.out, []string{"ID", "NAME", "PROJECT"}, rows)
	nextPageHint(a.out, page.NextCursor)
	return nil
}

func newLabelCmd(app *App) *cobra.Command {
	var (
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:     "label",
		GroupID: groupTasks,
		Short:   "List labels",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List personal labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var labels []models.Label
			if repo := app.manager.EnsureFresh(ctx, models.ScopeLabels); repo != nil {
				if cached, err := repo.Labels(ctx); err == nil {
					labels = cached
					sort.SliceStable(labels, func(i, j int) bool {
						if labels[i].ItemOrder != labels[j].ItemOrder {
							return labels[i].ItemOrder < labels[j].ItemOrder
						}
						return labels[i].Name < labels[j].Name
					})
				}
			}
			if labels == nil {
				page, err := app.client.ListLabels(ctx, api.PageParams{Cursor: cursor, Limit: limit})
				if err != nil {
					return err
				}
				return app.printLabelPage(page)
			}

			page, err := paginate.Slice(labels, cursor, limit)
			if err != nil {
				return err
			}
			return app.printLabelPage(page)
		},
	}

	list.Flags().IntVar(&limit, "limit", 0, "page size (default 50, max 200)")
	list.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")

	cmd.AddCommand(list)
	return cmd
}

func (a *App) printLabelPage(page paginate.Page[models.Label]) error {
	if a.jsonOut {
		return a.printJSON(page)
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No labels."))
		return nil
	}
	rows := make([][]string, 0, len(page.Results))
	for _, l := range page.Results {
		rows = append(rows, []string{l.ID, truncate(l.Name, 40), l.Color})
	}
	renderTable(a.out, []string{"ID", "NAME", "COLOR"}, rows)
	nextPageHint(a.out, page.NextCursor)
	return nil
}

func newFilterCmd(app *App) *cobra.Command {
	var (
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:     "filter",
		GroupID: groupTasks,
		Short:   "List saved filters",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List saved filter queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var filters []models.Filter
			if repo := app.manager.EnsureFresh(ctx, models.ScopeFilters); repo != nil {
				if cached, err := repo.Filters(ctx); err == nil {
					filters = cached
					sort.SliceStable(filters, func(i, j int) bool {
						if filters[i].ItemOrder != filters[j].ItemOrder {
							return filters[i].ItemOrder < filters[j].ItemOrder
						}
						return filters[i].Name < filters[j].Name
					})
				}
			}
			if filters == nil {
				page, err := app.client.ListFilters(ctx, api.PageParams{Cursor: cursor, Limit: limit})
				if err != nil {
					return err
				}
				return app.printFilterPage(page)
			}

			page, err := paginate.Slice(filters, cursor, limit)
			if err != nil {
				return err
			}
			return app.printFilterPage(page)
		},
	}

	list.Flags().IntVar(&limit, "limit", 0, "page size (default 50, max 200)")
	list.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")

	cmd.AddCommand(list)
	return cmd
}

func (a *App) printFilterPage(page paginate.Page[models.Filter]) error {
	if a.jsonOut {
		return a.printJSON(page)
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No filters."))
		return nil
	}
	rows := make([][]string, 0, len(page.Results))
	for _, f := range page.Results {
		rows = append(rows, []string{f.ID, truncate(f.Name, 30), truncate(f.Query, 50)})
	}
	renderTable(a.out, []string{"ID", "NAME", "QUERY"}, rows)
	nextPageHint(a.out, page.NextCursor)
	return nil
}

func newWorkspaceCmd(app *App) *cobra.Command {
	var (
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:     "workspace",
		GroupID: groupTasks,
		Short:   "List workspaces",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List workspaces you are a member of",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var workspaces []models.Workspace
			if repo := app.manager.EnsureFresh(ctx, models.ScopeWorkspaces); repo != nil {
				if cached, err := repo.Workspaces(ctx); err == nil {
					workspaces = cached
					sort.SliceStable(workspaces, func(i, j int) bool {
						return workspaces[i].Name < workspaces[j].Name
					})
				}
			}
			if workspaces == nil {
				page, err := app.client.ListWorkspaces(ctx, api.PageParams{Cursor: cursor, Limit: limit})
				if err != nil {
					return err
				}
				return app.printWorkspacePage(page)
			}

			page, err := paginate.Slice(workspaces, cursor, limit)
			if err != nil {
				return err
			}
			return app.printWorkspacePage(page)
		},
	}

	list.Flags().IntVar(&limit, "limit", 0, "page size (default 50, max 200)")
	list.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")

	cmd.AddCommand(list)
	return cmd
}

func (a *App) printWorkspacePage(page paginate.Page[models.Workspace]) error {
	if a.jsonOut {
		return a.printJSON(page)
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No workspaces."))
		return nil
	}
	rows := make([][]string, 0, len(page.Results))
	for _, w := range page.Results {
		rows = append(rows, []string{w.ID, truncate(w.Name, 40), w.Role})
	}
	renderTable(a.out, []string{"ID", "NAME", "ROLE"}, rows)
	nextPageHint(a.out, page.NextCursor)
	return nil
}
