// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cache

import (
	"slices"
	"sort"
	"time"

	"github.com/taskdesk/taskdesk-cli/models"
)

// Task filters. All of them are pure slice-to-slice functions over a
// repository snapshot, so commands can chain them without touching the
// store again.

// Active keeps tasks that are neither completed nor deleted.
func Active(tasks []models.Task) []models.Task {
	return keep(tasks, func(t models.Task) bool {
		return !t.Checked && !t.IsDeleted
	})
}

// Completed keeps completed tasks.
func Completed(tasks []models.Task) []models.Task {
	return keep(tasks, func(t models.Task) bool {
		return t.Checked && !t.IsDeleted
	})
}

// ByProject keeps tasks belonging to one project.
func ByProject(tasks []models.Task, projectID string) []models.Task {
	return keep(tasks, func(t models.Task) bool {
		return t.ProjectID == projectID
	})
}

// BySection keeps tasks belonging to one section.
func BySection(tasks []models.Task, sectionID string) []models.Task {
	return keep(tasks, func(t models.Task) bool {
		return t.SectionID != nil && *t.SectionID == sectionID
	})
}

// ByLabel keeps tasks carrying the given label name.
func ByLabel(tasks []models.Task, label string) []models.Task {
	return keep(tasks, func(t models.Task) bool {
		return slices.Contains(t.Labels, label)
	})
}

// InWorkspace keeps tasks whose project lives in the given workspace.
// projects must cover the tasks' project ids; tasks of unknown projects
// are dropped.
func InWorkspace(tasks []models.Task, projects []models.Project, workspaceID string) []models.Task {
	byID := projectIndex(projects)
	return keep(tasks, func(t models.Task) bool {
		p, ok := byID[t.ProjectID]
		return ok && p.WorkspaceID != nil && *p.WorkspaceID == workspaceID
	})
}

// Personal keeps tasks whose project belongs to no workspace.
func Personal(tasks []models.Task, projects []models.Project) []models.Task {
	byID := projectIndex(projects)
	return keep(tasks, func(t models.Task) bool {
		p, ok := byID[t.ProjectID]
		return ok && p.WorkspaceID == nil
	})
}

// Mine keeps tasks relevant to the given user: tasks assigned to them
// plus unassigned ones. In personal projects nothing carries an
// assignee, so dropping unassigned tasks would empty the list.
func Mine(tasks []models.Task, userID string) []models.Task {
	return keep(tasks, func(t models.Task) bool {
		return t.AssigneeID == nil || *t.AssigneeID == userID
	})
}

// AssignedTo keeps tasks explicitly assigned to the given user.
func AssignedTo(tasks []models.Task, userID string) []models.Task {
	return keep(tasks, func(t models.Task) bool {
		return t.AssigneeID != nil && *t.AssigneeID == userID
	})
}

// Overdue keeps tasks due strictly before now. Date-only deadlines
// count as overdue from the first moment of the next day in loc, so a
// task due "today" is never overdue while today lasts.
func Overdue(tasks []models.Task, now time.Time, loc *time.Location) []models.Task {
	startOfToday := startOfDay(now.In(loc))
	return keep(tasks, func(t models.Task) bool {
		due, hasTime, err := dueTime(t, loc)
		if err != nil {
			return false
		}
		if hasTime {
			return due.Before(now)
		}
		return due.Before(startOfToday)
	})
}

// DueToday keeps tasks whose deadline falls on today's calendar date
// in loc, whether or not the time of day has passed.
func DueToday(tasks []models.Task, now time.Time, loc *time.Location) []models.Task {
	today := startOfDay(now.In(loc))
	tomorrow := today.AddDate(0, 0, 1)
	return keep(tasks, func(t models.Task) bool {
		due, _, err := dueTime(t, loc)
		if err != nil {
			return false
		}
		return !due.Before(today) && due.Before(tomorrow)
	})
}

// DueBy keeps tasks with a deadline at or before cutoff. Date-only
// deadlines compare by the end of their day in loc.
func DueBy(tasks []models.Task, cutoff time.Time, loc *time.Location) []models.Task {
	return keep(tasks, func(t models.Task) bool {
		due, hasTime, err := dueTime(t, loc)
		if err != nil {
			return false
		}
		if !hasTime {
			due = startOfDay(due).AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return !due.After(cutoff)
	})
}

// SortTasks orders tasks the way the list commands print them: by due
// date ascending with undated tasks last, then by priority with urgent
// first, then by creation time. The sort is stable and in place.
func SortTasks(tasks []models.Task, loc *time.Location) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, _, erri := dueTime(tasks[i], loc)
		dj, _, errj := dueTime(tasks[j], loc)
		hasI := tasks[i].Due != nil && erri == nil
		hasJ := tasks[j].Due != nil && errj == nil

		switch {
		case hasI != hasJ:
			return hasI
		case hasI && !di.Equal(dj):
			return di.Before(dj)
		}
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority > tasks[j].Priority
		}
		return tasks[i].AddedAt.Before(tasks[j].AddedAt)
	})
}

// SortProjects orders projects as the apps show them: inbox first, then
// by child order. Stable and in place.
func SortProjects(projects []models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].InboxProject != projects[j].InboxProject {
			return projects[i].InboxProject
		}
		return projects[i].ChildOrder < projects[j].ChildOrder
	})
}

func keep(tasks []models.Task, pred func(models.Task) bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func dueTime(t models.Task, loc *time.Location) (time.Time, bool, error) {
	if t.Due == nil {
		return time.Time{}, false, errNoDue
	}
	return t.Due.Time(loc)
}

func projectIndex(projects []models.Project) map[string]models.Project {
	byID := make(map[string]models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	return byID
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
