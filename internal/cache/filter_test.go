// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskdesk/taskdesk-cli/models"
)

func strPtr(s string) *string { return &s }

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func dueOn(date string) *models.Due {
	return &models.Due{Date: date}
}

// ── Status filters ───────────────────────────────────────────────────────────

func TestActiveAndCompleted(t *testing.T) {
	open := task("open", "still to do")
	done := task("done", "already done")
	done.Checked = true

	tasks := []models.Task{open, done}

	assert.Equal(t, []string{"open"}, ids(Active(tasks)))
	assert.Equal(t, []string{"done"}, ids(Completed(tasks)))
}

// ── Placement filters ────────────────────────────────────────────────────────

func TestByProject(t *testing.T) {
	inWork := task("t1", "one")
	inWork.ProjectID = "work"
	elsewhere := task("t2", "two")
	elsewhere.ProjectID = "home"

	got := ByProject([]models.Task{inWork, elsewhere}, "work")
	assert.Equal(t, []string{"t1"}, ids(got))
}

func TestBySection(t *testing.T) {
	inSection := task("t1", "one")
	inSection.SectionID = strPtr("s1")
	noSection := task("t2", "two")

	got := BySection([]models.Task{inSection, noSection}, "s1")
	assert.Equal(t, []string{"t1"}, ids(got))
}

func TestByLabel(t *testing.T) {
	urgent := task("t1", "one")
	urgent.Labels = []string{"errand", "urgent"}
	plain := task("t2", "two")

	got := ByLabel([]models.Task{urgent, plain}, "urgent")
	assert.Equal(t, []string{"t1"}, ids(got))
}

func TestInWorkspaceAndPersonal(t *testing.T) {
	team := project("team", "Team")
	team.WorkspaceID = strPtr("ws1")
	personal := project("mine", "Personal")
	projects := []models.Project{team, personal}

	inTeam := task("t1", "one")
	inTeam.ProjectID = "team"
	inPersonal := task("t2", "two")
	inPersonal.ProjectID = "mine"
	orphan := task("t3", "three")
	orphan.ProjectID = "unknown"
	tasks := []models.Task{inTeam, inPersonal, orphan}

	assert.Equal(t, []string{"t1"}, ids(InWorkspace(tasks, projects, "ws1")))
	assert.Equal(t, []string{"t2"}, ids(Personal(tasks, projects)))
}

// ── Assignee filters ─────────────────────────────────────────────────────────

func TestMineIncludesUnassigned(t *testing.T) {
	mine := task("t1", "one")
	mine.AssigneeID = strPtr("u1")
	theirs := task("t2", "two")
	theirs.AssigneeID = strPtr("u2")
	unassigned := task("t3", "three")

	got := Mine([]models.Task{mine, theirs, unassigned}, "u1")
	assert.Equal(t, []string{"t1", "t3"}, ids(got))
}

func TestAssignedToIsExact(t *testing.T) {
	mine := task("t1", "one")
	mine.AssigneeID = strPtr("u1")
	unassigned := task("t2", "two")

	got := AssignedTo([]models.Task{mine, unassigned}, "u1")
	assert.Equal(t, []string{"t1"}, ids(got))
}

// ── Due date filters ─────────────────────────────────────────────────────────

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 0, 0, 0, time.UTC)

	yesterday := task("yesterday", "all-day, past")
	yesterday.Due = dueOn("2026-08-23")
	today := task("today", "all-day, still open")
	today.Due = dueOn("2026-08-24")
	missedMeeting := task("missed", "timed, past")
	missedMeeting.Due = dueOn("2026-08-24T10:00:00Z")
	laterToday := task("later", "timed, upcoming")
	laterToday.Due = dueOn("2026-08-24T18:00:00Z")
	undated := task("undated", "no deadline")

	got := Overdue([]models.Task{yesterday, today, missedMeeting, laterToday, undated}, now, time.UTC)

	// An all-day task due today is not overdue while today lasts; a
	// timed task is overdue the moment its time passes.
	assert.Equal(t, []string{"yesterday", "missed"}, ids(got))
}

func TestDueToday(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 0, 0, 0, time.UTC)

	today := task("today", "all-day")
	today.Due = dueOn("2026-08-24")
	earlier := task("earlier", "timed, already passed")
	earlier.Due = dueOn("2026-08-24T09:00:00Z")
	tomorrow := task("tomorrow", "next day")
	tomorrow.Due = dueOn("2026-08-25")
	undated := task("undated", "no deadline")

	got := DueToday([]models.Task{today, earlier, tomorrow, undated}, now, time.UTC)
	assert.Equal(t, []string{"today", "earlier"}, ids(got))
}

func TestDueBy(t *testing.T) {
	cutoff := time.Date(2026, 8, 25, 15, 0, 0, 0, time.UTC)

	today := task("today", "all-day today")
	today.Due = dueOn("2026-08-24")
	tomorrowMorning := task("morning", "timed before cutoff")
	tomorrowMorning.Due = dueOn("2026-08-25T10:00:00Z")
	tomorrowAllDay := task("allday", "runs past cutoff")
	tomorrowAllDay.Due = dueOn("2026-08-25")
	nextWeek := task("nextweek", "far out")
	nextWeek.Due = dueOn("2026-08-31")

	got := DueBy([]models.Task{today, tomorrowMorning, tomorrowAllDay, nextWeek}, cutoff, time.UTC)

	// An all-day deadline counts up to the end of its day, which is
	// past a mid-day cutoff.
	assert.Equal(t, []string{"today", "morning"}, ids(got))
}

// ── Sorting ──────────────────────────────────────────────────────────────────

func TestSortTasks(t *testing.T) {
	byDue := task("due-today", "first by date")
	byDue.Due = dueOn("2026-08-24")
	byDue.Priority = models.PriorityHigh

	sameDayLower := task("due-today-normal-old", "same date, lower priority, older")
	sameDayLower.Due = dueOn("2026-08-24")
	sameDayLower.AddedAt = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	sameDayNewer := task("due-today-normal-new", "same date, lower priority, newer")
	sameDayNewer.Due = dueOn("2026-08-24")
	sameDayNewer.AddedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	later := task("due-tomorrow", "later date")
	later.Due = dueOn("2026-08-25")
	later.Priority = models.PriorityUrgent

	undated := task("undated", "no date sorts last")
	undated.Priority = models.PriorityUrgent

	tasks := []models.Task{undated, later, sameDayNewer, sameDayLower, byDue}
	SortTasks(tasks, time.UTC)

	assert.Equal(t, []string{
		"due-today",
		"due-today-normal-old",
		"due-today-normal-new",
		"due-tomorrow",
		"undated",
	}, ids(tasks))
}

func TestSortProjects(t *testing.T) {
	second := project("second", "Second")
	second.ChildOrder = 2
	first := project("first", "First")
	first.ChildOrder = 1
	inbox := project("inbox", "Inbox")
	inbox.InboxProject = true
	inbox.ChildOrder = 99

	projects := []models.Project{second, first, inbox}
	SortProjects(projects)

	got := make([]string, 0, len(projects))
	for _, p := range projects {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"inbox", "first", "second"}, got)
}
