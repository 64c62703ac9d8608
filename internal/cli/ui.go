// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdesk

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdesk/taskdesk-cli/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// pad right-pads s with spaces to the given printable width. Widths are
// measured by lipgloss, so styled cells do not skew the columns.
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// renderTable prints rows under a bold header, columns sized to their
// widest cell.
func renderTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = pad(titleStyle.Render(h), widths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " │ "), " "))

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("─", width)
	}
	fmt.Fprintln(w, strings.Join(rule, "─┼─"))

	for _, row := range rows {
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " │ "), " "))
	}
}

// nextPageHint prints the cursor the user passes to see the next page.
func nextPageHint(w io.Writer, cursor *string) {
	if cursor == nil || *cursor == "" {
		return
	}
	fmt.Fprintln(w, dimStyle.Render("More results: add --cursor "+*cursor))
}

// formatDue renders a task deadline, styled red when it is already
// missed and yellow when it falls on the current day.
func formatDue(due *models.Due, now time.Time, loc *time.Location) string {
	if due == nil {
		return ""
	}

	when, hasTime, err := due.Time(loc)
	if err != nil {
		return due.Date
	}

	text := when.Format("2006-01-02")
	if hasTime {
		text = when.Format("2006-01-02 15:04")
	}
	if due.IsRecurring {
		text += " ↻"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	overdue := when.Before(now)
	if !hasTime {
		overdue = when.Before(today)
	}

	switch {
	case overdue:
		return alertStyle.Render(text)
	case !when.Before(today) && when.Before(today.AddDate(0, 0, 1)):
		return warnStyle.Render(text)
	default:
		return text
	}
}

// formatPriority renders the wire priority. The default priority prints
// nothing so the column stays quiet for ordinary tasks.
func formatPriority(p int) string {
	switch p {
	case models.PriorityUrgent:
		return alertStyle.Render("p4")
	case models.PriorityHigh:
		return warnStyle.Render("p3")
	case models.PriorityMedium:
		return accentStyle.Render("p2")
	default:
		return ""
	}
}

// formatAge renders how long ago t was, for cache diagnostics.
func formatAge(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
