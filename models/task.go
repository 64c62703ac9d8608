package models

import "time"

// Task priorities as used on the wire: 1 is the default, 4 is urgent.
const (
	PriorityNormal = 1
	PriorityMedium = 2
	PriorityHigh   = 3
	PriorityUrgent = 4
)

// Task is a single to-do item.
type Task struct {
	// ID is the service-assigned identifier of the task.
	ID string `json:"id"`

	// ProjectID places the task inside a project. Always set.
	ProjectID string `json:"project_id"`

	// SectionID places the task inside a section of its project.
	SectionID *string `json:"section_id,omitempty"`

	// ParentID is set for sub-tasks and names the parent task.
	ParentID *string `json:"parent_id,omitempty"`

	// Content is the title line of the task.
	Content string `json:"content"`

	// Description is the optional free-form body.
	Description string `json:"description,omitempty"`

	// Priority ranges from PriorityNormal (1) to PriorityUrgent (4).
	Priority int `json:"priority"`

	// Labels holds the names of labels attached to the task.
	Labels []string `json:"labels,omitempty"`

	// CreatorID is the user who created the task.
	CreatorID string `json:"creator_id,omitempty"`

	// AssigneeID is the user responsible for the task.
	// Nil means the task is unassigned.
	AssigneeID *string `json:"assignee_id,omitempty"`

	// Due carries the deadline, if one is set.
	Due *Due `json:"due,omitempty"`

	// ChildOrder is the manual sort position among siblings.
	ChildOrder int `json:"child_order,omitempty"`

	// Checked marks the task as completed.
	Checked bool `json:"checked,omitempty"`

	// IsDeleted marks the task as deleted on the service. Deleted tasks
	// arrive only through sync deltas and are never kept locally.
	IsDeleted bool `json:"is_deleted,omitempty"`

	// AddedAt is the creation timestamp.
	AddedAt time.Time `json:"added_at"`

	// CompletedAt is set once the task has been checked off.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (t Task) EntityID() string    { return t.ID }
func (t Task) EntityDeleted() bool { return t.IsDeleted }

// Due describes a task deadline. Date is either a plain day
// ("2006-01-02") for all-day deadlines or an RFC 3339 timestamp for
// deadlines with a fixed time of day.
type Due struct {
	Date        string  `json:"date"`
	Timezone    *string `json:"timezone,omitempty"`
	Text        string  `json:"string,omitempty"`
	IsRecurring bool    `json:"is_recurring,omitempty"`
}

// dateOnly is the layout of all-day due dates.
const dateOnly = "2006-01-02"

// Time parses the due date in the given location. All-day deadlines
// resolve to midnight local time. The second return value reports
// whether the deadline carries a time of day.
func (d Due) Time(loc *time.Location) (time.Time, bool, error) {
	if loc == nil {
		loc = time.Local
	}
	if len(d.Date) == len(dateOnly) {
		t, err := time.ParseInLocation(dateOnly, d.Date, loc)
		return t, false, err
	}
	t, err := time.Parse(time.RFC3339, d.Date)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.In(loc), true, nil
}
