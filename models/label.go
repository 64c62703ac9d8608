package models

// Label is a personal tag attachable to any task.
type Label struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	ItemOrder int    `json:"item_order,omitempty"`
	IsDeleted bool   `json:"is_deleted,omitempty"`
}

func (l Label) EntityID() string    { return l.ID }
func (l Label) EntityDeleted() bool { return l.IsDeleted }

// Filter is a saved search query.
type Filter struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Query     string `json:"query"`
	Color     string `json:"color,omitempty"`
	ItemOrder int    `json:"item_order,omitempty"`
	IsDeleted bool   `json:"is_deleted,omitempty"`
}

func (f Filter) EntityID() string    { return f.ID }
func (f Filter) EntityDeleted() bool { return f.IsDeleted }
