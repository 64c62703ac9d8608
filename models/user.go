package models

// User is an account visible to the client, either the signed-in user or
// a collaborator on a shared project.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	IsDeleted bool   `json:"is_deleted,omitempty"`
}

func (u User) EntityID() string    { return u.ID }
func (u User) EntityDeleted() bool { return u.IsDeleted }

// DisplayName returns the best human-readable name for the user.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// Workspace is a shared space owned by a team.
type Workspace struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	IsDeleted bool   `json:"is_deleted,omitempty"`
}

func (w Workspace) EntityID() string    { return w.ID }
func (w Workspace) EntityDeleted() bool { return w.IsDeleted }
