package models

import "time"

type Gender string

const (
	GenderBoy  Gender = "boy"
	GenderGirl Gender = "girl"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User never serializes its password hash; handlers can attach it to
// responses and the request context as-is.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Gender       Gender     `json:"gender"`
	Role         Role       `json:"role"`
	ProfilePic   string     `json:"profilePic"`
	Bio          string     `json:"bio"`
	Github       string     `json:"github"`
	Linkedin     string     `json:"linkedin"`
	Twitter      string     `json:"twitter"`
	Portfolio    string     `json:"portfolio"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ProfilePatch carries the optional fields of an edit-profile request;
// nil means the field was absent and keeps its prior value.
type ProfilePatch struct {
	Bio       *string `json:"bio"`
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
	Twitter   *string `json:"twitter"`
	Portfolio *string `json:"portfolio"`
}

func (p ProfilePatch) Empty() bool {
	return p.Bio == nil && p.Github == nil && p.Linkedin == nil &&
		p.Twitter == nil && p.Portfolio == nil
}
