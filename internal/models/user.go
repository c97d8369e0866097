package models

import "time"

// User maps to a row in the users table. Roles are attached through the
// user_roles join table and loaded by the repository, never held as object
// pointers back into Role.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	IsActive       bool      `json:"is_active"`
	HashedPassword string    `json:"-"`
	Roles          []string  `json:"roles,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserInput struct {
	Username *string `json:"username"`
	IsActive *bool   `json:"is_active"`
}

func (in UpdateUserInput) Empty() bool {
	return in.Username == nil && in.IsActive == nil
}

// UserFilters selects users for listing.
type UserFilters struct {
	Q string
}
