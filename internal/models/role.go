package models

// RoleName is the closed set of known roles.
type RoleName string

const (
	RoleUser  RoleName = "user"
	RoleAdmin RoleName = "admin"
)

func (r RoleName) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// Role maps to a row in the roles table. Name is unique.
type Role struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UserRoleLink maps to a row in the user_roles join table. The composite
// primary key (user_id, role_id) keeps assignments unique.
type UserRoleLink struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}
