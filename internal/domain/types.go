package domain

// ID is used across domain entities.
type ID int64

// Status represents a lightweight state value.
type Status string

// Role gates which dashboard a session may enter.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleUser     Role = "user"
)

// ValidRole reports whether r is one of the three dashboard roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleUser:
		return true
	}
	return false
}

// SessionContext carries the authenticated identity for a request.
// Created on login success, destroyed on logout; never ambient global state.
type SessionContext struct {
	UserID ID     `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
