package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the authorization level attached to a user record and its sessions.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ValidRoles lists every member of the Role enumeration, in the order they
// are reported in validation messages.
var ValidRoles = []Role{RoleAdmin, RoleUser}

// ParseRole validates a raw role value against the enumeration.
// The returned error names the accepted values so it can be surfaced
// directly to API callers.
func ParseRole(raw string) (Role, error) {
	for _, r := range ValidRoles {
		if string(r) == raw {
			return r, nil
		}
	}
	names := make([]string, len(ValidRoles))
	for i, r := range ValidRoles {
		names[i] = string(r)
	}
	return "", fmt.Errorf("%w: valid roles are %s", ErrInvalidRole, strings.Join(names, ", "))
}

// User models an account behind the login wall.
// PasswordHash is excluded from JSON serialization; projections returned to
// callers never carry credential material.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated caller decoded from a session token.
// It is passed explicitly into every guarded operation; services never read
// ambient request state.
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
