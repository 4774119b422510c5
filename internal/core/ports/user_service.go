package ports

import (
	"context"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

// CreateUserInput carries the data for an admin user creation. Role is the
// raw value from the request; empty means "default to USER".
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput is a true partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}

// IsEmpty reports whether no field was provided at all.
func (in UpdateUserInput) IsEmpty() bool {
	return in.Name == nil && in.Email == nil && in.Role == nil && in.Password == nil
}

// ListUsersResult is the paginated projection returned by List.
type ListUsersResult struct {
	Users      []domain.User
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// UserAdminService defines the admin-only user management operations.
// Every method takes the authenticated caller explicitly and fails with
// domain.ErrForbidden before any store access unless the caller is an admin.
type UserAdminService interface {
	List(ctx context.Context, actor domain.Identity, rawPage, rawPageSize string) (*ListUsersResult, error)
	Get(ctx context.Context, actor domain.Identity, userID string) (*domain.User, error)
	Create(ctx context.Context, actor domain.Identity, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor domain.Identity, userID string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Identity, userID string) error
}
