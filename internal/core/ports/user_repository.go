package ports

import (
	"context"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

// UserPatch carries the fields of a partial update. A nil pointer means
// "leave untouched"; presence is decided by construction, never by runtime
// key checks. PasswordHash is already hashed by the service layer.
type UserPatch struct {
	Name         *string
	Email        *string
	Role         *domain.Role
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil && p.PasswordHash == nil
}

// UserRepository defines the persistence boundary for user records.
// Implementations translate store-specific failures (duplicate keys,
// missing documents) into the domain error taxonomy.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns take records ordered by created_at descending, passing
	// over skip records first.
	List(ctx context.Context, skip, take int) ([]domain.User, error)
	// Count returns the unfiltered total of user records.
	Count(ctx context.Context) (int64, error)
	// Update applies a partial patch and returns the updated record.
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
