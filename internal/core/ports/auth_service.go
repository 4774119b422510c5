package ports

import (
	"context"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

// AuthService implements the login wall: self-service registration, login
// issuing a session token, and logout revoking it.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
}
