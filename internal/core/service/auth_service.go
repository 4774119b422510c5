package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
	"github.com/lorehub/lore-hub-api/internal/core/ports"
)

// TokenRevoker abstracts the session revocation store (Redis).
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService implements registration, login and logout.
type AuthService struct {
	repo       ports.UserRepository
	revoker    TokenRevoker
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(repo ports.UserRepository, revoker TokenRevoker, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		revoker:    revoker,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register creates a self-service account. The role is always USER;
// admins are promoted through the admin API.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login verifies credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the token's jti for the remainder of its lifetime.
// An already-expired token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return domain.ErrInvalidCredentials
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return domain.ErrInvalidCredentials
	}

	ttl := s.tokenTTL
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		return nil
	}

	return s.revoker.Revoke(ctx, jti, ttl)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
