package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.revoked[jti] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := r.revoked[jti]
	return ok, nil
}

const testSecret = "test-secret"

func newAuthService(repo *stubUserRepo, revoker *stubRevoker) *AuthService {
	return NewAuthService(repo, revoker, testSecret, time.Hour, bcrypt.MinCost)
}

func registerAccount(t *testing.T, svc *AuthService, email, password string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), "Tester", email, password)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return user
}

func TestAuthService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubRevoker())

	user := registerAccount(t, svc, "new@example.com", "secret1")
	if user.Role != domain.RoleUser {
		t.Fatalf("self-service accounts must be USER, got %s", user.Role)
	}
	if user.PasswordHash == "secret1" {
		t.Fatal("password must be hashed")
	}

	if _, err := svc.Register(context.Background(), "Tester", "new@example.com", "secret1"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken for a reused email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "", "x@example.com", "secret1"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubRevoker())
	registered := registerAccount(t, svc, "login@example.com", "secret1")

	token, user, err := svc.Login(context.Background(), "login@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %s", user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if sub, _ := claims["sub"].(string); sub != registered.ID {
		t.Fatalf("sub claim = %q, want %q", sub, registered.ID)
	}
	if role, _ := claims["role"].(string); role != string(domain.RoleUser) {
		t.Fatalf("role claim = %q", role)
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatal("token must carry a jti")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(time.Now()) {
		t.Fatalf("token must expire in the future, got %v (%v)", exp, err)
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubRevoker())
	registerAccount(t, svc, "login@example.com", "secret1")

	if _, _, err := svc.Login(context.Background(), "login@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "secret1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unknown email: expected ErrUserNotFound, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("blank credentials: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	repo := newStubUserRepo()
	revoker := newStubRevoker()
	svc := newAuthService(repo, revoker)
	registerAccount(t, svc, "out@example.com", "secret1")

	token, _, err := svc.Login(context.Background(), "out@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if len(revoker.revoked) != 1 {
		t.Fatalf("expected exactly one revoked jti, got %d", len(revoker.revoked))
	}
	for jti, ttl := range revoker.revoked {
		if jti == "" {
			t.Fatal("revoked jti must not be empty")
		}
		if ttl <= 0 || ttl > time.Hour {
			t.Fatalf("ttl must cover the token's remaining lifetime, got %v", ttl)
		}
	}
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	repo := newStubUserRepo()
	revoker := newStubRevoker()
	svc := newAuthService(repo, revoker)

	if err := svc.Logout(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"jti": "j1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if err := svc.Logout(context.Background(), signed); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("foreign signature: expected ErrInvalidCredentials, got %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatal("nothing must be revoked for a rejected token")
	}
}
