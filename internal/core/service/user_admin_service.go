package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
	"github.com/lorehub/lore-hub-api/internal/core/ports"
)

// UserAdminService implements the admin-only user management operations.
// Every method checks the caller's role before touching the repository.
type UserAdminService struct {
	repo       ports.UserRepository
	audit      ports.AuditRecorder
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserAdminService(repo ports.UserRepository, audit ports.AuditRecorder, bcryptCost int, logger zerolog.Logger) *UserAdminService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserAdminService{repo: repo, audit: audit, bcryptCost: bcryptCost, logger: logger}
}

// requireAdmin is the access-control guard invoked first by every
// operation. On denial no repository call is made.
func requireAdmin(actor domain.Identity) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// List returns a page of users ordered by creation time descending, plus
// the unfiltered total. Raw pagination values are normalized, never
// rejected.
func (s *UserAdminService) List(ctx context.Context, actor domain.Identity, rawPage, rawPageSize string) (*ports.ListUsersResult, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	pq := domain.NormalizePage(rawPage, rawPageSize)

	users, err := s.repo.List(ctx, pq.Skip, pq.Take)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return &ports.ListUsersResult{
		Users:      users,
		Total:      total,
		Page:       pq.Page,
		PageSize:   pq.Take,
		TotalPages: domain.TotalPages(total, pq.Take),
	}, nil
}

// Get retrieves a single user by id.
func (s *UserAdminService) Get(ctx context.Context, actor domain.Identity, userID string) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID)
}

// Create persists a new user. Role defaults to USER when omitted and must
// be a member of the enumeration when provided. The password is hashed
// before the record ever reaches the repository.
func (s *UserAdminService) Create(ctx context.Context, actor domain.Identity, input ports.CreateUserInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	role := domain.RoleUser
	if input.Role != "" {
		parsed, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	s.audit.Record(domain.AuditEntry{
		Action:    domain.AuditUserCreated,
		ActorID:   actor.UserID,
		TargetID:  created.ID,
		Timestamp: now,
	})

	return created, nil
}

// Update applies a partial update: only fields present in the input are
// changed. An empty input fails before any repository access.
func (s *UserAdminService) Update(ctx context.Context, actor domain.Identity, userID string, input ports.UpdateUserInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if input.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}

	patch := ports.UserPatch{Name: input.Name, Email: input.Email}

	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		patch.Role = &role
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	updated, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("user updated")
	s.audit.Record(domain.AuditEntry{
		Action:    domain.AuditUserUpdated,
		ActorID:   actor.UserID,
		TargetID:  userID,
		Detail:    patchSummary(patch),
		Timestamp: time.Now().UTC(),
	})

	return updated, nil
}

// Delete verifies existence first so an absent target yields a clean
// NotFound. The repository maps the delete-after-check race to the same
// NotFound, keeping deletion idempotent-safe for the caller.
func (s *UserAdminService) Delete(ctx context.Context, actor domain.Identity, userID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("user deleted")
	s.audit.Record(domain.AuditEntry{
		Action:    domain.AuditUserDeleted,
		ActorID:   actor.UserID,
		TargetID:  userID,
		Timestamp: time.Now().UTC(),
	})

	return nil
}

// patchSummary names the changed fields for the audit trail without ever
// including their values.
func patchSummary(p ports.UserPatch) string {
	fields := ""
	add := func(name string) {
		if fields != "" {
			fields += ","
		}
		fields += name
	}
	if p.Name != nil {
		add("name")
	}
	if p.Email != nil {
		add("email")
	}
	if p.Role != nil {
		add("role")
	}
	if p.PasswordHash != nil {
		add("password")
	}
	return fields
}
