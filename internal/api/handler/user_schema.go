package handler

import (
	"time"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty"`
}

// updateUserRequest is a true partial update: absent fields stay nil and
// are never applied. Email format is only checked when the field is sent.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// --- Response types ---

// userResponse is the public projection of a user record. It never carries
// the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type listUsersResponse struct {
	Data       []userResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type deleteUserResponse struct {
	Message string `json:"message"`
}
