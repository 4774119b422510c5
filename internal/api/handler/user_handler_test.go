package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
	"github.com/lorehub/lore-hub-api/internal/core/ports"
)

// stubAdminService records the last call so handler tests can verify the
// request was decoded and routed correctly. Error translation to status
// codes lives in the central HTTP error handler and is tested there.
type stubAdminService struct {
	listResult *ports.ListUsersResult
	user       *domain.User
	err        error

	lastActor    domain.Identity
	lastPage     string
	lastPageSize string
	lastID       string
	lastCreate   ports.CreateUserInput
	lastUpdate   ports.UpdateUserInput
}

func (s *stubAdminService) List(_ context.Context, actor domain.Identity, rawPage, rawPageSize string) (*ports.ListUsersResult, error) {
	s.lastActor, s.lastPage, s.lastPageSize = actor, rawPage, rawPageSize
	return s.listResult, s.err
}

func (s *stubAdminService) Get(_ context.Context, actor domain.Identity, userID string) (*domain.User, error) {
	s.lastActor, s.lastID = actor, userID
	return s.user, s.err
}

func (s *stubAdminService) Create(_ context.Context, actor domain.Identity, input ports.CreateUserInput) (*domain.User, error) {
	s.lastActor, s.lastCreate = actor, input
	return s.user, s.err
}

func (s *stubAdminService) Update(_ context.Context, actor domain.Identity, userID string, input ports.UpdateUserInput) (*domain.User, error) {
	s.lastActor, s.lastID, s.lastUpdate = actor, userID, input
	return s.user, s.err
}

func (s *stubAdminService) Delete(_ context.Context, actor domain.Identity, userID string) error {
	s.lastActor, s.lastID = actor, userID
	return s.err
}

func sampleUser() *domain.User {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$notserialized",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newUserContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "admin1")
	c.Set("role", "ADMIN")
	return c, rec
}

func TestUserHandler_List(t *testing.T) {
	svc := &stubAdminService{listResult: &ports.ListUsersResult{
		Users:      []domain.User{*sampleUser()},
		Total:      1,
		Page:       1,
		PageSize:   10,
		TotalPages: 1,
	}}
	h := NewUserHandler(svc)

	c, rec := newUserContext(t, http.MethodGet, "/v1/admin/users?page=2&pageSize=5", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastPage != "2" || svc.lastPageSize != "5" {
		t.Fatalf("raw query values must reach the service untouched, got %q/%q", svc.lastPage, svc.lastPageSize)
	}
	if svc.lastActor.UserID != "admin1" || svc.lastActor.Role != domain.RoleAdmin {
		t.Fatalf("actor not decoded from context: %+v", svc.lastActor)
	}

	var resp listUsersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Data) != 1 || resp.Pagination.Total != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "notserialized") {
		t.Fatal("password hash must never appear in a response")
	}
}

func TestUserHandler_Get(t *testing.T) {
	svc := &stubAdminService{user: sampleUser()}
	h := NewUserHandler(svc)

	c, rec := newUserContext(t, http.MethodGet, "/v1/admin/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.Code != http.StatusOK || svc.lastID != "u1" {
		t.Fatalf("code=%d lastID=%q", rec.Code, svc.lastID)
	}
}

func TestUserHandler_Create(t *testing.T) {
	svc := &stubAdminService{user: sampleUser()}
	h := NewUserHandler(svc)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret1","role":"USER"}`
	c, rec := newUserContext(t, http.MethodPost, "/v1/admin/users", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastCreate.Email != "alice@example.com" || svc.lastCreate.Role != "USER" {
		t.Fatalf("input not forwarded: %+v", svc.lastCreate)
	}
}

func TestUserHandler_Create_ValidationErrors(t *testing.T) {
	svc := &stubAdminService{}
	h := NewUserHandler(svc)

	bodies := []string{
		`{"email":"alice@example.com","password":"secret1"}`,
		`{"name":"Alice","email":"not-an-email","password":"secret1"}`,
		`{"name":"Alice","email":"alice@example.com","password":"abc"}`,
	}
	for _, body := range bodies {
		c, _ := newUserContext(t, http.MethodPost, "/v1/admin/users", body)
		err := h.Create(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
	if svc.lastCreate != (ports.CreateUserInput{}) {
		t.Fatal("service must not be called for invalid payloads")
	}
}

func TestUserHandler_Update(t *testing.T) {
	svc := &stubAdminService{user: sampleUser()}
	h := NewUserHandler(svc)

	c, rec := newUserContext(t, http.MethodPut, "/v1/admin/users/u1", `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastUpdate.Name == nil || *svc.lastUpdate.Name != "Renamed" {
		t.Fatalf("name not forwarded: %+v", svc.lastUpdate)
	}
	if svc.lastUpdate.Email != nil || svc.lastUpdate.Role != nil || svc.lastUpdate.Password != nil {
		t.Fatalf("absent fields must stay nil: %+v", svc.lastUpdate)
	}
}

func TestUserHandler_Update_ForwardsServiceError(t *testing.T) {
	svc := &stubAdminService{err: domain.ErrNothingToUpdate}
	h := NewUserHandler(svc)

	c, _ := newUserContext(t, http.MethodPut, "/v1/admin/users/u1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Update(c); !errors.Is(err, domain.ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate to propagate, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	svc := &stubAdminService{}
	h := NewUserHandler(svc)

	c, rec := newUserContext(t, http.MethodDelete, "/v1/admin/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if rec.Code != http.StatusOK || svc.lastID != "u1" {
		t.Fatalf("code=%d lastID=%q", rec.Code, svc.lastID)
	}

	var resp deleteUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message == "" {
		t.Fatal("delete must return a confirmation message")
	}
}

func TestUserHandler_MissingIdentity(t *testing.T) {
	svc := &stubAdminService{}
	h := NewUserHandler(svc)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when no identity is set, got %v", err)
	}
	if svc.lastActor != (domain.Identity{}) {
		t.Fatal("service must not be called without an identity")
	}
}
