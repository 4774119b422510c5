package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lorehub/lore-hub-api/internal/api/metrics"
	"github.com/lorehub/lore-hub-api/internal/core/ports"
)

// UserHandler handles the admin user management endpoints. Authorization
// is enforced twice: the RBAC middleware gates the route group, and the
// service re-checks the explicit identity before any store access.
type UserHandler struct {
	service ports.UserAdminService
}

func NewUserHandler(service ports.UserAdminService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /v1/admin/users.
//
// @Summary      List users with pagination
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int  false  "Page number (default 1)"
// @Param        pageSize  query     int  false  "Page size (default 10, max 100)"
// @Success      200  {object}  listUsersResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), actor,
		c.QueryParam("page"), c.QueryParam("pageSize"))
	if err != nil {
		return err
	}

	users := make([]userResponse, 0, len(result.Users))
	for i := range result.Users {
		users = append(users, toUserResponse(&result.Users[i]))
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Data: users,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/admin/users/:id.
//
// @Summary      Get a user by id
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /v1/admin/users.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), actor, ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /v1/admin/users/:id.
//
// @Summary      Partially update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/admin/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /v1/admin/users/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  deleteUserResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteUserResponse{Message: "user deleted"})
}
