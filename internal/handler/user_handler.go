package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "tryon/internal/errors"
	"tryon/internal/model"
	"tryon/internal/service"
)

// UserHandler handles user lookup and creation endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a lookup-or-create request.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
}

// UserResponse represents a user record on the wire.
type UserResponse struct {
	UserID    uint      `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{UserID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

// CreateOrFetch godoc
// @Summary Create a user or fetch the existing one by email
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 200 {object} UserResponse
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateOrFetch(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrEmailRequired)
	}

	user, created, err := h.svc.LookupOrCreate(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, toUserResponse(user))
}

// GetByID godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	param := c.QueryParam("userId")
	if param == "" {
		return respondError(c, apperrors.ErrUserIDParamRequired)
	}
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return respondError(c, apperrors.ErrInvalidUserIDParam)
	}

	user, err := h.svc.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
