// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"users/internal/delivery/http/response"
	domainerrors "users/internal/domain/errors"
	"users/internal/errors"
	"users/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CreateUserRequest is the body of POST /create-user.
type CreateUserRequest struct {
	Username   string   `json:"username"`
	Password   string   `json:"password"`
	Provider   string   `json:"provider"`
	FamilyName string   `json:"familyName"`
	GivenName  string   `json:"givenName"`
	MiddleName string   `json:"middleName"`
	Emails     []string `json:"emails"`
	Photos     []string `json:"photos"`
}

// UpdateUserRequest is the body of POST /update-user/:username. Absent fields are kept.
type UpdateUserRequest struct {
	Password   *string   `json:"password"`
	Provider   *string   `json:"provider"`
	FamilyName *string   `json:"familyName"`
	GivenName  *string   `json:"givenName"`
	MiddleName *string   `json:"middleName"`
	Emails     *[]string `json:"emails"`
	Photos     *[]string `json:"photos"`
}

// FindOrCreateRequest is a provider profile. Either id or username names the user.
type FindOrCreateRequest struct {
	ID         string   `json:"id" validate:"required_without=Username"`
	Username   string   `json:"username" validate:"required_without=ID"`
	Password   string   `json:"password"`
	Provider   string   `json:"provider"`
	FamilyName string   `json:"familyName"`
	GivenName  string   `json:"givenName"`
	MiddleName string   `json:"middleName"`
	Emails     []string `json:"emails"`
	Photos     []string `json:"photos"`
}

// PasswordCheckRequest is the body of POST /passwordCheck.
type PasswordCheckRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateUser handles POST /create-user.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.Create(c.Request().Context(), &usecase.CreateUserInput{
		Username:   req.Username,
		Password:   req.Password,
		Provider:   req.Provider,
		FamilyName: req.FamilyName,
		GivenName:  req.GivenName,
		MiddleName: req.MiddleName,
		Emails:     req.Emails,
		Photos:     req.Photos,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// UpdateUser handles POST /update-user/:username.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.Update(c.Request().Context(), c.Param("username"), &usecase.UpdateUserInput{
		Password:   req.Password,
		Provider:   req.Provider,
		FamilyName: req.FamilyName,
		GivenName:  req.GivenName,
		MiddleName: req.MiddleName,
		Emails:     req.Emails,
		Photos:     req.Photos,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// FindOrCreate handles POST /find-or-create.
func (h *UserHandler) FindOrCreate(c echo.Context) error {
	var req FindOrCreateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = req.Username
	}

	user, err := h.uc.FindOrCreate(c.Request().Context(), &usecase.ProfileInput{
		ID:         id,
		Password:   req.Password,
		Provider:   req.Provider,
		FamilyName: req.FamilyName,
		GivenName:  req.GivenName,
		MiddleName: req.MiddleName,
		Emails:     req.Emails,
		Photos:     req.Photos,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// FindUser handles GET /find/:username.
func (h *UserHandler) FindUser(c echo.Context) error {
	user, err := h.uc.Find(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// DestroyUser handles DELETE /destroy/:username.
func (h *UserHandler) DestroyUser(c echo.Context) error {
	username := c.Param("username")

	existed, err := h.uc.Destroy(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}
	if !existed {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return response.Success(c, http.StatusOK, map[string]string{"username": username}, "User destroyed")
}

// PasswordCheck handles POST /passwordCheck. A failed check is still a 200.
func (h *UserHandler) PasswordCheck(c echo.Context) error {
	var req PasswordCheckRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}

	result := h.uc.UserPasswordCheck(c.Request().Context(), req.Username, req.Password)

	return response.Success(c, http.StatusOK, result, "")
}

// ListUsers handles GET /list.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}
