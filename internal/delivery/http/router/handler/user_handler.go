package handler

import (
	"log/slog"
	"net/http"

	"homeplate/internal/delivery/http/middleware"
	"homeplate/internal/delivery/http/response"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for customer identity and profile handlers.
type UserHandler struct {
	uc       usecase.AccountUsecase
	sessions service.SessionService
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AccountUsecase, sessions service.SessionService, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, sessions: sessions, logger: logger}
}

// Login finds or registers the customer and issues the session cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.UserLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if input == nil || input.Mobile == "" {
		return errors.WithStack(domainerrors.ErrMobileRequired)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.sessions.IssueUser(output.User.MobileNumber)
	if err != nil {
		return errors.WithStack(err)
	}
	setSessionCookie(c, token, h.sessions.TTL())

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout clears the session cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	clearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// GetProfile returns the logged-in customer's record.
func (h *UserHandler) GetProfile(c echo.Context) error {
	session := middleware.SessionFrom(c)

	user, err := h.uc.Profile(c.Request().Context(), session.Mobile)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile overwrites the logged-in customer's editable fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	session := middleware.SessionFrom(c)

	var input *usecase.ProfileUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if input == nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), session.Mobile, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

// AdminUpdateUser lets the back office edit a customer's profile fields.
func (h *UserHandler) AdminUpdateUser(c echo.Context) error {
	mobile := c.Param("mobile")
	if mobile == "" {
		return errors.WithStack(domainerrors.ErrMobileRequired)
	}

	var input *usecase.ProfileUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if input == nil {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), mobile, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

// AdminDeleteUser hard-deletes a customer and their whole order history.
func (h *UserHandler) AdminDeleteUser(c echo.Context) error {
	mobile := c.Param("mobile")
	if mobile == "" {
		return errors.WithStack(domainerrors.ErrMobileRequired)
	}

	if err := h.uc.Erase(c.Request().Context(), mobile); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted")
}
