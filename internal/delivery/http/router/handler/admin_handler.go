package handler

import (
	"log/slog"
	"net/http"

	"homeplate/internal/delivery/http/response"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler holds dependencies for back-office session handlers.
type AdminHandler struct {
	uc       usecase.AdminUsecase
	sessions service.SessionService
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, sessions service.SessionService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, sessions: sessions, logger: logger}
}

// Login handles the admin login request and issues the session cookie.
func (h *AdminHandler) Login(c echo.Context) error {
	var input *usecase.AdminLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.sessions.IssueAdmin(admin.ID)
	if err != nil {
		return errors.WithStack(err)
	}
	setSessionCookie(c, token, h.sessions.TTL())

	return response.Success(c, http.StatusOK, map[string]any{"username": admin.Username}, "Login successful")
}

// Logout clears the session cookie.
func (h *AdminHandler) Logout(c echo.Context) error {
	clearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}
