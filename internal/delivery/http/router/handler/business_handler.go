package handler

import (
	"log/slog"
	"net/http"

	"homeplate/internal/delivery/http/response"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BusinessHandler holds dependencies for shop profile handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{uc: uc, logger: logger}
}

// Current returns the latest shop profile snapshot.
func (h *BusinessHandler) Current(c echo.Context) error {
	profile, err := h.uc.CurrentProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// Save appends a new shop profile snapshot.
func (h *BusinessHandler) Save(c echo.Context) error {
	var input *usecase.BusinessProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.SaveProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Business profile saved")
}
