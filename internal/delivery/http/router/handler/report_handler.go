package handler

import (
	"log/slog"
	"net/http"

	"homeplate/internal/delivery/http/response"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportHandler holds dependencies for back-office reporting handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, logger: logger}
}

// RevenueBreakdown returns the cash/UPI/pending split.
func (h *ReportHandler) RevenueBreakdown(c echo.Context) error {
	breakdown, err := h.uc.RevenueBreakdown(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, breakdown, "")
}

// DailyRevenue returns the gap-filled daily series for ?start=&end=.
func (h *ReportHandler) DailyRevenue(c echo.Context) error {
	series, err := h.uc.DailyRevenue(c.Request().Context(), c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series, "")
}

// UsersDirectory returns the customer directory with balances.
func (h *ReportHandler) UsersDirectory(c echo.Context) error {
	rows, err := h.uc.UsersDirectory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// UserLedger returns one customer's order ledger.
func (h *ReportHandler) UserLedger(c echo.Context) error {
	mobile := c.Param("mobile")
	if mobile == "" {
		return errors.WithStack(domainerrors.ErrMobileRequired)
	}

	ledger, err := h.uc.UserLedger(c.Request().Context(), mobile)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ledger, "")
}

// Dashboard returns the operational snapshot.
func (h *ReportHandler) Dashboard(c echo.Context) error {
	dash, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dash, "")
}
