package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"homeplate/internal/delivery/http/middleware"
	"homeplate/internal/delivery/http/response"
	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc       usecase.OrderUsecase
	payments usecase.PaymentUsecase
	reports  usecase.ReportUsecase
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(
	uc usecase.OrderUsecase,
	payments usecase.PaymentUsecase,
	reports usecase.ReportUsecase,
	logger *slog.Logger,
) *OrderHandler {
	return &OrderHandler{uc: uc, payments: payments, reports: reports, logger: logger}
}

// Place creates a new order for the logged-in customer.
func (h *OrderHandler) Place(c echo.Context) error {
	session := middleware.SessionFrom(c)

	var input *usecase.OrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), session.Mobile, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"order_id": orderID}, "Order placed")
}

// MyOrders returns the logged-in customer's ledger.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	session := middleware.SessionFrom(c)

	ledger, err := h.reports.UserLedger(c.Request().Context(), session.Mobile)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ledger, "")
}

// Update rewrites an editable order owned by the logged-in customer.
func (h *OrderHandler) Update(c echo.Context) error {
	session := middleware.SessionFrom(c)

	orderID, err := orderID(c)
	if err != nil {
		return err
	}

	var input *usecase.OrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateOrder(c.Request().Context(), session.Mobile, orderID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order updated")
}

// Detail returns the joined single-order view to its owner or any admin.
func (h *OrderHandler) Detail(c echo.Context) error {
	orderID, err := orderID(c)
	if err != nil {
		return err
	}

	detail, err := h.uc.OrderDetail(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := authorizeOrderAccess(c, detail.Order.UserMobile); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// SetStatus records an admin status change.
func (h *OrderHandler) SetStatus(c echo.Context) error {
	orderID, err := orderID(c)
	if err != nil {
		return err
	}

	var input struct {
		Status entity.OrderStatus `json:"status"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.SetStatus(c.Request().Context(), orderID, input.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated")
}

// ListAll returns the joined back-office order list.
func (h *OrderHandler) ListAll(c echo.Context) error {
	rows, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// RecordPayment applies a settlement update to the order's payment record.
func (h *OrderHandler) RecordPayment(c echo.Context) error {
	orderID, err := orderID(c)
	if err != nil {
		return err
	}

	var input *usecase.PaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	payment, err := h.payments.RecordPayment(c.Request().Context(), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment recorded")
}

// PaymentQR streams a UPI QR code PNG for the order's outstanding balance,
// for the owner or any admin.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	orderID, err := orderID(c)
	if err != nil {
		return err
	}

	detail, err := h.uc.OrderDetail(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := authorizeOrderAccess(c, detail.Order.UserMobile); err != nil {
		return err
	}

	png, err := h.payments.PaymentQR(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// authorizeOrderAccess admits admins and the order's owning customer.
func authorizeOrderAccess(c echo.Context, ownerMobile string) error {
	session := middleware.SessionFrom(c)
	if session == nil {
		return errors.WithStack(domainerrors.ErrUserLoginRequired)
	}
	if session.Role == service.RoleAdmin || session.Mobile == ownerMobile {
		return nil
	}

	return errors.WithStack(domainerrors.ErrForbidden)
}

func orderID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return id, nil
}
