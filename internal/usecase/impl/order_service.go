package impl

import (
	"context"
	"log/slog"
	"sort"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"

	"github.com/shopspring/decimal"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	products repository.ProductRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:   orders,
		payments: payments,
		products: products,
		users:    users,
		logger:   logger,
	}
}

// PlaceOrder creates the order graph for the customer.
func (srv *orderService) PlaceOrder(ctx context.Context, mobile string, input *usecase.OrderInput) (int64, error) {
	if len(input.Items) == 0 {
		return 0, errors.Wrap(domainerrors.ErrEmptyCart, "no items in cart")
	}

	order := &entity.Order{
		UserMobile:   mobile,
		TotalAmount:  input.TotalAmount,
		DeliverySlot: input.DeliverySlot,
		DeliveryDate: input.DeliveryDate,
		Status:       entity.OrderPending,
	}

	payment := &entity.Payment{
		Amount:     input.TotalAmount,
		AmountPaid: decimal.Zero,
		Status:     entity.PaymentPending,
		Method:     entity.MethodUnset,
	}

	if err := srv.orders.CreateGraph(ctx, order, snapshotItems(input.Items), payment); err != nil {
		return 0, errors.Wrap(err, "failed to place order")
	}

	srv.logger.Info("Placed order", "orderID", order.ID, "mobile", mobile, "total", order.TotalAmount)

	return order.ID, nil
}

// UpdateOrder lets the owning customer rewrite an editable order.
func (srv *orderService) UpdateOrder(ctx context.Context, mobile string, orderID int64, input *usecase.OrderInput) error {
	if len(input.Items) == 0 {
		return errors.Wrap(domainerrors.ErrEmptyCart, "no items in cart")
	}

	order, err := srv.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "no such order")
		}

		return errors.Wrap(err, "failed to find order")
	}

	if order.UserMobile != mobile {
		return errors.Wrap(domainerrors.ErrForbidden, "order belongs to another customer")
	}
	if !order.Editable() {
		return errors.Wrapf(domainerrors.ErrOrderNotEditable, "order status %q", order.Status)
	}

	if _, err := srv.orders.Update(ctx, orderID, repository.OrderUpdate{
		TotalAmount:  &input.TotalAmount,
		DeliverySlot: &input.DeliverySlot,
		DeliveryDate: &input.DeliveryDate,
	}); err != nil {
		return errors.Wrap(err, "failed to update order")
	}

	// Keep the owed amount in step with the rewritten cart. Orders placed
	// before payments existed have nothing to sync.
	if _, err := srv.payments.UpdateByOrder(ctx, orderID, repository.PaymentUpdate{
		Amount: &input.TotalAmount,
	}); err != nil && !errors.Is(err, repository.ErrPaymentNotFound) {
		return errors.Wrap(err, "failed to sync payment amount")
	}

	if err := srv.orders.ReplaceItems(ctx, orderID, snapshotItems(input.Items)); err != nil {
		return errors.Wrap(err, "failed to replace order items")
	}

	srv.logger.Info("Updated order", "orderID", orderID, "mobile", mobile)

	return nil
}

// OrderDetail returns the joined single-order view.
func (srv *orderService) OrderDetail(ctx context.Context, orderID int64) (*usecase.OrderDetail, error) {
	order, err := srv.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "no such order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	items, err := srv.orders.ItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	detail := &usecase.OrderDetail{
		Order: order,
		Items: srv.enrichItems(ctx, items),
	}

	payment, err := srv.payments.FindByOrder(ctx, orderID)
	if err == nil {
		detail.Payment = payment
	} else if !errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, errors.Wrap(err, "failed to load payment")
	}

	user, err := srv.users.FindByMobile(ctx, order.UserMobile)
	if err == nil {
		detail.User = user
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load customer")
	}

	return detail, nil
}

// SetStatus records an admin status change.
func (srv *orderService) SetStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	if status == "" {
		return errors.Wrap(domainerrors.ErrStatusRequired, "empty status")
	}

	if _, err := srv.orders.Update(ctx, orderID, repository.OrderUpdate{Status: &status}); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "no such order")
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.logger.Info("Order status changed", "orderID", orderID, "status", status)

	return nil
}

// ListAll returns every order, most recent first, joined for the back office.
func (srv *orderService) ListAll(ctx context.Context) ([]*usecase.AdminOrderRow, error) {
	orders, err := srv.orders.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	rows := make([]*usecase.AdminOrderRow, 0, len(orders))
	for _, order := range orders {
		row := &usecase.AdminOrderRow{
			Order:         *order,
			PaymentStatus: entity.PaymentPending,
			AmountPaid:    decimal.Zero,
		}

		if user, err := srv.users.FindByMobile(ctx, order.UserMobile); err == nil {
			row.UserName = user.Name
			row.UserAddress = user.Address
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load customer")
		}

		if payment, err := srv.payments.FindByOrder(ctx, order.ID); err == nil {
			row.PaymentStatus = payment.Status
			row.AmountPaid = payment.AmountPaid
		} else if !errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(err, "failed to load payment")
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].ID > rows[j].ID
		}

		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	return rows, nil
}

// enrichItems joins each snapshot with the product's current unit. Items of
// products removed since the order keep an empty unit.
func (srv *orderService) enrichItems(ctx context.Context, items []*entity.OrderItem) []*usecase.ItemView {
	views := make([]*usecase.ItemView, 0, len(items))
	for _, item := range items {
		view := &usecase.ItemView{OrderItem: *item}
		if product, err := srv.products.FindByID(ctx, item.ProductID); err == nil {
			view.Unit = product.Unit
		}

		views = append(views, view)
	}

	return views
}

// snapshotItems converts cart lines into denormalized order item records.
func snapshotItems(items []usecase.CartItem) []*entity.OrderItem {
	snapshots := make([]*entity.OrderItem, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, &entity.OrderItem{
			ProductID:   item.ID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
			TotalPrice:  item.Price.Mul(decimal.NewFromInt(item.Quantity)),
		})
	}

	return snapshots
}
