package usecase

import (
	"context"

	"homeplate/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartItem is one line of the customer's cart as submitted by the client:
// the product id plus the snapshot values the order will keep.
type CartItem struct {
	ID       int64           `json:"id" validate:"required"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity" validate:"required,min=1"`
	Price    decimal.Decimal `json:"price"`
}

// OrderInput is shared by order placement and order editing: editing fully
// replaces the item set rather than merging.
type OrderInput struct {
	Items        []CartItem      `json:"items" validate:"required,min=1,dive"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	DeliverySlot string          `json:"delivery_slot"`
	DeliveryDate string          `json:"delivery_date"`
}

// ItemView is an order item enriched with the product's current unit; the
// unit is empty when the product no longer exists.
type ItemView struct {
	entity.OrderItem
	Unit string `json:"unit"`
}

// OrderDetail is the full single-order view: the order with its items,
// payment (nil when none exists yet) and owning customer.
type OrderDetail struct {
	Order   *entity.Order   `json:"order"`
	Items   []*ItemView     `json:"items"`
	Payment *entity.Payment `json:"payment,omitempty"`
	User    *entity.User    `json:"user,omitempty"`
}

// AdminOrderRow is one line of the back-office order list: the order joined
// with the customer's name/address and its payment state.
type AdminOrderRow struct {
	entity.Order
	UserName      string               `json:"user_name"`
	UserAddress   string               `json:"user_address"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	AmountPaid    decimal.Decimal      `json:"amount_paid"`
}

// OrderUsecase covers the order lifecycle from placement to status updates.
type OrderUsecase interface {
	// PlaceOrder creates the order graph (order, item snapshots, pending
	// payment) for the customer and returns the new order id.
	PlaceOrder(ctx context.Context, mobile string, input *OrderInput) (int64, error)

	// UpdateOrder lets the owning customer rewrite an order that is still
	// in an editable status: totals and delivery fields are replaced, the
	// payment amount is synced and the item set is fully replaced.
	UpdateOrder(ctx context.Context, mobile string, orderID int64, input *OrderInput) error

	// OrderDetail returns the joined single-order view. Authorization is the
	// caller's concern; the detail includes the owner for that check.
	OrderDetail(ctx context.Context, orderID int64) (*OrderDetail, error)

	// SetStatus records an admin status change. Any non-empty status value
	// is accepted.
	SetStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error

	// ListAll returns every order, most recent first, joined with customer
	// and payment data for the back office.
	ListAll(ctx context.Context) ([]*AdminOrderRow, error)
}
