package repository

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when no order matches the id.
var ErrOrderNotFound = errors.New("order not found")

// OrderUpdate carries a partial update; nil fields are left untouched.
type OrderUpdate struct {
	TotalAmount  *decimal.Decimal
	DeliverySlot *string
	DeliveryDate *string
	Status       *entity.OrderStatus
}

// OrderRepository persists orders and their denormalized item snapshots.
type OrderRepository interface {
	// FindByID retrieves an order by id.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByUser returns every order of the given mobile number, in stored order.
	FindByUser(ctx context.Context, mobile string) ([]*entity.Order, error)

	// FindAll returns every order in stored order.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// CreateGraph persists an order together with its items and initial
	// payment record under a single flush, assigning ids across all three
	// collections. Item OrderID and payment OrderID fields are filled in.
	CreateGraph(ctx context.Context, order *entity.Order, items []*entity.OrderItem, payment *entity.Payment) error

	// Update applies the non-nil fields of upd and returns the updated order,
	// or ErrOrderNotFound without persisting anything.
	Update(ctx context.Context, id int64, upd OrderUpdate) (*entity.Order, error)

	// ItemsByOrder returns the item snapshots of an order, in stored order.
	ItemsByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)

	// ReplaceItems removes every item of the order and inserts the given set
	// in its place under a single flush.
	ReplaceItems(ctx context.Context, orderID int64, items []*entity.OrderItem) error

	// DeleteByUser removes all orders of the user together with their items
	// and payments, reporting whether anything was removed.
	DeleteByUser(ctx context.Context, mobile string) (bool, error)
}
