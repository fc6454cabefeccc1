package repository

import (
	"context"
	"time"

	"homeplate/internal/domain/entity"
	"homeplate/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrPaymentNotFound is returned when no payment matches the order.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentUpdate carries a partial update; nil fields are left untouched.
// A positive AmountPaid also stamps payment_date on the record.
type PaymentUpdate struct {
	Status        *entity.PaymentStatus
	Amount        *decimal.Decimal
	AmountPaid    *decimal.Decimal
	Method        *entity.PaymentMethod
	TransactionID *string
	AppName       *string
}

// PaymentRepository persists order payment records.
type PaymentRepository interface {
	// FindByOrder retrieves the payment of an order (1:1 by convention;
	// the first match wins if the convention is ever violated).
	FindByOrder(ctx context.Context, orderID int64) (*entity.Payment, error)

	// FindAllPaid returns every payment whose status is Paid.
	FindAllPaid(ctx context.Context) ([]*entity.Payment, error)

	// FindInRange returns every payment whose payment_date falls within
	// [start, end] by calendar date.
	FindInRange(ctx context.Context, start, end time.Time) ([]*entity.Payment, error)

	// Create persists a new payment, assigning its id and created_at.
	Create(ctx context.Context, payment *entity.Payment) error

	// UpdateByOrder applies the non-nil fields of upd to the order's payment
	// and returns the updated record, or ErrPaymentNotFound without
	// persisting anything.
	UpdateByOrder(ctx context.Context, orderID int64, upd PaymentUpdate) (*entity.Payment, error)
}
