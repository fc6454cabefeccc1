package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through the kitchen. The set below is what the
// admin UI offers; transitions are not constrained server-side beyond the
// EditableBy gate, so unknown statuses round-trip untouched.
type OrderStatus string

// Order statuses.
const (
	OrderPending        OrderStatus = "Pending"
	OrderAccepted       OrderStatus = "Accepted"
	OrderPreparing      OrderStatus = "Preparing"
	OrderOutForDelivery OrderStatus = "Out for Delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

// Order is one customer purchase. Items live in their own collection keyed by
// OrderID, payments likewise (1:1 by convention).
type Order struct {
	ID           int64           `json:"id"`
	UserMobile   string          `json:"user_mobile"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	DeliverySlot string          `json:"delivery_slot,omitempty"`
	DeliveryDate string          `json:"delivery_date,omitempty"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Editable reports whether the owning customer may still change the order.
// Once preparation finishes the order is frozen for the customer; the admin
// can always adjust status and payment.
func (o *Order) Editable() bool {
	switch o.Status {
	case OrderPending, OrderAccepted, OrderPreparing:
		return true
	default:
		return false
	}
}

// OrderItem is a denormalized snapshot of a product at order time. Name and
// prices are copied so later product edits or deletions never rewrite history.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}
