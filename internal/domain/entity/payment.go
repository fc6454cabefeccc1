package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks settlement of an order's payment record.
type PaymentStatus string

// Payment statuses.
const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

// PaymentMethod is how the customer settles. MethodUnset is the placeholder
// written when the order is placed, before the admin records the real method.
type PaymentMethod string

// Payment methods.
const (
	MethodCash  PaymentMethod = "Cash"
	MethodUPI   PaymentMethod = "UPI"
	MethodUnset PaymentMethod = "Cash/UPI"
)

// Payment is the single settlement record of an order. Amount is what is owed,
// AmountPaid what has actually landed; the two are tracked separately so
// partial settlement and outstanding balances fall out of a subtraction.
type Payment struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Status        PaymentStatus   `json:"status"`
	Method        PaymentMethod   `json:"method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	AppName       string          `json:"app_name,omitempty"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Outstanding returns the unpaid remainder, floored at zero so overpayment
// never produces a negative balance.
func (p *Payment) Outstanding() decimal.Decimal {
	rest := p.Amount.Sub(p.AmountPaid)
	if rest.IsNegative() {
		return decimal.Zero
	}

	return rest
}
