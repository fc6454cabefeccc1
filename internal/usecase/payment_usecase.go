package usecase

import (
	"context"

	"homeplate/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PaymentInput is the admin's settlement form. Pointer fields express
// partiality: absent fields leave the stored record untouched.
type PaymentInput struct {
	Status        *entity.PaymentStatus `json:"status"`
	Amount        *decimal.Decimal      `json:"amount"`
	AmountPaid    *decimal.Decimal      `json:"amount_paid"`
	Method        *entity.PaymentMethod `json:"method"`
	TransactionID *string               `json:"transaction_id"`
	AppName       *string               `json:"app_name"`
}

// PaymentUsecase covers settlement recording and payment collection helpers.
type PaymentUsecase interface {
	// RecordPayment applies the supplied fields to the order's payment
	// record and returns the updated record.
	RecordPayment(ctx context.Context, orderID int64, input *PaymentInput) (*entity.Payment, error)

	// PaymentQR renders a UPI QR code for the order's outstanding balance.
	PaymentQR(ctx context.Context, orderID int64) ([]byte, error)
}
