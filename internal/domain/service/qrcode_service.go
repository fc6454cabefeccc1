package service

import "github.com/shopspring/decimal"

// QRCodeService defines the interface for payment QR code generation.
type QRCodeService interface {
	// GeneratePaymentQR renders a UPI deep-link QR code as a PNG for the
	// given amount, tagged with the order it settles.
	GeneratePaymentQR(orderID int64, amount decimal.Decimal) ([]byte, error)
}
