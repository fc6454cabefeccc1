// Package qrcode renders UPI payment deep links as QR code images.
package qrcode

import (
	"fmt"
	"net/url"

	"homeplate/config"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	payeeVPA  string
	payeeName string
	size      int
}

// NewQRCodeService creates a new payment QR service instance.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	svc := &qrcodeService{size: defaultSize}
	if cfg.UPI != nil {
		svc.payeeVPA = cfg.UPI.PayeeVPA
		svc.payeeName = cfg.UPI.PayeeName
	}

	return svc
}

// GeneratePaymentQR renders a upi:// deep link QR code as a PNG. Scanning it
// in any UPI app pre-fills the payee and the outstanding amount.
func (s *qrcodeService) GeneratePaymentQR(orderID int64, amount decimal.Decimal) ([]byte, error) {
	if s.payeeVPA == "" {
		return nil, errors.New("upi payee not configured")
	}

	params := url.Values{}
	params.Set("pa", s.payeeVPA)
	params.Set("pn", s.payeeName)
	params.Set("am", amount.StringFixed(2))
	params.Set("cu", "INR")
	params.Set("tn", fmt.Sprintf("Order #%d", orderID))
	link := "upi://pay?" + params.Encode()

	code, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "render QR PNG")
	}

	return png, nil
}
