package qrcode

import (
	"bytes"
	"testing"

	"homeplate/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGeneratePaymentQR(t *testing.T) {
	cfg := &config.Config{UPI: &config.UPIConfig{
		PayeeVPA:  "homeplate@upi",
		PayeeName: "HomePlate Kitchen",
	}}
	svc := NewQRCodeService(cfg)

	png, err := svc.GeneratePaymentQR(42, decimal.RequireFromString("249.50"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected PNG output")
}

func TestGeneratePaymentQR_UnconfiguredPayee(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GeneratePaymentQR(1, decimal.NewFromInt(100))
	assert.Error(t, err)
}
