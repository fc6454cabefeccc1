package impl

import (
	"bytes"
	"context"
	"testing"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/infra/qrcode"
	"homeplate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func newPaymentService(repos *testRepos) *paymentService {
	return &paymentService{
		payments: repos.payments,
		orders:   repos.orders,
		qr:       qrcode.NewQRCodeService(testConfig()),
		logger:   testLogger(),
	}
}

func placeTestOrder(t *testing.T, repos *testRepos, total string) int64 {
	t.Helper()

	order := &entity.Order{UserMobile: "111", TotalAmount: dec(total), Status: entity.OrderPending}
	payment := &entity.Payment{Amount: dec(total), Status: entity.PaymentPending, Method: entity.MethodUnset}
	require.NoError(t, repos.orders.CreateGraph(context.Background(), order, nil, payment))

	return order.ID
}

func TestPaymentService_RecordPayment_Partial(t *testing.T) {
	repos := newTestRepos(t)
	service := newPaymentService(repos)
	ctx := context.Background()

	orderID := placeTestOrder(t, repos, "100")

	status := entity.PaymentPartial
	method := entity.MethodCash
	paid := dec("60")
	payment, err := service.RecordPayment(ctx, orderID, &usecase.PaymentInput{
		Status:     &status,
		AmountPaid: &paid,
		Method:     &method,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPartial, payment.Status)
	assert.Equal(t, entity.MethodCash, payment.Method)
	assert.True(t, payment.AmountPaid.Equal(dec("60")))
	assert.True(t, payment.Amount.Equal(dec("100")), "owed amount untouched")
	require.NotNil(t, payment.PaymentDate, "positive amount stamps the payment date")
}

func TestPaymentService_RecordPayment_Unknown(t *testing.T) {
	repos := newTestRepos(t)
	service := newPaymentService(repos)

	status := entity.PaymentPaid
	_, err := service.RecordPayment(context.Background(), 99, &usecase.PaymentInput{Status: &status})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_PaymentQR(t *testing.T) {
	repos := newTestRepos(t)
	service := newPaymentService(repos)
	ctx := context.Background()

	orderID := placeTestOrder(t, repos, "100")

	png, err := service.PaymentQR(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestPaymentService_PaymentQR_NothingOutstanding(t *testing.T) {
	repos := newTestRepos(t)
	service := newPaymentService(repos)
	ctx := context.Background()

	orderID := placeTestOrder(t, repos, "100")

	status := entity.PaymentPaid
	paid := dec("100")
	_, err := service.RecordPayment(ctx, orderID, &usecase.PaymentInput{Status: &status, AmountPaid: &paid})
	require.NoError(t, err)

	_, err = service.PaymentQR(ctx, orderID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNothingOutstanding)
}

func TestPaymentService_PaymentQR_UnknownOrder(t *testing.T) {
	repos := newTestRepos(t)
	service := newPaymentService(repos)

	_, err := service.PaymentQR(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
