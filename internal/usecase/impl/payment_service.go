package impl

import (
	"context"
	"log/slog"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	qr       service.QRCodeService
	logger   *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		payments: payments,
		orders:   orders,
		qr:       qr,
		logger:   logger,
	}
}

// RecordPayment applies the supplied fields to the order's payment record.
func (srv *paymentService) RecordPayment(ctx context.Context, orderID int64, input *usecase.PaymentInput) (*entity.Payment, error) {
	payment, err := srv.payments.UpdateByOrder(ctx, orderID, repository.PaymentUpdate{
		Status:        input.Status,
		Amount:        input.Amount,
		AmountPaid:    input.AmountPaid,
		Method:        input.Method,
		TransactionID: input.TransactionID,
		AppName:       input.AppName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "no payment for order")
		}

		return nil, errors.Wrap(err, "failed to record payment")
	}

	srv.logger.Info("Recorded payment", "orderID", orderID, "status", payment.Status, "amountPaid", payment.AmountPaid)

	return payment, nil
}

// PaymentQR renders a UPI QR code for the order's outstanding balance.
func (srv *paymentService) PaymentQR(ctx context.Context, orderID int64) ([]byte, error) {
	if _, err := srv.orders.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "no such order")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	payment, err := srv.payments.FindByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "no payment for order")
		}

		return nil, errors.Wrap(err, "failed to load payment")
	}

	outstanding := payment.Outstanding()
	if outstanding.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrNothingOutstanding, "payment already settled")
	}

	png, err := srv.qr.GeneratePaymentQR(orderID, outstanding)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}
