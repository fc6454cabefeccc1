package jsonstore

import (
	"context"
	"time"

	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"
)

// paymentRepository implements repository.PaymentRepository on the shared store.
type paymentRepository struct {
	store *Store
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(store *Store) repository.PaymentRepository {
	return &paymentRepository{store: store}
}

func (repo *paymentRepository) FindByOrder(_ context.Context, orderID int64) (*entity.Payment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	payment, ok := first(repo.store.data.Payments, func(p *entity.Payment) bool {
		return p.OrderID == orderID
	})
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}

	return &payment, nil
}

func (repo *paymentRepository) FindAllPaid(_ context.Context) ([]*entity.Payment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return filter(repo.store.data.Payments, func(p *entity.Payment) bool {
		return p.Status == entity.PaymentPaid
	}), nil
}

func (repo *paymentRepository) FindInRange(_ context.Context, start, end time.Time) ([]*entity.Payment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	startDay := start.Format(time.DateOnly)
	endDay := end.Format(time.DateOnly)

	// Range comparison by calendar date string: RFC 3339 date prefixes sort
	// lexicographically in chronological order.
	return filter(repo.store.data.Payments, func(p *entity.Payment) bool {
		if p.PaymentDate == nil {
			return false
		}
		day := p.PaymentDate.Format(time.DateOnly)

		return day >= startDay && day <= endDay
	}), nil
}

func (repo *paymentRepository) Create(_ context.Context, payment *entity.Payment) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	payment.ID = nextID(repo.store.data.Payments, func(p *entity.Payment) int64 { return p.ID })
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = repo.store.stamp()
	}
	repo.store.data.Payments = append(repo.store.data.Payments, *payment)

	return repo.store.flushLocked()
}

func (repo *paymentRepository) UpdateByOrder(_ context.Context, orderID int64, upd repository.PaymentUpdate) (*entity.Payment, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for i := range repo.store.data.Payments {
		payment := &repo.store.data.Payments[i]
		if payment.OrderID != orderID {
			continue
		}

		if upd.Status != nil {
			payment.Status = *upd.Status
		}
		if upd.Amount != nil {
			payment.Amount = *upd.Amount
		}
		if upd.AmountPaid != nil {
			payment.AmountPaid = *upd.AmountPaid
			if upd.AmountPaid.IsPositive() {
				now := repo.store.stamp()
				payment.PaymentDate = &now
			}
		}
		if upd.Method != nil {
			payment.Method = *upd.Method
		}
		if upd.TransactionID != nil {
			payment.TransactionID = *upd.TransactionID
		}
		if upd.AppName != nil {
			payment.AppName = *upd.AppName
		}

		if err := repo.store.flushLocked(); err != nil {
			return nil, err
		}
		updated := *payment

		return &updated, nil
	}

	return nil, repository.ErrPaymentNotFound
}
