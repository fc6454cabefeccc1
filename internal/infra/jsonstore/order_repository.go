package jsonstore

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"
)

// orderRepository implements repository.OrderRepository on the shared store.
// Order placement and item replacement span multiple collections; they run
// under one write lock and flush once, so the order graph becomes visible and
// durable atomically.
type orderRepository struct {
	store *Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (repo *orderRepository) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	order, ok := first(repo.store.data.Orders, func(o *entity.Order) bool {
		return o.ID == id
	})
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return &order, nil
}

func (repo *orderRepository) FindByUser(_ context.Context, mobile string) ([]*entity.Order, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return filter(repo.store.data.Orders, func(o *entity.Order) bool {
		return o.UserMobile == mobile
	}), nil
}

func (repo *orderRepository) FindAll(_ context.Context) ([]*entity.Order, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return filter[entity.Order](repo.store.data.Orders, nil), nil
}

func (repo *orderRepository) CreateGraph(_ context.Context, order *entity.Order, items []*entity.OrderItem, payment *entity.Payment) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	now := repo.store.stamp()

	order.ID = nextID(repo.store.data.Orders, func(o *entity.Order) int64 { return o.ID })
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	repo.store.data.Orders = append(repo.store.data.Orders, *order)

	for _, item := range items {
		item.ID = nextID(repo.store.data.OrderItems, func(i *entity.OrderItem) int64 { return i.ID })
		item.OrderID = order.ID
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		repo.store.data.OrderItems = append(repo.store.data.OrderItems, *item)
	}

	if payment != nil {
		payment.ID = nextID(repo.store.data.Payments, func(p *entity.Payment) int64 { return p.ID })
		payment.OrderID = order.ID
		if payment.CreatedAt.IsZero() {
			payment.CreatedAt = now
		}
		repo.store.data.Payments = append(repo.store.data.Payments, *payment)
	}

	return repo.store.flushLocked()
}

func (repo *orderRepository) Update(_ context.Context, id int64, upd repository.OrderUpdate) (*entity.Order, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for i := range repo.store.data.Orders {
		order := &repo.store.data.Orders[i]
		if order.ID != id {
			continue
		}

		if upd.TotalAmount != nil {
			order.TotalAmount = *upd.TotalAmount
		}
		if upd.DeliverySlot != nil {
			order.DeliverySlot = *upd.DeliverySlot
		}
		if upd.DeliveryDate != nil {
			order.DeliveryDate = *upd.DeliveryDate
		}
		if upd.Status != nil {
			order.Status = *upd.Status
		}

		if err := repo.store.flushLocked(); err != nil {
			return nil, err
		}
		updated := *order

		return &updated, nil
	}

	return nil, repository.ErrOrderNotFound
}

func (repo *orderRepository) ItemsByOrder(_ context.Context, orderID int64) ([]*entity.OrderItem, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return filter(repo.store.data.OrderItems, func(i *entity.OrderItem) bool {
		return i.OrderID == orderID
	}), nil
}

func (repo *orderRepository) ReplaceItems(_ context.Context, orderID int64, items []*entity.OrderItem) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	kept, _ := removeAll(repo.store.data.OrderItems, func(i *entity.OrderItem) bool {
		return i.OrderID == orderID
	})
	repo.store.data.OrderItems = kept

	now := repo.store.stamp()
	for _, item := range items {
		item.ID = nextID(repo.store.data.OrderItems, func(i *entity.OrderItem) int64 { return i.ID })
		item.OrderID = orderID
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		repo.store.data.OrderItems = append(repo.store.data.OrderItems, *item)
	}

	return repo.store.flushLocked()
}

func (repo *orderRepository) DeleteByUser(_ context.Context, mobile string) (bool, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	orderIDs := make(map[int64]struct{})
	for i := range repo.store.data.Orders {
		if repo.store.data.Orders[i].UserMobile == mobile {
			orderIDs[repo.store.data.Orders[i].ID] = struct{}{}
		}
	}
	if len(orderIDs) == 0 {
		return false, nil
	}

	// Cascade: items and payments first, then the orders themselves.
	repo.store.data.OrderItems, _ = removeAll(repo.store.data.OrderItems, func(i *entity.OrderItem) bool {
		_, ok := orderIDs[i.OrderID]

		return ok
	})
	repo.store.data.Payments, _ = removeAll(repo.store.data.Payments, func(p *entity.Payment) bool {
		_, ok := orderIDs[p.OrderID]

		return ok
	})
	repo.store.data.Orders, _ = removeAll(repo.store.data.Orders, func(o *entity.Order) bool {
		return o.UserMobile == mobile
	})

	return true, repo.store.flushLocked()
}
