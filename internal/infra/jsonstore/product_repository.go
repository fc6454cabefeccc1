package jsonstore

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"
)

// productRepository implements repository.ProductRepository on the shared store.
type productRepository struct {
	store *Store
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (repo *productRepository) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	product, ok := first(repo.store.data.Products, func(p *entity.Product) bool {
		return p.ID == id
	})
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &product, nil
}

func (repo *productRepository) FindAllListed(_ context.Context) ([]*entity.Product, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return filter(repo.store.data.Products, func(p *entity.Product) bool {
		return p.Listed()
	}), nil
}

func (repo *productRepository) CountListed(_ context.Context) (int, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return count(repo.store.data.Products, func(p *entity.Product) bool {
		return p.Listed()
	}), nil
}

func (repo *productRepository) Create(_ context.Context, product *entity.Product) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	product.ID = nextID(repo.store.data.Products, func(p *entity.Product) int64 { return p.ID })
	if product.CreatedAt.IsZero() {
		product.CreatedAt = repo.store.stamp()
	}
	repo.store.data.Products = append(repo.store.data.Products, *product)

	return repo.store.flushLocked()
}

func (repo *productRepository) Update(_ context.Context, id int64, upd repository.ProductUpdate) (*entity.Product, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for i := range repo.store.data.Products {
		product := &repo.store.data.Products[i]
		if product.ID != id {
			continue
		}

		if upd.Name != nil {
			product.Name = *upd.Name
		}
		if upd.ImageURL != nil {
			product.ImageURL = *upd.ImageURL
		}
		if upd.Unit != nil {
			product.Unit = *upd.Unit
		}
		if upd.Quantity != nil {
			product.Quantity = *upd.Quantity
		}
		if upd.Description != nil {
			product.Description = *upd.Description
		}
		if upd.Price != nil {
			product.Price = *upd.Price
		}
		if upd.Status != nil {
			product.Status = *upd.Status
		}
		if upd.FoodType != nil {
			product.FoodType = *upd.FoodType
		}

		if err := repo.store.flushLocked(); err != nil {
			return nil, err
		}
		updated := *product

		return &updated, nil
	}

	return nil, repository.ErrProductNotFound
}

func (repo *productRepository) MarkDeleted(ctx context.Context, id int64) error {
	status := entity.ProductDeleted
	_, err := repo.Update(ctx, id, repository.ProductUpdate{Status: &status})

	return err
}
