package repository

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when no product matches the id.
var ErrProductNotFound = errors.New("product not found")

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	ImageURL    *string
	Unit        *string
	Quantity    *string
	Description *string
	Price       *decimal.Decimal
	Status      *entity.ProductStatus
	FoodType    *string
}

// ProductRepository persists the catalog.
type ProductRepository interface {
	// FindByID retrieves a product by id, including soft-deleted ones so
	// historical order items can still resolve their unit.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindAllListed returns every product whose status is not Deleted.
	FindAllListed(ctx context.Context) ([]*entity.Product, error)

	// CountListed returns the number of non-deleted products.
	CountListed(ctx context.Context) (int, error)

	// Create persists a new product, assigning its id and created_at.
	Create(ctx context.Context, product *entity.Product) error

	// Update applies the non-nil fields of upd and returns the updated record,
	// or ErrProductNotFound without persisting anything.
	Update(ctx context.Context, id int64, upd ProductUpdate) (*entity.Product, error)

	// MarkDeleted soft-deletes the product by setting its status.
	MarkDeleted(ctx context.Context, id int64) error
}
