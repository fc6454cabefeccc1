package usecase

import (
	"context"

	"homeplate/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductInput carries the admin's product form. An empty ImageURL is
// replaced with the configured placeholder; an empty Status defaults to
// Available on create.
type ProductInput struct {
	Name        string          `json:"name" validate:"required"`
	ImageURL    string          `json:"image_url"`
	Unit        string          `json:"unit"`
	Quantity    string          `json:"quantity"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	FoodType    string          `json:"food_type"`
}

// CatalogUsecase covers the public product listing and admin catalog management.
type CatalogUsecase interface {
	// ListProducts returns every non-deleted product in stored order.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// AddProduct creates a catalog entry and returns it with its id.
	AddProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct overwrites the product form fields.
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)

	// RemoveProduct soft-deletes the product so past order items keep
	// resolving against it.
	RemoveProduct(ctx context.Context, id int64) error
}
