package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus controls catalog visibility. Deleted products stay in the
// collection so historical order items can still resolve their snapshot.
type ProductStatus string

// Product statuses.
const (
	ProductAvailable   ProductStatus = "Available"
	ProductUnavailable ProductStatus = "Unavailable"
	ProductDeleted     ProductStatus = "Deleted"
)

// Product is a catalog entry. Price is exact decimal money; Quantity and Unit
// together describe the portion (e.g. "500" + "g").
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"image_url"`
	Unit        string          `json:"unit"`
	Quantity    string          `json:"quantity"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      ProductStatus   `json:"status"`
	FoodType    string          `json:"food_type,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Listed reports whether the product should appear in the public catalog.
func (p *Product) Listed() bool {
	return p.Status != ProductDeleted
}
