package usecase

import (
	"context"

	"homeplate/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// BusinessProfileInput carries the editable business profile fields. Image
// and licence URLs left empty keep the values from the previous snapshot.
type BusinessProfileInput struct {
	Name           string          `json:"name" validate:"required"`
	Address        string          `json:"address"`
	ContactNumber  string          `json:"contact_number"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	HandlingCharge decimal.Decimal `json:"handling_charge"`
	OpenTime       string          `json:"open_time"`
	CloseTime      string          `json:"close_time"`
	BreakStart     string          `json:"break_start"`
	BreakEnd       string          `json:"break_end"`
	WeeklyHoliday  string          `json:"weekly_holiday"`
	CartValue      decimal.Decimal `json:"cart_value"`
	ShopImageURL   string          `json:"shop_image_url"`
	LicenceDocURL  string          `json:"licence_doc_url"`
}

// BusinessUsecase manages the append-only business profile history.
type BusinessUsecase interface {
	// CurrentProfile returns the latest snapshot, or an empty record with
	// the default cart value when none has been saved yet.
	CurrentProfile(ctx context.Context) (*entity.BusinessInfo, error)

	// SaveProfile appends a new snapshot. File URLs omitted from the input
	// are carried forward from the previous snapshot.
	SaveProfile(ctx context.Context, input *BusinessProfileInput) (*entity.BusinessInfo, error)
}
