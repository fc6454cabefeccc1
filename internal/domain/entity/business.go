package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessInfo is one snapshot of the shop profile. The collection is an
// append-only log: saving the profile appends a new snapshot and the current
// profile is simply the most recent entry, which keeps a free audit trail of
// every charge and opening-hours change.
type BusinessInfo struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	ContactNumber  string          `json:"contact_number"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	HandlingCharge decimal.Decimal `json:"handling_charge"`
	OpenTime       string          `json:"open_time,omitempty"`
	CloseTime      string          `json:"close_time,omitempty"`
	BreakStart     string          `json:"break_start,omitempty"`
	BreakEnd       string          `json:"break_end,omitempty"`
	WeeklyHoliday  string          `json:"weekly_holiday,omitempty"`
	CartValue      decimal.Decimal `json:"cart_value"`
	ShopImageURL   string          `json:"shop_image_url,omitempty"`
	LicenceDocURL  string          `json:"licence_doc_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
