package usecase

import (
	"context"

	"homeplate/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// RevenueBreakdown splits money received by method, plus the outstanding
// remainder across all non-cancelled orders.
type RevenueBreakdown struct {
	Cash    decimal.Decimal `json:"cash"`
	UPI     decimal.Decimal `json:"upi"`
	Pending decimal.Decimal `json:"pending"`
}

// DailyRevenueEntry is one calendar day of the gap-filled revenue series.
type DailyRevenueEntry struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// LedgerOrder is one order in a customer's ledger: the order joined with its
// payment state (defaulted when no payment exists) and item snapshots.
type LedgerOrder struct {
	entity.Order
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	AmountPaid    decimal.Decimal      `json:"amount_paid"`
	Items         []*ItemView          `json:"items"`
}

// UserBalanceRow is one line of the customer directory with order counts and
// running money totals.
type UserBalanceRow struct {
	MobileNumber    string          `json:"mobile_number"`
	Name            string          `json:"name"`
	AltMobileNumber string          `json:"alt_mobile_number"`
	Address         string          `json:"address"`
	TotalOrders     int             `json:"total_orders"`
	TotalBillAmount decimal.Decimal `json:"total_bill_amount"`
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount"`
	TotalRemaining  decimal.Decimal `json:"total_remaining"`
}

// TodayOrder is one of today's orders on the dashboard, enriched with the
// customer name and items.
type TodayOrder struct {
	entity.Order
	UserName string              `json:"user_name"`
	Items    []*entity.OrderItem `json:"items"`
}

// StatusCount is one bucket of the order status histogram.
type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

// Dashboard is the operational snapshot for the back-office landing page.
//
// Revenue counts only Paid payments on non-cancelled orders, while
// TodayRevenue counts every payment attached to today's orders regardless of
// payment status.
type Dashboard struct {
	Users            int             `json:"users"`
	Orders           int             `json:"orders"`
	Revenue          decimal.Decimal `json:"revenue"`
	Products         int             `json:"products"`
	TodayOrdersCount int             `json:"today_orders_count"`
	TodayRevenue     decimal.Decimal `json:"today_revenue"`
	TodayOrders      []*TodayOrder   `json:"today_orders"`
	StatusChart      []StatusCount   `json:"status_chart"`
}

// ReportUsecase is the read-only aggregation layer: every method joins
// collections at query time and never mutates the store.
type ReportUsecase interface {
	// RevenueBreakdown computes the cash/UPI/pending split over all
	// non-cancelled orders.
	RevenueBreakdown(ctx context.Context) (*RevenueBreakdown, error)

	// DailyRevenue returns one entry per calendar day in [startDate,
	// endDate] (inclusive, "2006-01-02" strings), zero-filled for days
	// without payments. Empty bounds default to the last 7 days ending
	// today.
	DailyRevenue(ctx context.Context, startDate, endDate string) ([]*DailyRevenueEntry, error)

	// UserLedger lists the customer's orders most recent first, each with
	// payment state and item snapshots.
	UserLedger(ctx context.Context, mobile string) ([]*LedgerOrder, error)

	// UsersDirectory lists non-deleted customers with order counts and
	// balances, sorted by order count descending.
	UsersDirectory(ctx context.Context) ([]*UserBalanceRow, error)

	// Dashboard builds the operational snapshot.
	Dashboard(ctx context.Context) (*Dashboard, error)
}
