package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/repository"
	"homeplate/internal/errors"
	"homeplate/internal/usecase"

	"github.com/shopspring/decimal"
)

// defaultSeriesDays is the window of the daily revenue series when the caller
// gives no bounds.
const defaultSeriesDays = 7

// reportService implements the ReportUsecase interface. Every method joins
// the collections at query time; missing join targets are substituted with
// defaults rather than failing the aggregate.
type reportService struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	products repository.ProductRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		orders:   orders,
		payments: payments,
		products: products,
		users:    users,
		logger:   logger,
	}
}

// RevenueBreakdown computes the cash/UPI/pending split over all non-cancelled
// orders. Orders without a payment record contribute their full total to the
// pending bucket.
func (srv *reportService) RevenueBreakdown(ctx context.Context) (*usecase.RevenueBreakdown, error) {
	orders, err := srv.orders.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	breakdown := &usecase.RevenueBreakdown{
		Cash:    decimal.Zero,
		UPI:     decimal.Zero,
		Pending: decimal.Zero,
	}

	for _, order := range orders {
		if order.Status == entity.OrderCancelled {
			continue
		}

		payment, err := srv.payments.FindByOrder(ctx, order.ID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				breakdown.Pending = breakdown.Pending.Add(order.TotalAmount)
				continue
			}

			return nil, errors.Wrap(err, "failed to load payment")
		}

		switch payment.Method {
		case entity.MethodCash:
			breakdown.Cash = breakdown.Cash.Add(payment.AmountPaid)
		case entity.MethodUPI:
			breakdown.UPI = breakdown.UPI.Add(payment.AmountPaid)
		}

		rest := order.TotalAmount.Sub(payment.AmountPaid)
		if rest.IsPositive() {
			breakdown.Pending = breakdown.Pending.Add(rest)
		}
	}

	return breakdown, nil
}

// DailyRevenue returns a gap-filled ascending series of daily totals over
// [startDate, endDate]. Empty bounds default to the last 7 days ending today.
func (srv *reportService) DailyRevenue(ctx context.Context, startDate, endDate string) ([]*usecase.DailyRevenueEntry, error) {
	end := time.Now()
	if endDate != "" {
		parsed, err := time.Parse(time.DateOnly, endDate)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidDateRange, "bad end date")
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -(defaultSeriesDays - 1))
	if startDate != "" {
		parsed, err := time.Parse(time.DateOnly, startDate)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidDateRange, "bad start date")
		}
		start = parsed
	}

	startDay := start.Format(time.DateOnly)
	endDay := end.Format(time.DateOnly)
	if startDay > endDay {
		return nil, errors.Wrap(domainerrors.ErrInvalidDateRange, "start after end")
	}

	cancelled, err := srv.cancelledOrders(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := srv.payments.FindInRange(ctx, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payments in range")
	}

	totals := make(map[string]decimal.Decimal)
	for _, payment := range payments {
		if payment.PaymentDate == nil || cancelled[payment.OrderID] {
			continue
		}

		day := payment.PaymentDate.Format(time.DateOnly)
		totals[day] = totals[day].Add(payment.AmountPaid)
	}

	var series []*usecase.DailyRevenueEntry
	for day := start; ; day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		if key > endDay {
			break
		}

		total, ok := totals[key]
		if !ok {
			total = decimal.Zero
		}

		series = append(series, &usecase.DailyRevenueEntry{Date: key, Total: total})
	}

	return series, nil
}

// UserLedger lists the customer's orders most recent first with payment state
// and item snapshots.
func (srv *reportService) UserLedger(ctx context.Context, mobile string) ([]*usecase.LedgerOrder, error) {
	orders, err := srv.orders.FindByUser(ctx, mobile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	ledger := make([]*usecase.LedgerOrder, 0, len(orders))
	for _, order := range orders {
		row := &usecase.LedgerOrder{
			Order:         *order,
			PaymentStatus: entity.PaymentPending,
			AmountPaid:    decimal.Zero,
		}

		if payment, err := srv.payments.FindByOrder(ctx, order.ID); err == nil {
			row.PaymentStatus = payment.Status
			row.AmountPaid = payment.AmountPaid
		} else if !errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(err, "failed to load payment")
		}

		items, err := srv.orders.ItemsByOrder(ctx, order.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load order items")
		}
		row.Items = srv.itemViews(ctx, items)

		ledger = append(ledger, row)
	}

	sort.Slice(ledger, func(i, j int) bool {
		if ledger[i].CreatedAt.Equal(ledger[j].CreatedAt) {
			return ledger[i].ID > ledger[j].ID
		}

		return ledger[i].CreatedAt.After(ledger[j].CreatedAt)
	})

	return ledger, nil
}

// UsersDirectory lists non-deleted customers with order counts and balances,
// sorted by order count descending.
func (srv *reportService) UsersDirectory(ctx context.Context) ([]*usecase.UserBalanceRow, error) {
	users, err := srv.users.FindAllActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	rows := make([]*usecase.UserBalanceRow, 0, len(users))
	for _, user := range users {
		orders, err := srv.orders.FindByUser(ctx, user.MobileNumber)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list customer orders")
		}

		row := &usecase.UserBalanceRow{
			MobileNumber:    user.MobileNumber,
			Name:            user.Name,
			AltMobileNumber: user.AltMobileNumber,
			Address:         user.Address,
			TotalOrders:     len(orders),
			TotalBillAmount: decimal.Zero,
			TotalPaidAmount: decimal.Zero,
		}

		for _, order := range orders {
			row.TotalBillAmount = row.TotalBillAmount.Add(order.TotalAmount)

			if payment, err := srv.payments.FindByOrder(ctx, order.ID); err == nil {
				row.TotalPaidAmount = row.TotalPaidAmount.Add(payment.AmountPaid)
			} else if !errors.Is(err, repository.ErrPaymentNotFound) {
				return nil, errors.Wrap(err, "failed to load payment")
			}
		}
		row.TotalRemaining = row.TotalBillAmount.Sub(row.TotalPaidAmount)

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalOrders > rows[j].TotalOrders
	})

	return rows, nil
}

// Dashboard builds the operational snapshot. Total revenue counts Paid
// payments on non-cancelled orders only; the today figures count payments of
// any status, which mirrors how the numbers have always been reported.
func (srv *reportService) Dashboard(ctx context.Context) (*usecase.Dashboard, error) {
	userCount, err := srv.users.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	orders, err := srv.orders.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	productCount, err := srv.products.CountListed(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	dash := &usecase.Dashboard{
		Users:        userCount,
		Orders:       len(orders),
		Products:     productCount,
		Revenue:      decimal.Zero,
		TodayRevenue: decimal.Zero,
	}

	cancelled := make(map[int64]bool)
	for _, order := range orders {
		if order.Status == entity.OrderCancelled {
			cancelled[order.ID] = true
		}
	}

	paid, err := srv.payments.FindAllPaid(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list paid payments")
	}
	for _, payment := range paid {
		if !cancelled[payment.OrderID] {
			dash.Revenue = dash.Revenue.Add(payment.AmountPaid)
		}
	}

	today := time.Now().Format(time.DateOnly)

	var todays []*entity.Order
	for _, order := range orders {
		if order.CreatedAt.Format(time.DateOnly) == today {
			todays = append(todays, order)
		}
	}
	dash.TodayOrdersCount = len(todays)

	for _, order := range todays {
		if payment, err := srv.payments.FindByOrder(ctx, order.ID); err == nil {
			dash.TodayRevenue = dash.TodayRevenue.Add(payment.AmountPaid)
		} else if !errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(err, "failed to load payment")
		}
	}

	sort.Slice(todays, func(i, j int) bool {
		if todays[i].CreatedAt.Equal(todays[j].CreatedAt) {
			return todays[i].ID > todays[j].ID
		}

		return todays[i].CreatedAt.After(todays[j].CreatedAt)
	})
	if len(todays) > 10 {
		todays = todays[:10]
	}

	dash.TodayOrders = make([]*usecase.TodayOrder, 0, len(todays))
	for _, order := range todays {
		row := &usecase.TodayOrder{Order: *order}

		if user, err := srv.users.FindByMobile(ctx, order.UserMobile); err == nil {
			row.UserName = user.Name
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load customer")
		}

		items, err := srv.orders.ItemsByOrder(ctx, order.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load order items")
		}
		row.Items = items

		dash.TodayOrders = append(dash.TodayOrders, row)
	}

	counts := make(map[entity.OrderStatus]int)
	for _, order := range orders {
		counts[order.Status]++
	}
	dash.StatusChart = make([]usecase.StatusCount, 0, len(counts))
	for status, count := range counts {
		dash.StatusChart = append(dash.StatusChart, usecase.StatusCount{Status: status, Count: count})
	}
	sort.Slice(dash.StatusChart, func(i, j int) bool {
		return dash.StatusChart[i].Status < dash.StatusChart[j].Status
	})

	return dash, nil
}

// cancelledOrders returns the ids of cancelled orders for join filtering.
func (srv *reportService) cancelledOrders(ctx context.Context) (map[int64]bool, error) {
	orders, err := srv.orders.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	cancelled := make(map[int64]bool)
	for _, order := range orders {
		if order.Status == entity.OrderCancelled {
			cancelled[order.ID] = true
		}
	}

	return cancelled, nil
}

// itemViews joins snapshots with the current product unit, leaving the unit
// empty when the product is gone.
func (srv *reportService) itemViews(ctx context.Context, items []*entity.OrderItem) []*usecase.ItemView {
	views := make([]*usecase.ItemView, 0, len(items))
	for _, item := range items {
		view := &usecase.ItemView{OrderItem: *item}
		if product, err := srv.products.FindByID(ctx, item.ProductID); err == nil {
			view.Unit = product.Unit
		}

		views = append(views, view)
	}

	return views
}
