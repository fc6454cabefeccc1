package impl

import (
	"context"
	"testing"
	"time"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(repos *testRepos) *orderService {
	return &orderService{
		orders:   repos.orders,
		payments: repos.payments,
		products: repos.products,
		users:    repos.users,
		logger:   testLogger(),
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)
	ctx := context.Background()

	orderID, err := service.PlaceOrder(ctx, "111", &usecase.OrderInput{
		Items: []usecase.CartItem{
			{ID: 1, Name: "Ghee", Quantity: 2, Price: dec("450")},
			{ID: 2, Name: "Pickle", Quantity: 1, Price: dec("120")},
		},
		TotalAmount:  dec("1020"),
		DeliverySlot: "Morning",
		DeliveryDate: "2025-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), orderID)

	order, err := repos.orders.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(dec("1020")))

	items, err := repos.orders.ItemsByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].TotalPrice.Equal(dec("900")))
	assert.True(t, items[1].TotalPrice.Equal(dec("120")))

	payment, err := repos.payments.FindByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, payment.Status)
	assert.Equal(t, entity.MethodUnset, payment.Method)
	assert.True(t, payment.Amount.Equal(dec("1020")))
	assert.True(t, payment.AmountPaid.IsZero())
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)

	_, err := service.PlaceOrder(context.Background(), "111", &usecase.OrderInput{TotalAmount: dec("10")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_UpdateOrder_ReplacesItems(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)
	ctx := context.Background()

	orderID, err := service.PlaceOrder(ctx, "111", &usecase.OrderInput{
		Items:       []usecase.CartItem{{ID: 1, Name: "Ghee", Quantity: 1, Price: dec("450")}},
		TotalAmount: dec("450"),
	})
	require.NoError(t, err)

	require.NoError(t, service.SetStatus(ctx, orderID, entity.OrderPreparing))

	err = service.UpdateOrder(ctx, "111", orderID, &usecase.OrderInput{
		Items: []usecase.CartItem{
			{ID: 2, Name: "Pickle", Quantity: 2, Price: dec("60")},
			{ID: 3, Name: "Papad", Quantity: 1, Price: dec("30")},
		},
		TotalAmount: dec("150"),
	})
	require.NoError(t, err)

	order, err := repos.orders.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(dec("150")))

	items, err := repos.orders.ItemsByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Pickle", items[0].ProductName)
	assert.Equal(t, "Papad", items[1].ProductName)

	payment, err := repos.payments.FindByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(dec("150")), "payment amount synced")
}

func TestOrderService_UpdateOrder_FrozenAfterPreparing(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)
	ctx := context.Background()

	orderID, err := service.PlaceOrder(ctx, "111", &usecase.OrderInput{
		Items:       []usecase.CartItem{{ID: 1, Name: "Ghee", Quantity: 1, Price: dec("450")}},
		TotalAmount: dec("450"),
	})
	require.NoError(t, err)
	require.NoError(t, service.SetStatus(ctx, orderID, entity.OrderDelivered))

	err = service.UpdateOrder(ctx, "111", orderID, &usecase.OrderInput{
		Items:       []usecase.CartItem{{ID: 1, Name: "Ghee", Quantity: 2, Price: dec("450")}},
		TotalAmount: dec("900"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotEditable)
}

func TestOrderService_UpdateOrder_OtherCustomer(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)
	ctx := context.Background()

	orderID, err := service.PlaceOrder(ctx, "111", &usecase.OrderInput{
		Items:       []usecase.CartItem{{ID: 1, Name: "Ghee", Quantity: 1, Price: dec("450")}},
		TotalAmount: dec("450"),
	})
	require.NoError(t, err)

	err = service.UpdateOrder(ctx, "222", orderID, &usecase.OrderInput{
		Items:       []usecase.CartItem{{ID: 1, Name: "Ghee", Quantity: 2, Price: dec("450")}},
		TotalAmount: dec("900"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_OrderDetail(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)
	ctx := context.Background()

	require.NoError(t, repos.users.Create(ctx, &entity.User{MobileNumber: "111", Name: "Asha"}))
	require.NoError(t, repos.products.Create(ctx, &entity.Product{Name: "Ghee", Unit: "g", Price: dec("450"), Status: entity.ProductAvailable}))

	orderID, err := service.PlaceOrder(ctx, "111", &usecase.OrderInput{
		Items:       []usecase.CartItem{{ID: 1, Name: "Ghee", Quantity: 1, Price: dec("450")}},
		TotalAmount: dec("450"),
	})
	require.NoError(t, err)

	detail, err := service.OrderDetail(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, detail.Order.ID)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "g", detail.Items[0].Unit)
	require.NotNil(t, detail.Payment)
	assert.Equal(t, entity.PaymentPending, detail.Payment.Status)
	require.NotNil(t, detail.User)
	assert.Equal(t, "Asha", detail.User.Name)
}

func TestOrderService_OrderDetail_Unknown(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)

	_, err := service.OrderDetail(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_SetStatus(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)
	ctx := context.Background()

	orderID, err := service.PlaceOrder(ctx, "111", &usecase.OrderInput{
		Items:       []usecase.CartItem{{ID: 1, Name: "Ghee", Quantity: 1, Price: dec("450")}},
		TotalAmount: dec("450"),
	})
	require.NoError(t, err)

	require.NoError(t, service.SetStatus(ctx, orderID, entity.OrderAccepted))

	// No transition table: any non-empty status value sticks.
	require.NoError(t, service.SetStatus(ctx, orderID, entity.OrderStatus("On Hold")))
	order, err := repos.orders.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatus("On Hold"), order.Status)

	err = service.SetStatus(ctx, orderID, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStatusRequired)
}

func TestOrderService_ListAll(t *testing.T) {
	repos := newTestRepos(t)
	service := newOrderService(repos)
	ctx := context.Background()

	require.NoError(t, repos.users.Create(ctx, &entity.User{MobileNumber: "111", Name: "Asha", Address: "12 Main Rd"}))

	older := time.Now().Add(-time.Hour)
	require.NoError(t, repos.orders.CreateGraph(ctx,
		&entity.Order{UserMobile: "111", TotalAmount: dec("100"), Status: entity.OrderDelivered, CreatedAt: older},
		nil,
		&entity.Payment{Amount: dec("100"), AmountPaid: dec("100"), Status: entity.PaymentPaid, Method: entity.MethodCash},
	))
	require.NoError(t, repos.orders.CreateGraph(ctx,
		&entity.Order{UserMobile: "222", TotalAmount: dec("50"), Status: entity.OrderPending},
		nil, nil,
	))

	rows, err := service.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Most recent first; unknown customer and missing payment fall back to
	// empty name and Pending/0.
	assert.Equal(t, "222", rows[0].UserMobile)
	assert.Empty(t, rows[0].UserName)
	assert.Equal(t, entity.PaymentPending, rows[0].PaymentStatus)
	assert.True(t, rows[0].AmountPaid.IsZero())

	assert.Equal(t, "111", rows[1].UserMobile)
	assert.Equal(t, "Asha", rows[1].UserName)
	assert.Equal(t, "12 Main Rd", rows[1].UserAddress)
	assert.Equal(t, entity.PaymentPaid, rows[1].PaymentStatus)
	assert.True(t, rows[1].AmountPaid.Equal(dec("100")))
}
