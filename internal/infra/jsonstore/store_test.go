package jsonstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	store, err := Open(path, testLogger())
	require.NoError(t, err)

	return store, path
}

func TestOpen_MissingFileWritesDefaults(t *testing.T) {
	_, path := openTestStore(t)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"admins": [],
		"users": [],
		"products": [],
		"orders": [],
		"order_items": [],
		"payments": [],
		"business_info": []
	}`, string(raw))
}

func TestOpen_CorruptFileRecoversWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := Open(path, testLogger())
	require.NoError(t, err)
	assert.Empty(t, store.data.Users)

	// The broken file stays on disk until the next mutation rewrites it.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))

	users := NewUserRepository(store)
	require.NoError(t, users.Create(context.Background(), &entity.User{MobileNumber: "111"}))

	reloaded, err := Open(path, testLogger())
	require.NoError(t, err)
	require.Len(t, reloaded.data.Users, 1)
	assert.Equal(t, "111", reloaded.data.Users[0].MobileNumber)
}

func TestStore_IDMonotonicity(t *testing.T) {
	store, _ := openTestStore(t)
	products := NewProductRepository(store)
	ctx := context.Background()

	const n = 5
	seen := make(map[int64]bool)
	var maxID int64
	for i := 0; i < n; i++ {
		product := &entity.Product{Name: "P", Price: decimal.NewFromInt(10), Status: entity.ProductAvailable}
		require.NoError(t, products.Create(ctx, product))
		assert.Positive(t, product.ID)
		assert.False(t, seen[product.ID], "id %d assigned twice", product.ID)
		seen[product.ID] = true
		if product.ID > maxID {
			maxID = product.ID
		}
	}
	assert.Equal(t, int64(n), maxID)
}

func TestStore_PersistenceIdempotence(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	users := NewUserRepository(store)
	orders := NewOrderRepository(store)
	require.NoError(t, users.Create(ctx, &entity.User{MobileNumber: "111", Name: "Asha"}))
	require.NoError(t, orders.CreateGraph(ctx,
		&entity.Order{UserMobile: "111", TotalAmount: decimal.NewFromInt(100), Status: entity.OrderPending},
		[]*entity.OrderItem{{ProductID: 1, ProductName: "Ghee", Quantity: 1, UnitPrice: decimal.NewFromInt(100), TotalPrice: decimal.NewFromInt(100)}},
		&entity.Payment{Amount: decimal.NewFromInt(100), Status: entity.PaymentPending, Method: entity.MethodUnset},
	))

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// Load, mutate nothing, close: the file must come out byte-identical.
	reloaded, err := Open(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, reloaded.Close())

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStore_UpdatePartiality(t *testing.T) {
	store, _ := openTestStore(t)
	users := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entity.User{MobileNumber: "111", Name: "Asha", Address: "12 Main Rd"}))

	name := "Asha R"
	updated, err := users.Update(ctx, "111", repository.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Asha R", updated.Name)
	assert.Equal(t, "12 Main Rd", updated.Address, "unspecified fields untouched")
}

func TestStore_CascadeDelete(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	users := NewUserRepository(store)
	orders := NewOrderRepository(store)
	require.NoError(t, users.Create(ctx, &entity.User{MobileNumber: "111"}))

	for i := 0; i < 2; i++ {
		require.NoError(t, orders.CreateGraph(ctx,
			&entity.Order{UserMobile: "111", TotalAmount: decimal.NewFromInt(50), Status: entity.OrderPending},
			[]*entity.OrderItem{{ProductID: 1, ProductName: "Ghee", Quantity: 1, UnitPrice: decimal.NewFromInt(50), TotalPrice: decimal.NewFromInt(50)}},
			&entity.Payment{Amount: decimal.NewFromInt(50), Status: entity.PaymentPending, Method: entity.MethodUnset},
		))
	}

	removed, err := orders.DeleteByUser(ctx, "111")
	require.NoError(t, err)
	assert.True(t, removed)

	assert.Empty(t, store.data.Orders)
	assert.Empty(t, store.data.OrderItems)
	assert.Empty(t, store.data.Payments)

	left, err := orders.FindByUser(ctx, "111")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestStore_CreatedAtStampedOnce(t *testing.T) {
	store, _ := openTestStore(t)
	users := NewUserRepository(store)
	ctx := context.Background()

	user := &entity.User{MobileNumber: "111"}
	require.NoError(t, users.Create(ctx, user))
	stamped := user.CreatedAt
	require.False(t, stamped.IsZero())

	fetched, err := users.FindByMobile(ctx, "111")
	require.NoError(t, err)
	assert.True(t, stamped.Equal(fetched.CreatedAt))
}
