package impl

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"homeplate/config"
	"homeplate/internal/domain/repository"
	"homeplate/internal/infra/jsonstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testRepos wires every repository onto one throwaway store so service tests
// exercise the real persistence path end to end.
type testRepos struct {
	store    *jsonstore.Store
	admins   repository.AdminRepository
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	profiles repository.BusinessRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()

	store, err := jsonstore.Open(filepath.Join(t.TempDir(), "data.json"), testLogger())
	require.NoError(t, err)

	return &testRepos{
		store:    store,
		admins:   jsonstore.NewAdminRepository(store),
		users:    jsonstore.NewUserRepository(store),
		products: jsonstore.NewProductRepository(store),
		orders:   jsonstore.NewOrderRepository(store),
		payments: jsonstore.NewPaymentRepository(store),
		profiles: jsonstore.NewBusinessRepository(store),
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    4,
			AdminUsername: "ADMIN",
			AdminPassword: "Admin143",
		},
		Defaults: &config.DefaultsConfig{
			ProductImageURL: "https://example.com/placeholder.png",
			CartValue:       decimal.NewFromInt(1000),
		},
		UPI: &config.UPIConfig{
			PayeeVPA:  "shop@upi",
			PayeeName: "Home Plate",
		},
	}

	return cfg
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
