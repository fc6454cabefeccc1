package impl

import (
	"context"
	"testing"

	"homeplate/internal/domain/entity"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService(repos *testRepos) *accountService {
	return &accountService{
		users:  repos.users,
		orders: repos.orders,
		logger: testLogger(),
	}
}

func TestAccountService_Login_RegistersUnknownMobile(t *testing.T) {
	repos := newTestRepos(t)
	service := newAccountService(repos)
	ctx := context.Background()

	out, err := service.Login(ctx, &usecase.UserLoginInput{Mobile: "9876543210"})
	require.NoError(t, err)
	assert.True(t, out.IsNew)
	assert.Equal(t, "9876543210", out.User.MobileNumber)
	assert.False(t, out.User.CreatedAt.IsZero())

	again, err := service.Login(ctx, &usecase.UserLoginInput{Mobile: "9876543210"})
	require.NoError(t, err)
	assert.False(t, again.IsNew)
	assert.Equal(t, out.User.MobileNumber, again.User.MobileNumber)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	repos := newTestRepos(t)
	service := newAccountService(repos)
	ctx := context.Background()

	_, err := service.Login(ctx, &usecase.UserLoginInput{Mobile: "111"})
	require.NoError(t, err)

	user, err := service.UpdateProfile(ctx, "111", &usecase.ProfileUpdateInput{
		Name:      "Asha",
		AltMobile: "222",
		Address:   "12 Main Rd",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "222", user.AltMobileNumber)
	assert.Equal(t, "12 Main Rd", user.Address)

	fetched, err := service.Profile(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Asha", fetched.Name)
}

func TestAccountService_UpdateProfile_NilInput(t *testing.T) {
	repos := newTestRepos(t)
	service := newAccountService(repos)
	ctx := context.Background()

	_, err := service.Login(ctx, &usecase.UserLoginInput{Mobile: "111"})
	require.NoError(t, err)

	// Empty request bodies reach the usecase as a nil input.
	_, err = service.UpdateProfile(ctx, "111", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Profile_Unknown(t *testing.T) {
	repos := newTestRepos(t)
	service := newAccountService(repos)

	_, err := service.Profile(context.Background(), "000")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_Erase_Cascades(t *testing.T) {
	repos := newTestRepos(t)
	service := newAccountService(repos)
	ctx := context.Background()

	_, err := service.Login(ctx, &usecase.UserLoginInput{Mobile: "111"})
	require.NoError(t, err)

	for range 2 {
		require.NoError(t, repos.orders.CreateGraph(ctx,
			&entity.Order{UserMobile: "111", TotalAmount: dec("50"), Status: entity.OrderPending},
			[]*entity.OrderItem{{ProductID: 1, ProductName: "Ghee", Quantity: 1, UnitPrice: dec("50"), TotalPrice: dec("50")}},
			&entity.Payment{Amount: dec("50"), Status: entity.PaymentPending, Method: entity.MethodUnset},
		))
	}

	require.NoError(t, service.Erase(ctx, "111"))

	_, err = service.Profile(ctx, "111")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	orders, err := repos.orders.FindByUser(ctx, "111")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestAccountService_Erase_Unknown(t *testing.T) {
	repos := newTestRepos(t)
	service := newAccountService(repos)

	err := service.Erase(context.Background(), "000")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
