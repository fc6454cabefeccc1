package impl

import (
	"context"
	"testing"

	"homeplate/config"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/infra/auth"
	"homeplate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(repos *testRepos) *adminService {
	cfg := testConfig()

	return &adminService{
		admins: repos.admins,
		hasher: auth.NewBcryptHasher(cfg),
		cfg:    cfg,
		logger: testLogger(),
	}
}

func TestAdminService_EnsureSeededAndLogin(t *testing.T) {
	repos := newTestRepos(t)
	service := newAdminService(repos)
	ctx := context.Background()

	require.NoError(t, service.EnsureSeeded(ctx))

	// Seeding twice must not create a second account.
	require.NoError(t, service.EnsureSeeded(ctx))

	admin, err := service.Login(ctx, &usecase.AdminLoginInput{Username: "ADMIN", Password: "Admin143"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), admin.ID)
	assert.Equal(t, "ADMIN", admin.Username)
	assert.NotEqual(t, "Admin143", admin.PasswordHash)
}

func TestAdminService_EnsureSeeded_MissingAuthConfig(t *testing.T) {
	repos := newTestRepos(t)
	service := newAdminService(repos)
	service.cfg = &config.Config{}

	err := service.EnsureSeeded(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	repos := newTestRepos(t)
	service := newAdminService(repos)
	ctx := context.Background()

	require.NoError(t, service.EnsureSeeded(ctx))

	_, err := service.Login(ctx, &usecase.AdminLoginInput{Username: "ADMIN", Password: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_UnknownUsername(t *testing.T) {
	repos := newTestRepos(t)
	service := newAdminService(repos)

	_, err := service.Login(context.Background(), &usecase.AdminLoginInput{Username: "ghost", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
