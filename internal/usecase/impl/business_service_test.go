package impl

import (
	"context"
	"testing"

	"homeplate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBusinessService(repos *testRepos) *businessService {
	return &businessService{
		profiles: repos.profiles,
		cfg:      testConfig(),
		logger:   testLogger(),
	}
}

func TestBusinessService_CurrentProfile_BeforeFirstSave(t *testing.T) {
	repos := newTestRepos(t)
	service := newBusinessService(repos)

	profile, err := service.CurrentProfile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profile.Name)
	assert.True(t, profile.CartValue.Equal(dec("1000")), "default cart value")
}

func TestBusinessService_SaveProfile_AppendOnly(t *testing.T) {
	repos := newTestRepos(t)
	service := newBusinessService(repos)
	ctx := context.Background()

	first, err := service.SaveProfile(ctx, &usecase.BusinessProfileInput{
		Name:         "Amma's Kitchen",
		ShopImageURL: "https://example.com/shop.png",
		CartValue:    dec("500"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	// A later save without the image URL carries the old one forward.
	second, err := service.SaveProfile(ctx, &usecase.BusinessProfileInput{
		Name:          "Amma's Kitchen",
		ContactNumber: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "https://example.com/shop.png", second.ShopImageURL)
	assert.True(t, second.CartValue.Equal(dec("1000")), "zero cart value falls back to the default")

	current, err := service.CurrentProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "9876543210", current.ContactNumber)
}
