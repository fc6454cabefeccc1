package auth

import (
	"testing"
	"time"

	"homeplate/config"
	"homeplate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret
	cfg.Auth = &config.AuthConfig{SessionTTL: time.Hour}

	return cfg
}

func TestSessionService_AdminRoundTrip(t *testing.T) {
	svc, err := NewSessionService(testConfig("unit-test-secret"))
	require.NoError(t, err)

	token, err := svc.IssueAdmin(7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, service.RoleAdmin, session.Role)
	assert.Equal(t, int64(7), session.AdminID)
	assert.Empty(t, session.Mobile)
}

func TestSessionService_UserRoundTrip(t *testing.T) {
	svc, err := NewSessionService(testConfig("unit-test-secret"))
	require.NoError(t, err)

	token, err := svc.IssueUser("9876543210")
	require.NoError(t, err)

	session, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, service.RoleUser, session.Role)
	assert.Equal(t, "9876543210", session.Mobile)
	assert.Zero(t, session.AdminID)
}

func TestSessionService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewSessionService(testConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewSessionService(testConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.IssueUser("9876543210")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_RejectsGarbage(t *testing.T) {
	svc, err := NewSessionService(testConfig("unit-test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestNewSessionService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewSessionService(cfg)
	assert.Error(t, err)
}
