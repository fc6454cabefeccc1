package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"homeplate/config"
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/service"
	"homeplate/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessions(t *testing.T) service.SessionService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "test-secret"

	sessions, err := auth.NewSessionService(cfg)
	require.NoError(t, err)

	return sessions
}

func newTestContext(t *testing.T, token string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	sessions := newTestSessions(t)
	m := NewAuthMiddleware(sessions)

	token, err := sessions.IssueAdmin(7)
	require.NoError(t, err)

	c := newTestContext(t, token)
	require.NoError(t, m.RequireAdmin(okHandler)(c))

	session := SessionFrom(c)
	require.NotNil(t, session)
	assert.Equal(t, service.RoleAdmin, session.Role)
	assert.Equal(t, int64(7), session.AdminID)
}

func TestAuthMiddleware_RequireAdmin_RejectsUserSession(t *testing.T) {
	sessions := newTestSessions(t)
	m := NewAuthMiddleware(sessions)

	token, err := sessions.IssueUser("9876543210")
	require.NoError(t, err)

	err = m.RequireAdmin(okHandler)(newTestContext(t, token))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestAuthMiddleware_RequireUser(t *testing.T) {
	sessions := newTestSessions(t)
	m := NewAuthMiddleware(sessions)

	token, err := sessions.IssueUser("9876543210")
	require.NoError(t, err)

	c := newTestContext(t, token)
	require.NoError(t, m.RequireUser(okHandler)(c))

	session := SessionFrom(c)
	require.NotNil(t, session)
	assert.Equal(t, "9876543210", session.Mobile)
}

func TestAuthMiddleware_RequireUser_MissingCookie(t *testing.T) {
	sessions := newTestSessions(t)
	m := NewAuthMiddleware(sessions)

	err := m.RequireUser(okHandler)(newTestContext(t, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserLoginRequired)
}

func TestAuthMiddleware_RequireSession_GarbageToken(t *testing.T) {
	sessions := newTestSessions(t)
	m := NewAuthMiddleware(sessions)

	err := m.RequireSession(okHandler)(newTestContext(t, "not-a-token"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserLoginRequired)
}
