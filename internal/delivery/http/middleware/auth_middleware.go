// Package middleware contains the HTTP middlewares for the delivery layer.
package middleware

import (
	domainerrors "homeplate/internal/domain/errors"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"

	"github.com/labstack/echo/v4"
)

// SessionCookie is the name of the HttpOnly cookie carrying the session token.
const SessionCookie = "session"

// sessionKey is the echo context key holding the validated session.
const sessionKey = "session"

// AuthMiddleware validates the session cookie and enforces role requirements.
type AuthMiddleware struct {
	sessions service.SessionService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAdmin admits only requests carrying a valid admin session.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.authenticate(c)
		if err != nil || session.Role != service.RoleAdmin {
			return errors.WithStack(domainerrors.ErrAdminRequired)
		}
		c.Set(sessionKey, session)

		return next(c)
	}
}

// RequireUser admits only requests carrying a valid customer session.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.authenticate(c)
		if err != nil || session.Role != service.RoleUser {
			return errors.WithStack(domainerrors.ErrUserLoginRequired)
		}
		c.Set(sessionKey, session)

		return next(c)
	}
}

// RequireSession admits any valid session; handlers decide further based on
// the role, e.g. the order detail view admits the owner or any admin.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.authenticate(c)
		if err != nil {
			return errors.WithStack(domainerrors.ErrUserLoginRequired)
		}
		c.Set(sessionKey, session)

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context) (*service.Session, error) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, errors.New("missing session cookie")
	}

	session, err := m.sessions.Validate(cookie.Value)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session cookie")
	}

	return session, nil
}

// SessionFrom returns the session stored by one of the Require middlewares,
// or nil when the route ran without them.
func SessionFrom(c echo.Context) *service.Session {
	session, _ := c.Get(sessionKey).(*service.Session)

	return session
}
