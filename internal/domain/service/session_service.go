package service

import "time"

// Role distinguishes the two kinds of authenticated sessions.
type Role string

// Session roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Session is the validated content of a session cookie. Exactly one of
// AdminID / Mobile is meaningful depending on Role.
type Session struct {
	Role    Role
	AdminID int64
	Mobile  string
}

// SessionService mints and validates the signed tokens carried in the
// session cookie. It abstracts the token format from handlers and middleware.
type SessionService interface {
	// IssueAdmin creates a token for an admin session.
	IssueAdmin(adminID int64) (string, error)

	// IssueUser creates a token for a customer session keyed by mobile number.
	IssueUser(mobile string) (string, error)

	// Validate parses and verifies a token string.
	Validate(token string) (*Session, error)

	// TTL returns the configured session lifetime, used for the cookie Max-Age.
	TTL() time.Duration
}
