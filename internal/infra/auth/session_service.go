package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"homeplate/config"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"
)

const defaultSessionTTL = 24 * time.Hour

// ErrInvalidSession is returned for tokens that fail parsing, signature
// verification or expiry checks.
var ErrInvalidSession = errors.New("invalid or expired session")

// sessionService is a concrete implementation of the SessionService interface
// using signed JWTs. The token travels in an HttpOnly cookie, which gives the
// cookie-session semantics of the API with no server-side session state.
type sessionService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(cfg *config.Config) (service.SessionService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &sessionService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    ttl,
	}, nil
}

// IssueAdmin creates a token for an admin session.
func (s *sessionService) IssueAdmin(adminID int64) (string, error) {
	return s.sign(string(service.RoleAdmin), strconv.FormatInt(adminID, 10))
}

// IssueUser creates a token for a customer session keyed by mobile number.
func (s *sessionService) IssueUser(mobile string) (string, error) {
	return s.sign(string(service.RoleUser), mobile)
}

// Validate parses and verifies a token string.
func (s *sessionService) Validate(tokenString string) (*service.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	role, _ := claims["role"].(string)
	subject, _ := claims["sub"].(string)

	switch service.Role(role) {
	case service.RoleAdmin:
		adminID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil {
			return nil, ErrInvalidSession
		}

		return &service.Session{Role: service.RoleAdmin, AdminID: adminID}, nil
	case service.RoleUser:
		if subject == "" {
			return nil, ErrInvalidSession
		}

		return &service.Session{Role: service.RoleUser, Mobile: subject}, nil
	default:
		return nil, ErrInvalidSession
	}
}

// TTL returns the configured session lifetime, used for the cookie Max-Age.
func (s *sessionService) TTL() time.Duration {
	return s.ttl
}

func (s *sessionService) sign(role, subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
		"jti":  uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}
