package middleware

import (
	"net/http"
	"strconv"

	"homeplate/config"
	"homeplate/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimitMiddleware throttles the login endpoints per client IP. Counters
// live in process memory, which matches the single-instance deployment.
type RateLimitMiddleware struct {
	limiter *limiter.Limiter
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(cfg *config.Config) (*RateLimitMiddleware, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit.Login)
	if err != nil {
		return nil, errors.Wrap(err, "parse login rate limit")
	}

	return &RateLimitMiddleware{
		limiter: limiter.New(memory.NewStore(), rate),
	}, nil
}

// Limit rejects requests beyond the configured rate with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, err := m.limiter.Get(c.Request().Context(), c.RealIP())
		if err != nil {
			return errors.Wrap(err, "rate limit lookup")
		}

		c.Response().Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit.Limit, 10))
		c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(limit.Remaining, 10))

		if limit.Reached {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts, try again later")
		}

		return next(c)
	}
}
