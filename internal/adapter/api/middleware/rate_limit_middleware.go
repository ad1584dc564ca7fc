package middleware

import (
	"vialidades/internal/infrastructure/ratelimit"
	"vialidades/pkg/errors"
	"vialidades/pkg/logger"
	"vialidades/pkg/response"

	"github.com/labstack/echo/v4"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the named action per authenticated user. Must run
// after Authenticate so the uid is available.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				// Fall back to the client address for unauthenticated routes
				uid = c.RealIP()
			}

			if allowed, wait := m.limiter.Allow(uid, action); !allowed {
				logger.Warn("Rate limit hit: user=%s action=%s retry in %v", uid, action, wait)
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded, try again later"))
			}

			return next(c)
		}
	}
}
