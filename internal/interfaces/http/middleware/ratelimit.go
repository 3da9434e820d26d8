package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/infrastructure/ratelimit"
	"github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

// RateLimitMiddleware limits requests per client IP. A nil limiter disables
// it, and limiter errors let the request through.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	limits  []ratelimit.Limit
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, perMinute int, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		limits:  []ratelimit.Limit{{Requests: perMinute, Window: time.Minute}},
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := scope + ":" + c.ClientIP()
		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.limits...)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}
		if !allowed {
			m.logger.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
