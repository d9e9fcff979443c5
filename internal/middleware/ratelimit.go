package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgResponse "conversational-task-management/pkg/response"
)

// RateLimiter caps requests per caller. Limiters live in an expiring LRU
// so idle callers are evicted instead of accumulating forever.
type RateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing requestsPerMin per caller key.
func NewRateLimiter(requestsPerMin int) *RateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// Allow reports whether the caller identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// Middleware returns a gin middleware keyed on X-User-ID, falling back to
// the client IP for anonymous requests.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-User-ID")
		if key == "" {
			key = c.ClientIP()
		}
		if !rl.Allow(key) {
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
