package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/repodosen/repositori-backend/internal/response"
)

// RateLimiter is a fixed-window per-IP limiter backed by Redis INCR+EXPIRE.
// The login endpoint is the only brute-forceable surface (the identity check
// carries no secret), so it gets a counter per client IP.
type RateLimiter struct {
	rdb      *redis.Client
	limit    int
	window   time.Duration
	keyScope string
}

// NewRateLimiter creates a RateLimiter (e.g., 30 requests per minute).
func NewRateLimiter(rdb *redis.Client, keyScope string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:      rdb,
		limit:    limit,
		window:   window,
		keyScope: keyScope,
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
// Redis failures fail open: a broken limiter must not take logins down.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", rl.keyScope, c.ClientIP())
		ctx := c.Request.Context()

		count, err := rl.rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rl.rdb.Expire(ctx, key, rl.window)
		}

		if count > int64(rl.limit) {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}

		c.Next()
	}
}
