package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitSubject identifies who a limit window belongs to: the
// authenticated user when the auth middleware has run, the client address
// otherwise, so anonymous traffic cannot burn an authenticated user's quota.
func rateLimitSubject(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}

// RateLimitMiddleware enforces a fixed window of limit requests per subject
// and route. Counters live in redis (INCR, EXPIRE on the first hit). The key
// uses the route template rather than the raw path so /videos/:id is one
// bucket, not one per video. When redis is unreachable the request passes
// through: throttling is a protection layer, not part of request correctness.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s:%s:%s", rateLimitSubject(c), c.Request.Method, c.FullPath())

		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			retryAfter := window
			if ttl, err := redisClient.TTL(ctx, key).Result(); err == nil && ttl > 0 {
				retryAfter = ttl
			}
			seconds := int(retryAfter / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
