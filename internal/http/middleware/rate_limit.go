package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iwansal64/report-web-api/internal/utils"
)

type RateLimiter struct {
	limit int
	allow map[string]struct{}
	mu    sync.Mutex
	items map[string]*rateEntry
}

type rateEntry struct {
	count int
	reset time.Time
}

// NewRateLimiter caps requests per client IP per minute. Allow-listed
// addresses (localhost by default) are never limited.
func NewRateLimiter(limit int, allowlist []string) *RateLimiter {
	allow := make(map[string]struct{}, len(allowlist))
	for _, ip := range allowlist {
		allow[ip] = struct{}{}
	}
	return &RateLimiter{
		limit: limit,
		allow: allow,
		items: make(map[string]*rateEntry),
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if _, ok := rl.allow[ip]; ok {
			c.Next()
			return
		}

		now := time.Now()

		rl.mu.Lock()
		entry, ok := rl.items[ip]
		if !ok || now.After(entry.reset) {
			entry = &rateEntry{count: 0, reset: now.Add(time.Minute)}
			rl.items[ip] = entry
		}
		entry.count++
		count := entry.count
		reset := entry.reset
		rl.mu.Unlock()

		if count > rl.limit {
			retry := int(time.Until(reset).Seconds())
			c.Header("Retry-After", fmt.Sprintf("%d", retry))
			utils.RespondError(c, utils.NewAppError(http.StatusTooManyRequests, "RATE_LIMIT", "too many requests", nil))
			c.Abort()
			return
		}

		c.Next()
	}
}
