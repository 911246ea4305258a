package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"inakat_backend/pkg/apperrors"
)

// RateLimiter is a fixed-window in-memory limiter keyed by client IP. It
// protects the login and public submission endpoints from brute force; a
// single-process deploy does not need a shared store for this.
type RateLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	limit    int
	counters map[string]*windowCounter
}

type windowCounter struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		window:   window,
		limit:    limit,
		counters: make(map[string]*windowCounter),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow reports whether the key may proceed within the current window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	counter, ok := rl.counters[key]
	if !ok || now.After(counter.resetAt) {
		rl.counters[key] = &windowCounter{count: 1, resetAt: now.Add(rl.window)}
		return true
	}
	if counter.count >= rl.limit {
		return false
	}
	counter.count++
	return true
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, counter := range rl.counters {
			if now.After(counter.resetAt) {
				delete(rl.counters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware rejects over-limit requests with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apperrors.ErrorResponse{
				Success: false,
				Error: apperrors.New(apperrors.CodeLimitExceeded, "ratelimit",
					"Too many requests. Try again later.", http.StatusTooManyRequests),
			})
			return
		}
		c.Next()
	}
}
