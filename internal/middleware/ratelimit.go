package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
)

// RateLimiter is a fixed-window per-client-address counter. Windows are kept
// in a bounded LRU so a scan of many addresses cannot grow memory without
// limit.
type RateLimiter struct {
	mu      sync.Mutex
	windows *lru.Cache[string, *rateWindow]
	max     int
	window  time.Duration
	message string
}

type rateWindow struct {
	start time.Time
	count int
}

func NewRateLimiter(max int, window time.Duration, message string) *RateLimiter {
	cache, err := lru.New[string, *rateWindow](10000)
	if err != nil {
		log.Fatalf("Failed to create rate limit cache: %v", err)
	}
	return &RateLimiter{
		windows: cache,
		max:     max,
		window:  window,
		message: message,
	}
}

// Allow records one hit for the address and reports whether it is within the
// current window's budget.
func (l *RateLimiter) Allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows.Get(addr)
	if !ok || now.Sub(w.start) >= l.window {
		l.windows.Add(addr, &rateWindow{start: now, count: 1})
		return true
	}
	w.count++
	return w.count <= l.max
}

// Middleware rejects over-budget requests with 429.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": l.message})
			return
		}
		c.Next()
	}
}

// FollowLimiter returns the limiter applied to follow/unfollow/cancel-request
// actions: 50 per 15 minutes per client address.
func FollowLimiter() *RateLimiter {
	return NewRateLimiter(50, 15*time.Minute,
		"Too many follow requests from this IP, please try again after 15 minutes")
}
