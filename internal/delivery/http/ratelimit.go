package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor tracks the limiter for one client IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter hands out one token bucket per client IP. Each IP gets max
// requests per window, with the full window available as burst so legitimate
// bursty clients are not penalized.
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(window time.Duration, max int) *ipRateLimiter {
	l := &ipRateLimiter{
		visitors: map[string]*visitor{},
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
	}

	go l.cleanup(window)

	return l
}

// allow reports whether the given IP may make a request right now.
func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

// cleanup evicts IPs that have been idle for several windows.
func (l *ipRateLimiter) cleanup(window time.Duration) {
	ticker := time.NewTicker(window)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-3 * window)
		for ip, v := range l.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimitMiddleware limits each client IP to max requests per window,
// answering 429 once the budget is spent.
func RateLimitMiddleware(window time.Duration, max int) gin.HandlerFunc {
	if window <= 0 || max <= 0 {
		// Rate limiting disabled
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := newIPRateLimiter(window, max)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
