package middleware

import (
	"net/http"
	"sync"
	"time"

	"hello-service/logger"
	"hello-service/metrics"
	"hello-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.RWMutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst. Visitors idle for longer than ttl are forgotten.
func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
	}
}

// Allow reports whether a request from ip may proceed now.
func (l *RateLimiter) Allow(ip string) bool {
	return l.visitorFor(ip).Allow()
}

func (l *RateLimiter) visitorFor(ip string) *rate.Limiter {
	now := time.Now()

	l.mu.RLock()
	v, exists := l.visitors[ip]
	l.mu.RUnlock()
	if exists {
		l.mu.Lock()
		v.lastSeen = now
		l.mu.Unlock()
		return v.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if v, exists = l.visitors[ip]; exists {
		v.lastSeen = now
		return v.limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.visitors[ip] = &visitor{limiter: limiter, lastSeen: now}
	return limiter
}

// Cleanup drops visitors idle for longer than the ttl and returns how many
// were removed.
func (l *RateLimiter) Cleanup(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked visitors.
func (l *RateLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.visitors)
}

// Run calls Cleanup every interval until done is closed.
func (l *RateLimiter) Run(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			if n := l.Cleanup(now); n > 0 {
				logger.Logger.Debug("rate limiter visitors expired", zap.Int("removed", n))
			}
		}
	}
}

// RateLimitMiddleware rejects clients over their budget with 429.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			metrics.RateLimited.Inc()
			logger.Logger.Warn("rate limit exceeded",
				zap.String("client_ip", ip),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				services.Detail(http.StatusText(http.StatusTooManyRequests)))
			return
		}
		c.Next()
	}
}
