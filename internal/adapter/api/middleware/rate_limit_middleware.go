package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"gyomutime/pkg/errors"
	"gyomutime/pkg/logger"
	"gyomutime/pkg/response"
)

// RateLimiter applies a fixed-window quota per client address. It is
// process-local and best-effort: a throttle, not a security boundary.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	max      int
	window   time.Duration
}

type visitor struct {
	count     int
	resetTime time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		max:      max,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// Limit runs before token verification so throttled requests never pay
// identity-verification cost.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.allow(c.RealIP()) {
			logger.Warn("rate limit exceeded for %s", c.RealIP())
			return response.Error(c, errors.RateLimitExceeded("Too many requests. Please try again later."))
		}
		return next(c)
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[ip]
	if !ok || now.After(v.resetTime) {
		rl.visitors[ip] = &visitor{count: 1, resetTime: now.Add(rl.window)}
		return true
	}
	if v.count >= rl.max {
		return false
	}
	v.count++
	return true
}

func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(rl.window * 10)

		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.After(v.resetTime) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
