package ratelim

import (
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// RateLimiter throttles form posts and uploads per client IP.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows 10 requests per minute with a burst of 3,
// enough for a human filling in forms and retrying.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Every(6 * time.Second),
		burst:    3,
	}
}

// Get or create a rate limiter for an IP
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.visitors[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.visitors[ip] = limiter

	// Clean up old IPs after 10 minutes
	go func() {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		delete(rl.visitors, ip)
		rl.mu.Unlock()
	}()

	return limiter
}

// Limit wraps a handler and rejects callers that exceed their budget.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		limiter := rl.getLimiter(r.RemoteAddr)
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r, ps)
	}
}
