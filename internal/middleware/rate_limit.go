package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"

	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client address.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

func NewIPRateLimiter(every rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    every,
		burst:    burst,
	}
}

func (l *IPRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(l.every, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

// Middleware answers 429 once a client exhausts its bucket.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.get(ip).Allow() {
			common.RespondError(w, time.Now(), nil, constants.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
