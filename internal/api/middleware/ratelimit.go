package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/workshop-app/workshop-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// Defaults applied when RateLimiterConfig leaves a field at zero.
const (
	DefaultRatePerSecond   = 1.0
	DefaultBurst           = 5
	DefaultCleanupInterval = time.Minute
	DefaultClientMaxIdle   = 3 * time.Minute
)

// RateLimiterConfig configures the per-client rate limiter.
type RateLimiterConfig struct {
	// RatePerSecond is the sustained number of requests allowed per client.
	RatePerSecond float64

	// Burst is the number of requests a client may make at once.
	Burst int

	// CleanupInterval is how often idle clients are evicted.
	CleanupInterval time.Duration

	// ClientMaxIdle is how long a client may go unseen before eviction.
	ClientMaxIdle time.Duration
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP with token buckets. It is safe
// for concurrent use. A background goroutine evicts idle clients; call Stop
// to end it.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	limit    rate.Limit
	burst    int
	maxIdle  time.Duration
	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRateLimiter creates a rate limiter and starts its cleanup goroutine.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = DefaultRatePerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}
	if cfg.ClientMaxIdle <= 0 {
		cfg.ClientMaxIdle = DefaultClientMaxIdle
	}

	rl := &RateLimiter{
		clients:  make(map[string]*client),
		limit:    rate.Limit(cfg.RatePerSecond),
		burst:    cfg.Burst,
		maxIdle:  cfg.ClientMaxIdle,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	rl.wg.Add(1)
	go rl.cleanupLoop(cfg.CleanupInterval)

	return rl
}

// Allow reports whether a request from key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// ClientCount returns the number of tracked clients.
func (rl *RateLimiter) ClientCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Cleanup evicts clients not seen within the idle window.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := rl.now().Add(-rl.maxIdle)
	for key, c := range rl.clients {
		if c.lastSeen.Before(threshold) {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	defer rl.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopChan:
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}

// Stop ends the cleanup goroutine and waits for it to exit. It is safe to
// call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopChan) })
	rl.wg.Wait()
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests, "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) retryAfterSeconds() int {
	secs := int(1 / float64(rl.limit))
	if secs < 1 {
		return 1
	}
	return secs
}

// clientIP returns the host part of RemoteAddr. Forwarding headers only
// affect it when the router is configured to trust them.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
