package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teambuh/slamon/pkg/config"
)

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// slidingWindow tracks request timestamps per client within a window.
type slidingWindow struct {
	mu        sync.Mutex
	window    time.Duration
	limit     int
	clients   map[string][]time.Time
	lastSweep time.Time
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		window:  window,
		limit:   limit,
		clients: make(map[string][]time.Time),
	}
}

// Allow records one request for the client and reports whether it stays
// within the limit.
func (w *slidingWindow) Allow(client string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-w.window)
	w.sweepLocked(now, cutoff)

	kept := w.clients[client][:0]
	for _, t := range w.clients[client] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= w.limit {
		w.clients[client] = kept
		return false
	}
	w.clients[client] = append(kept, now)
	return true
}

// sweepLocked drops clients whose every timestamp has aged out, at most
// once per window, so idle addresses do not accumulate forever.
func (w *slidingWindow) sweepLocked(now, cutoff time.Time) {
	if now.Sub(w.lastSweep) < w.window {
		return
	}
	w.lastSweep = now
	for client, times := range w.clients {
		stale := true
		for _, t := range times {
			if t.After(cutoff) {
				stale = false
				break
			}
		}
		if stale {
			delete(w.clients, client)
		}
	}
}

// adminRateLimit bounds admin endpoint usage per client address.
func adminRateLimit(cfg *config.SystemConfig) gin.HandlerFunc {
	limit := cfg.AdminRateLimit
	window := cfg.AdminRateWindow
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}
	limiter := newSlidingWindow(limit, window)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
