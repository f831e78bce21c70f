package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"academy_backend/internal/api"
)

// pruneThreshold bounds the client map; expired windows are swept once the
// map grows past it.
const pruneThreshold = 4096

// RateLimiter is a process-wide fixed-window request counter keyed by client
// address. It rejects with 429 rather than queueing. Each route tier gets
// its own instance with its own window and threshold.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	message string
	clients map[string]*clientWindow
}

type clientWindow struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per client per
// window, responding with message when exceeded.
func NewRateLimiter(limit int, window time.Duration, message string) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		message: message,
		clients: make(map[string]*clientWindow),
	}
}

// Middleware returns the gin handler enforcing this limiter.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{
				Success:   false,
				Message:   rl.message,
				RequestID: RequestIDFrom(c),
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(client string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cw, ok := rl.clients[client]
	if !ok || now.Sub(cw.windowStart) >= rl.window {
		if len(rl.clients) >= pruneThreshold {
			rl.prune(now)
		}
		rl.clients[client] = &clientWindow{count: 1, windowStart: now}
		return true
	}

	cw.count++
	return cw.count <= rl.limit
}

// prune drops clients whose window has elapsed. Caller holds the lock.
func (rl *RateLimiter) prune(now time.Time) {
	for client, cw := range rl.clients {
		if now.Sub(cw.windowStart) >= rl.window {
			delete(rl.clients, client)
		}
	}
}
