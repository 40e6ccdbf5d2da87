package middleware

import (
	"net/http"
	"sync"
	"time"

	"frenotaller/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// limiter is a per-IP sliding-window counter. One instance per route class so
// the login window cannot be drained by regular traffic.
type limiter struct {
	limit   int
	window  time.Duration
	mensaje string

	mu      sync.Mutex
	entries map[string]*limiterEntry
}

type limiterEntry struct {
	count     int
	windowEnd time.Time
}

func newLimiter(limit int, window time.Duration, mensaje string) *limiter {
	l := &limiter{
		limit:   limit,
		window:  window,
		mensaje: mensaje,
		entries: make(map[string]*limiterEntry),
	}
	go l.purge()
	return l
}

func (l *limiter) handle(c *gin.Context) {
	ip := c.ClientIP()
	now := time.Now()

	l.mu.Lock()
	entry, ok := l.entries[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &limiterEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = entry
	}
	entry.count++
	exceeded := entry.count > l.limit
	retryAt := entry.windowEnd
	l.mu.Unlock()

	if exceeded {
		c.Header("Retry-After", retryAt.Format(time.RFC1123))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
		return
	}
	c.Next()
}

// purge periodically drops expired windows so IPs that never return do not
// accumulate forever.
func (l *limiter) purge() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, entry := range l.entries {
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
		}
		remaining := len(l.entries)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter entries purged")
		}
	}
}

// RateLimiter returns a general-purpose per-IP limiter for the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.")
	return l.handle
}

// LoginRateLimiter limits login attempts to 20 per minute per IP, slowing
// credential stuffing beyond what bcrypt already costs.
func LoginRateLimiter() gin.HandlerFunc {
	l := newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.")
	return l.handle
}
