package middleware

import (
	"net/http"
	"sync"
	"time"

	"mentorify/config"
	"mentorify/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiters   = make(map[string]*clientLimiter)
	limitersMu sync.Mutex
)

// RateLimiter throttles requests per client IP. The per-minute limit comes
// from configuration; idle limiters are evicted by a background sweep.
func RateLimiter() gin.HandlerFunc {
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 60
	}
	limit := rate.Every(time.Minute / time.Duration(perMin))

	go cleanupLimiters()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limitersMu.Lock()
		entry, ok := limiters[ip]
		if !ok {
			entry = &clientLimiter{limiter: rate.NewLimiter(limit, perMin)}
			limiters[ip] = entry
		}
		entry.lastSeen = time.Now()
		limitersMu.Unlock()

		if !entry.limiter.Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

func cleanupLimiters() {
	for range time.Tick(5 * time.Minute) {
		limitersMu.Lock()
		for ip, entry := range limiters {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(limiters, ip)
			}
		}
		limitersMu.Unlock()
	}
}
