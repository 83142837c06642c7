package utils

import (
	"net"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type rateLimitedClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterMiddleware Limits requests per client IP with a token bucket.
// Clients that have been idle for more than three minutes are evicted once a minute.
func RateLimiterMiddleware(requestsPerSecond float64, burst int) gin.HandlerFunc {
	var (
		mutex   sync.Mutex
		clients = make(map[string]*rateLimitedClient)
	)

	go func() {
		for {
			time.Sleep(time.Minute)

			mutex.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mutex.Unlock()
		}
	}()

	return func(ctx *gin.Context) {
		ip, _, err := net.SplitHostPort(ctx.Request.RemoteAddr)
		if err != nil {
			ip = ctx.Request.RemoteAddr
		}

		mutex.Lock()
		client, ok := clients[ip]
		if !ok {
			client = &rateLimitedClient{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
			clients[ip] = client
		}
		client.lastSeen = time.Now()

		if !client.limiter.Allow() {
			mutex.Unlock()
			ctx.JSON(CreateErrorResponse(ErrRateLimitExceeded))
			ctx.Abort()
			return
		}
		mutex.Unlock()

		ctx.Next()
	}
}
