package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"food-delivery-api/internal/interface/api/rest/respond"
)

const maxTrackedClients = 10000

// LoginLimiter throttles login attempts per client IP.
// The client IP comes from gin's ClientIP, so forwarded headers count only
// when the engine trusts the peer (see rest.NewEngine).
type LoginLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*rate.Limiter
	overflow   *rate.Limiter
	maxClients int
	rate       rate.Limit
	burst      int
	logger     *zap.Logger
}

func NewLoginLimiter(perSecond float64, burst int, logger *zap.Logger) *LoginLimiter {
	return &LoginLimiter{
		limiters:   make(map[string]*rate.Limiter),
		overflow:   rate.NewLimiter(rate.Limit(perSecond), burst),
		maxClients: maxTrackedClients,
		rate:       rate.Limit(perSecond),
		burst:      burst,
		logger:     logger,
	}
}

// limiter never forgets a bucket that still holds a penalty: only buckets
// refilled to burst are evicted. When none can go, unknown clients share
// the overflow bucket.
func (l *LoginLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[key]; ok {
		return lim
	}
	if len(l.limiters) >= l.maxClients {
		l.evictIdle()
		if len(l.limiters) >= l.maxClients {
			return l.overflow
		}
	}

	lim := rate.NewLimiter(l.rate, l.burst)
	l.limiters[key] = lim

	return lim
}

func (l *LoginLimiter) evictIdle() {
	for k, lim := range l.limiters {
		if lim.Tokens() >= float64(l.burst) {
			delete(l.limiters, k)
		}
	}
}

func (l *LoginLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.limiter(ip).Allow() {
			l.logger.Warn("login rate limit exceeded", zap.String("client_ip", ip))
			respond.Abort(c, http.StatusTooManyRequests, "too many login attempts, try again later")
			return
		}
		c.Next()
	}
}
