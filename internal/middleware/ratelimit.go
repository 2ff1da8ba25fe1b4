package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/config"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/response"
)

const (
	cleanupInterval = 5 * time.Minute
	staleAfter      = 10 * time.Minute
	redisWindow     = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP. With a redis client it uses
// a fixed one-minute window shared across instances; without one it falls
// back to in-process token buckets.
type RateLimiter struct {
	cfg    config.RateLimiterConfig
	rdb    *redis.Client
	logger *zap.Logger

	mu      sync.Mutex
	clients map[string]*clientLimiter
	stopCh  chan struct{}
}

func NewRateLimiter(cfg config.RateLimiterConfig, rdb *redis.Client, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		cfg:     cfg,
		rdb:     rdb,
		logger:  logger,
		clients: make(map[string]*clientLimiter),
		stopCh:  make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.cfg.Enabled {
			c.Next()
			return
		}

		key := c.ClientIP()
		if !rl.allow(c, key) {
			response.TooManyRequests(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(c *gin.Context, key string) bool {
	if rl.rdb != nil {
		allowed, err := rl.allowRedis(c, key)
		if err == nil {
			return allowed
		}
		// redis outages degrade to the in-process limiter rather than
		// blocking or waving everything through
		rl.logger.Warn("redis rate limit check failed", zap.Error(err))
	}
	return rl.getLimiter(key).Allow()
}

// allowRedis counts requests in a fixed one-minute window.
func (rl *RateLimiter) allowRedis(c *gin.Context, key string) (bool, error) {
	ctx := c.Request.Context()
	window := time.Now().Unix() / int64(redisWindow.Seconds())
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, window)

	count, err := rl.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.rdb.Expire(ctx, redisKey, redisWindow).Err(); err != nil {
			return false, err
		}
	}
	limit := int64(rl.cfg.RPS*redisWindow.Seconds()) + int64(rl.cfg.Burst)
	return count <= limit, nil
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RPS), rl.cfg.Burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, cl := range rl.clients {
				if time.Since(cl.lastSeen) > staleAfter {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
