package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, err error)
}

type RateLimiterConfig struct {
	RequestsPerWindow int
	WindowDuration    time.Duration
	KeyPrefix         string
}

// fixed window: the first hit sets the counter with the window as TTL.
var fixedWindowScript = redis.NewScript(`
local key = KEYS[1]
local expiry = tonumber(ARGV[1])
local limit = tonumber(ARGV[2])

local current = redis.call('GET', key)
if current == false then
	redis.call('SET', key, 1, 'PX', expiry)
	return {1, limit - 1}
end

local count = tonumber(current)
if count >= limit then
	return {count + 1, 0}
end

local new_count = redis.call('INCR', key)
return {new_count, limit - new_count}
`)

type redisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &redisRateLimiter{client: client}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	res, err := fixedWindowScript.Run(ctx, l.client, []string{"rate:fw:" + key}, window.Milliseconds(), limit).Int64Slice()
	if err != nil {
		return false, 0, err
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("unexpected rate limit reply %v", res)
	}
	current, remaining := res[0], res[1]
	return current <= int64(limit), int(remaining), nil
}

// EndpointRateLimitMiddleware limits requests per client IP. Redis failures let
// the request through.
func EndpointRateLimitMiddleware(limiter RateLimiter, cfg RateLimiterConfig, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s:ip:%s", cfg.KeyPrefix, name, c.ClientIP())
		allowed, remaining, err := limiter.Allow(c.Request.Context(), key, cfg.RequestsPerWindow, cfg.WindowDuration)
		if err != nil {
			log.Warn().Err(err).Str("limiter", name).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			log.Warn().Str("limiter", name).Str("ip", c.ClientIP()).Str("path", c.Request.URL.Path).Msg("rate limit exceeded")
			c.Header("Retry-After", strconv.Itoa(int(cfg.WindowDuration.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests",
				"error":   fmt.Sprintf("Too many requests, please try again in %v", cfg.WindowDuration),
			})
			return
		}

		c.Next()
	}
}
