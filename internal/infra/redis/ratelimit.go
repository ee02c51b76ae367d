package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:"

// RateLimiter 固定窗口计数限流
type RateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewRateLimiter(client *redis.Client, max int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, max: max, window: window}
}

// Allow 对 key 计数一次，返回是否放行以及窗口剩余时间
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	fullKey := rateLimitPrefix + key

	count, err := l.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return false, 0, err
	}

	retryAfter, err := l.client.PTTL(ctx, fullKey).Result()
	if err != nil {
		return false, 0, err
	}
	// 新窗口或遗留的无过期键都需要补上过期时间
	if count == 1 || retryAfter < 0 {
		if err := l.client.PExpire(ctx, fullKey, l.window).Err(); err != nil {
			return false, 0, err
		}
		retryAfter = l.window
	}

	return count <= int64(l.max), retryAfter, nil
}
