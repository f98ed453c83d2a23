package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:ip:"

// RedisWindowLimiter counts requests per key in fixed windows. Each window
// has its own counter key that expires shortly after the window ends.
type RedisWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisWindowLimiter(client *redis.Client, limit int, window time.Duration) *RedisWindowLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &RedisWindowLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *RedisWindowLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	windowSecs := int64(l.window / time.Second)
	bucket := now.Unix() / windowSecs
	redisKey := fmt.Sprintf("%s%s:%d", redisKeyPrefix, key, bucket)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window+time.Second).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set rate limit ttl: %w", err)
		}
	}

	windowEnd := time.Unix((bucket+1)*windowSecs, 0)
	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:    count <= int64(l.limit),
		Remaining:  remaining,
		RetryAfter: windowEnd.Sub(now),
	}, nil
}

// Reset clears the counter of the current window for key.
func (l *RedisWindowLimiter) Reset(ctx context.Context, key string) error {
	windowSecs := int64(l.window / time.Second)
	bucket := l.now().Unix() / windowSecs
	return l.client.Del(ctx, fmt.Sprintf("%s%s:%d", redisKeyPrefix, key, bucket)).Err()
}
