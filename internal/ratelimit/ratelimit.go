package ratelimit

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	redisapp "dinas_portal/internal/storage/redis"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request for key may pass.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter keeps a token bucket per key. Buckets idle for longer than ttl
// are dropped by the cache janitor, so the number of tracked keys stays bounded
// by recent traffic.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets *cache.Cache
	rps     rate.Limit
	burst   int
	ttl     time.Duration
}

func NewMemoryLimiter(rps float64, burst int, ttl time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		buckets: cache.New(ttl, ttl/2),
		rps:     rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.bucket(key).Allow(), nil
}

func (l *MemoryLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.buckets.Get(key); ok {
		lim := v.(*rate.Limiter)
		// refresh expiry so active clients keep their bucket
		l.buckets.Set(key, lim, l.ttl)
		return lim
	}

	lim := rate.NewLimiter(l.rps, l.burst)
	l.buckets.Set(key, lim, l.ttl)

	return lim
}

// Len returns the number of tracked keys, expired ones included until the next sweep.
func (l *MemoryLimiter) Len() int {
	return l.buckets.ItemCount()
}

// RedisLimiter is a fixed window counter shared between instances.
type RedisLimiter struct {
	client *redisapp.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter allows burst requests plus rps per second within each window.
func NewRedisLimiter(client *redisapp.Client, rps float64, burst int, window time.Duration) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}

	limit := int64(burst) + int64(math.Ceil(rps*window.Seconds()))

	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	const op = "ratelimit.RedisLimiter.Allow"

	k := l.prefix + key

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}

	return n <= l.limit, nil
}
