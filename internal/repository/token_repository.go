package repository

import (
	"context"
	"errors"
	"time"

	redisapp "dinas_portal/internal/storage/redis"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

type RedisTokenRepo struct {
	Client *redisapp.Client
}

func NewRedisTokenRepo(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{Client: client}
}

func (r *RedisTokenRepo) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.Client.Set(ctx, revokedTokenKey(jti), "1", ttl).Err()
}

func (r *RedisTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	val, err := r.Client.Get(ctx, revokedTokenKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	return val == "1", err
}

func revokedTokenKey(jti string) string {
	return "revoked:" + jti
}

// MemoryTokenRepo is used when no redis is configured. Entries vanish on
// restart and are swept by the cache janitor once expired.
type MemoryTokenRepo struct {
	cache *cache.Cache
}

func NewMemoryTokenRepo(cleanup time.Duration) *MemoryTokenRepo {
	return &MemoryTokenRepo{
		cache: cache.New(cache.NoExpiration, cleanup),
	}
}

func (r *MemoryTokenRepo) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	r.cache.Set(revokedTokenKey(jti), struct{}{}, ttl)
	return nil
}

func (r *MemoryTokenRepo) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := r.cache.Get(revokedTokenKey(jti))
	return ok, nil
}
