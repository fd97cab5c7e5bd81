package cache

import (
	"context"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// token 注销黑名单的 key 前缀
const revokedTokenPrefix = "revoked_token:"

type RedisCache struct {
	client *redis.Client
}

// global cache instance, mirrors database.DB
var Cache *RedisCache

func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Initialize connect and set the global instance
func Initialize(cfg *config.Config) error {
	c, err := NewRedisCache(cfg.Redis)
	if err != nil {
		return err
	}
	Cache = c
	return nil
}

// GetCache get the global cache instance, nil when redis is not configured
func GetCache() *RedisCache {
	return Cache
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// RevokeToken 注销 token，保留到其自然过期为止
func (c *RedisCache) RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// token 已经过期，不用进黑名单
		return nil
	}
	return c.client.Set(ctx, revokedTokenPrefix+token, "1", ttl).Err()
}

// IsTokenRevoked 检查 token 是否已注销
func (c *RedisCache) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, revokedTokenPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
