package cache

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Chaves fixas, uma por coleção.
const (
	KeyServices     = "nail:services"
	KeyAppointments = "nail:appointments"
	KeyBlockedSlots = "nail:blocked"
	KeySiteConfig   = "nail:config"
)

// Cache é o cache local de blobs JSON. Ausência de chave não é erro.
type Cache interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, blob []byte) error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts)}, nil
}

func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Load(ctx context.Context, key string) ([]byte, bool, error) {
	blob, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob, true, nil
}

func (c *RedisCache) Save(ctx context.Context, key string, blob []byte) error {
	// Sem TTL: o cache é a cópia durável local, não uma entrada expirável.
	return c.client.Set(ctx, key, blob, 0).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

var _ Cache = (*RedisCache)(nil)
