package idgen

import (
	"context"
	"crypto/tls"
	"fmt"
	"strconv"

	redis "github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// RedisAllocator draws identifiers from INCR on a single Redis key, which keeps
// them unique across process restarts for as long as the key survives.
type RedisAllocator struct {
	client *redis.Client
	key    string
}

func NewRedisAllocator(client *redis.Client, key string) *RedisAllocator {
	return &RedisAllocator{client: client, key: key}
}

// NewRedisClient connects to addr and pings it before returning.
func NewRedisClient(ctx context.Context, addr, password string, tlsConfig *tls.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	}
	if tlsConfig != nil {
		opts.TLSConfig = tlsConfig
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (a *RedisAllocator) Next(ctx context.Context) (string, error) {
	n, err := a.client.Incr(ctx, a.key).Result()
	if err != nil {
		return "", fmt.Errorf("redis incr %s: %w", a.key, err)
	}
	return strconv.FormatInt(n, 10), nil
}
