package credstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores credentials in a redis instance. Keys have no TTL: a token
// disappears only on logout, matching the localStorage lifecycle.
type Redis struct {
	client *redis.Client
}

func NewRedis(ctx context.Context, addr, password string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{client: client}, nil
}

// Client exposes the underlying connection for co-tenants such as the
// rate-limit middleware.
func (r *Redis) Client() *redis.Client {
	return r.client
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, "cred:"+key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, "cred:"+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, "cred:"+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
