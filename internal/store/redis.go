package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/trebekbot/trebekbot/pkg/errors"
)

type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStoreUnavailable, "redis get "+key)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreUnavailable, "redis set "+key)
	}
	return nil
}

func (r *Redis) SetEX(ctx context.Context, key string, ttl time.Duration, value string) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreUnavailable, "redis setex "+key)
	}
	return nil
}

func (r *Redis) Del(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreUnavailable, "redis del "+key)
	}
	return nil
}

func (r *Redis) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	total, err := r.client.IncrBy(ctx, key, delta).Result()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeStoreUnavailable, "redis incrby "+key)
	}
	return total, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreUnavailable, "redis ping")
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
