package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const defaultRedisTimeout = 2 * time.Second

// Redis stores records as plain string keys under a prefix.
type Redis struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

var _ Backend = (*Redis)(nil)

// NewRedis wraps an existing client. Every key is stored as prefix+key.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix, timeout: defaultRedisTimeout}
}

func (r *Redis) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

func (r *Redis) Get(key string) ([]byte, error) {
	ctx, cancel := r.ctx()
	defer cancel()

	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (r *Redis) Set(key string, value []byte) error {
	ctx, cancel := r.ctx()
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(key string) error {
	ctx, cancel := r.ctx()
	defer cancel()

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}
