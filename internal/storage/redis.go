package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores values as plain redis strings under
// <prefix><scope>:<key>. Values never expire.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend parses url, checks the connection and returns a backend.
func NewRedisBackend(url, prefix string) (*RedisBackend, error) {
	if url == "" {
		return nil, errors.New("redis URL is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewRedisBackendFromClient(client, prefix), nil
}

func NewRedisBackendFromClient(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) key(scope, key string) string {
	return r.prefix + scope + ":" + key
}

func (r *RedisBackend) Get(ctx context.Context, scope, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(scope, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (r *RedisBackend) Set(ctx context.Context, scope, key string, value []byte) error {
	return r.client.Set(ctx, r.key(scope, key), value, 0).Err()
}

func (r *RedisBackend) Delete(ctx context.Context, scope, key string) error {
	return r.client.Del(ctx, r.key(scope, key)).Err()
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
