package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var _ port.TokenStore = (*RedisTokenStore)(nil)

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// RedisTokenStore keeps the tokens as one JSON value under key.
type RedisTokenStore struct {
	rdb redisKV
	key string
}

// NewRedisClient connects to redisURL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	const op = "NewRedisClient"
	log := slog.With("op", op)

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("%s: redis is unavailable: %w", op, err)
	}
	log.Info("redis is available", "addr", opt.Addr)
	return rdb, nil
}

func NewRedisTokenStore(rdb redisKV, key string) (RedisTokenStore, error) {
	if rdb == nil {
		return RedisTokenStore{}, errors.New("redis client is nil")
	}
	if key == "" {
		return RedisTokenStore{}, errors.New("token key is empty")
	}
	return RedisTokenStore{rdb, key}, nil
}

func (s RedisTokenStore) Load(ctx context.Context) (domain.Tokens, bool, error) {
	const op = "RedisTokenStore.Load"

	val, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Tokens{}, false, nil
	}
	if err != nil {
		return domain.Tokens{}, false, fmt.Errorf("%s: %w", op, err)
	}

	t, err := decodeTokens(val)
	if err != nil {
		return domain.Tokens{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return t, true, nil
}

func (s RedisTokenStore) Save(ctx context.Context, t domain.Tokens) error {
	const op = "RedisTokenStore.Save"

	data, err := encodeTokens(t)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisTokenStore) Delete(ctx context.Context) error {
	const op = "RedisTokenStore.Delete"

	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisTokenStore) Close() {
	const op = "RedisTokenStore.Close"
	log := slog.With("op", op)

	log.Info("closing redis client...")
	if err := s.rdb.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("redis client is closed")
}
