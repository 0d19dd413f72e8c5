// Package rediscache is the Redis-backed cache store for multi-instance
// deployments. TTL expiry is native; entries additionally record when they
// were stored so Sweep can remove entries by storage age.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"

	"github.com/wfca-mz/fire-widget/internal/cache"
	"github.com/wfca-mz/fire-widget/internal/cache/keys"
	"github.com/wfca-mz/fire-widget/internal/config"
	"github.com/wfca-mz/fire-widget/internal/domain"
)

var _ cache.Store = (*Store)(nil)

type redisEntry struct {
	StoredAt int64            `json:"stored_at"`
	Data     []domain.FireRow `json:"data"`
}

type Store struct {
	client *goredis.Client
	now    func() time.Time
}

func New(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

	return &Store{client: rdb, now: time.Now}, nil
}

// NewWithClient wraps an existing client; used by tests.
func NewWithClient(client *goredis.Client) *Store {
	return &Store{client: client, now: time.Now}
}

func (s *Store) Get(ctx context.Context, key string) ([]domain.FireRow, bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var en redisEntry
	if err := json.Unmarshal(raw, &en); err != nil {
		_ = s.client.Del(ctx, key).Err()
		return nil, false, nil
	}
	return en.Data, true, nil
}

func (s *Store) Set(ctx context.Context, key string, rows []domain.FireRow, ttl time.Duration) error {
	raw, err := json.Marshal(redisEntry{
		StoredAt: s.now().Unix(),
		Data:     rows,
	})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, ttl).Err()
}

func (s *Store) Sweep(ctx context.Context, maxAge time.Duration) (int, error) {
	removed := 0
	now := s.now()

	iter := s.client.Scan(ctx, 0, keys.Prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		raw, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		var en redisEntry
		if err := json.Unmarshal(raw, &en); err != nil {
			continue
		}
		if now.Sub(time.Unix(en.StoredAt, 0)) > maxAge {
			if s.client.Del(ctx, key).Err() == nil {
				removed++
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	return removed, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
