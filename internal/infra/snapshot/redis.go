package snapshot

import (
	"context"
	"encoding/json"

	"auction-hall/internal/domain/auction"

	"github.com/redis/go-redis/v9"
)

const activeKey = "auction:active"

// RedisStore mirrors the active auction for external readers (gateways,
// dashboards). The in-memory record stays authoritative; a missed write
// leaves the mirror stale until the next committed mutation.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string, db int) (*RedisStore, func(), error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = client.Close() }
	return &RedisStore{client: client}, cleanup, nil
}

func (s *RedisStore) SaveActive(ctx context.Context, snap auction.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, activeKey, data, 0).Err()
}

func (s *RedisStore) ClearActive(ctx context.Context) error {
	return s.client.Del(ctx, activeKey).Err()
}

// NoopStore is used when no mirror is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (NoopStore) SaveActive(context.Context, auction.Snapshot) error { return nil }
func (NoopStore) ClearActive(context.Context) error                  { return nil }
