package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"frankfurter/internal/application"
	"frankfurter/internal/domain"

	"github.com/redis/go-redis/v9"
)

var _ application.CatalogStore = (*CatalogStore)(nil)

// CatalogStore keeps the currency catalog as one JSON value so engines in
// different processes can skip the remote fetch.
type CatalogStore struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration
}

func New(client *redis.Client, key string, ttl time.Duration) *CatalogStore {
	return &CatalogStore{Client: client, Key: key, TTL: ttl}
}

func (s *CatalogStore) Load(ctx context.Context) (domain.Currencies, bool, error) {
	raw, err := s.Client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get %s: %w", s.Key, err)
	}
	var c domain.Currencies
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, false, fmt.Errorf("redis: decode %s: %w", s.Key, err)
	}
	return c, true, nil
}

func (s *CatalogStore) Save(ctx context.Context, c domain.Currencies) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("redis: encode catalog: %w", err)
	}
	if err := s.Client.Set(ctx, s.Key, raw, s.TTL).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", s.Key, err)
	}
	return nil
}

// Ping reports whether the server answers.
func (s *CatalogStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
