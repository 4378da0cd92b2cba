package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"reskin-calc/internal/catalog"
)

const ratesCacheKey = "catalog:rates"

type Storage struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a new Redis-backed store for drafts and the rates cache.
func New(addr, password string, db int, ttl time.Duration) *Storage {
	return &Storage{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     100,
			MinIdleConns: 10,
		}),
		ttl: ttl,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

// SaveDraft overwrites the user's draft, resetting its TTL.
func (s *Storage) SaveDraft(ctx context.Context, userID int64, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	return s.client.Set(ctx, buildDraftKey(userID), data, s.ttl).Err()
}

// GetDraft returns the user's saved draft, or nil when none exists.
func (s *Storage) GetDraft(ctx context.Context, userID int64) (*Draft, error) {
	data, err := s.client.Get(ctx, buildDraftKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal failure: %w", err)
	}
	return &draft, nil
}

func (s *Storage) DropDraft(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, buildDraftKey(userID)).Err()
}

// CacheRates keeps the last live rate overrides so a backend outage inside
// the refresh interval still serves live numbers.
func (s *Storage) CacheRates(ctx context.Context, rates *catalog.RateOverrides) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("marshal rates: %w", err)
	}
	return s.client.Set(ctx, ratesCacheKey, data, s.ttl).Err()
}

// CachedRates returns the last cached overrides, or nil when the cache is
// cold or unreadable.
func (s *Storage) CachedRates(ctx context.Context) (*catalog.RateOverrides, error) {
	data, err := s.client.Get(ctx, ratesCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get rates: %w", err)
	}

	var rates catalog.RateOverrides
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("unmarshal failure: %w", err)
	}
	return &rates, nil
}

func (s *Storage) DropCachedRates(ctx context.Context) error {
	return s.client.Del(ctx, ratesCacheKey).Err()
}

func buildDraftKey(userID int64) string {
	return fmt.Sprintf("draft:%d", userID)
}
