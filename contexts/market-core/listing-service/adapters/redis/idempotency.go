// Package redisadapter implements the listing-service idempotency port on
// Redis, so replay state survives API process restarts without a round trip
// to Postgres.
package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"folio/contexts/market-core/listing-service/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "listing:idem:"

type IdempotencyStore struct {
	rdb *redis.Client
}

func NewIdempotencyStore(rdb *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb}
}

func (s *IdempotencyStore) Get(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, fmt.Errorf("redis: get idempotency %s: %w", key, err)
	}

	var record ports.IdempotencyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return ports.IdempotencyRecord{}, false, fmt.Errorf("redis: decode idempotency %s: %w", key, err)
	}
	if !record.ExpiresAt.IsZero() && now.After(record.ExpiresAt) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *IdempotencyStore) Put(ctx context.Context, record ports.IdempotencyRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("redis: encode idempotency %s: %w", record.Key, err)
	}

	var ttl time.Duration
	if !record.ExpiresAt.IsZero() {
		ttl = time.Until(record.ExpiresAt)
		if ttl <= 0 {
			return nil
		}
	}
	if err := s.rdb.Set(ctx, keyPrefix+record.Key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis: put idempotency %s: %w", record.Key, err)
	}
	return nil
}
