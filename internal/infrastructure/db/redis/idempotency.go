package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps (user, Idempotency-Key) pairs to the order number the
// first submission produced.
// Key format: idem:order:<user_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup reports the order number recorded for this key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, userID int64, key string) (string, bool, error) {
	number, err := s.client.Get(ctx, s.key(userID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return number, true, nil
}

// Remember records the order produced by this key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, userID int64, key, orderNumber string) error {
	return s.client.SetNX(ctx, s.key(userID, key), orderNumber, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(userID int64, key string) string {
	return fmt.Sprintf("idem:order:%d:%s", userID, key)
}
