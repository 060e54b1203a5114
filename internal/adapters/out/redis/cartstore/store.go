package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/menu"

	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic-lock retries when concurrent requests of
// the same session race on AddItem.
const maxTxRetries = 5

// RedisCartStore implements the session-keyed cart store on Redis.
// AddItem runs under WATCH so two concurrent adds for the same session
// serialize instead of losing one of the increments. The configured TTL is
// refreshed on every mutation, so abandoned carts expire on their own and
// PurgeIdle has nothing to do.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a cart store on the given Redis client.
// Carts not touched for ttl disappear.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisCartStore) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// AddItem merges the given item into the session's cart and refreshes its TTL.
// Creates the cart on first touch; an existing line for the same menu item
// gets its quantity incremented instead of a duplicate line.
func (s *RedisCartStore) AddItem(ctx context.Context, sessionID string, item *menu.Item, quantity int) error {
	key := s.key(sessionID)

	txn := func(tx *redis.Tx) error {
		current, err := s.load(ctx, tx, sessionID)
		if err != nil {
			return err
		}

		if err = current.AddItem(item, quantity); err != nil {
			return err
		}

		data, err := json.Marshal(fromDomain(current))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("cart update for session %s: %w", sessionID, redis.TxFailedErr)
}

// Get returns the session's cart. A session with no stored cart yields a
// fresh empty cart, not an error.
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return s.load(ctx, s.client, sessionID)
}

// Clear removes the session's cart. Clearing an absent cart is a no-op.
func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// PurgeIdle reports zero removals: Redis TTLs already expire idle carts.
func (s *RedisCartStore) PurgeIdle(_ context.Context, _ time.Duration) (int, error) {
	return 0, nil
}

func (s *RedisCartStore) load(ctx context.Context, c redis.Cmdable, sessionID string) (*cart.Cart, error) {
	data, err := c.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(sessionID)
	}
	if err != nil {
		return nil, err
	}

	var dto CartDTO
	if err = json.Unmarshal([]byte(data), &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}
