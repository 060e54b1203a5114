// Package cartstore provides an in-memory implementation of the
// session-keyed cart store. Suitable for tests and single-instance
// deployments; carts do not survive a restart.
package cartstore

import (
	"context"
	"sync"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/menu"
)

type entry struct {
	cart    *cart.Cart
	touched time.Time
}

// InMemoryCartStore keeps carts in a mutex-guarded map.
// The single lock makes every operation atomic per session (and in fact
// across sessions, which is stronger than the contract requires).
type InMemoryCartStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// NewInMemoryCartStore creates an empty cart store.
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// AddItem merges the given item into the session's cart, creating the cart
// on first use.
func (s *InMemoryCartStore) AddItem(_ context.Context, sessionID string, item *menu.Item, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[sessionID]
	if !ok {
		newCart, err := cart.NewCart(sessionID)
		if err != nil {
			return err
		}
		current = &entry{cart: newCart}
		s.entries[sessionID] = current
	}

	if err := current.cart.AddItem(item, quantity); err != nil {
		return err
	}

	current.touched = s.now()
	return nil
}

// Get returns a snapshot of the session's cart. The returned aggregate is
// detached from the store; mutating it changes nothing here.
func (s *InMemoryCartStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[sessionID]
	if !ok {
		return cart.NewCart(sessionID)
	}

	return cart.RestoreCart(sessionID, current.cart.Lines())
}

// Clear removes the session's cart. Absent carts are a no-op.
func (s *InMemoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// PurgeIdle drops carts untouched for at least maxIdle and reports how many
// were removed.
func (s *InMemoryCartStore) PurgeIdle(_ context.Context, maxIdle time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0

	for sessionID, current := range s.entries {
		if current.touched.Before(cutoff) {
			delete(s.entries, sessionID)
			removed++
		}
	}

	return removed, nil
}
