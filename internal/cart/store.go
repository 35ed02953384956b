// Package cart keeps shopper carts in process memory, keyed by a session id.
package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nordixdotma/kamano/internal/models"
)

var ErrCartNotFound = errors.New("cart not found")

const cleanupInterval = 5 * time.Minute

type entry struct {
	cart      models.Cart
	expiresAt time.Time
}

// Store holds live carts. All operations are synchronous; a mutation is
// visible to every reader as soon as the call returns. Abandoned carts are
// swept after the configured TTL.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*entry
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		carts: make(map[string]*entry),
		ttl:   ttl,
	}
	go s.cleanupExpired()
	return s
}

// Create opens a new empty cart and returns it.
func (s *Store) Create() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Cart{ID: uuid.NewString()}
	s.carts[c.ID] = &entry{cart: c, expiresAt: time.Now().Add(s.ttl)}
	return c
}

// Get returns a copy of the cart with the given id.
func (s *Store) Get(id string) (models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.carts[id]
	if !ok || time.Now().After(e.expiresAt) {
		return models.Cart{}, ErrCartNotFound
	}
	return copyCart(e.cart), nil
}

// AddItem merges the item into the cart and returns the updated cart.
func (s *Store) AddItem(id string, item models.CartItem) (models.Cart, error) {
	return s.mutate(id, func(c *models.Cart) {
		c.Add(item)
	})
}

// SetQuantity updates one line; zero or less removes it. A missing line is
// not an error, the cart is returned unchanged.
func (s *Store) SetQuantity(id string, key models.ItemKey, quantity int) (models.Cart, error) {
	return s.mutate(id, func(c *models.Cart) {
		c.SetQuantity(key, quantity)
	})
}

// RemoveItem deletes one line from the cart.
func (s *Store) RemoveItem(id string, key models.ItemKey) (models.Cart, error) {
	return s.mutate(id, func(c *models.Cart) {
		c.Remove(key)
	})
}

// Clear empties the cart, keeping the session alive.
func (s *Store) Clear(id string) error {
	_, err := s.mutate(id, func(c *models.Cart) {
		c.Clear()
	})
	return err
}

// Size returns the number of live carts.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}

func (s *Store) mutate(id string, fn func(*models.Cart)) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[id]
	if !ok || time.Now().After(e.expiresAt) {
		return models.Cart{}, ErrCartNotFound
	}

	fn(&e.cart)
	e.expiresAt = time.Now().Add(s.ttl)
	return copyCart(e.cart), nil
}

func (s *Store) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, e := range s.carts {
			if now.After(e.expiresAt) {
				delete(s.carts, id)
			}
		}
		s.mu.Unlock()
	}
}

func copyCart(c models.Cart) models.Cart {
	out := c
	out.Items = make([]models.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
