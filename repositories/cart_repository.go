package repositories

import (
	"sync"

	"github.com/efeurhobobullish/SwiftBuy/models"
)

// CartRepository keeps one cart per session. Each cart has a single writer
// (its session); the mutex only guards the map across sessions.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*models.Cart)}
}

// Get returns the cart for the session, creating an empty one on first use.
func (r *CartRepository) Get(sessionID string) *models.Cart {
	r.mu.RLock()
	cart, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if ok {
		return cart
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cart, ok := r.carts[sessionID]; ok {
		return cart
	}
	cart = models.NewCart()
	r.carts[sessionID] = cart
	return cart
}

// Delete discards the session's cart entirely.
func (r *CartRepository) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
