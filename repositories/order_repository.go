package repositories

import (
	"sync"

	"github.com/efeurhobobullish/SwiftBuy/models"
)

// OrderRepository stores finalized orders in memory, indexed by reference
// and by the session that placed them.
type OrderRepository struct {
	mu        sync.RWMutex
	orders    map[string]models.Order
	bySession map[string][]string
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders:    make(map[string]models.Order),
		bySession: make(map[string][]string),
	}
}

func (r *OrderRepository) Create(sessionID string, o models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	r.bySession[sessionID] = append(r.bySession[sessionID], o.ID)
}

func (r *OrderRepository) GetByID(id string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return models.Order{}, models.ErrOrderNotFound
	}
	return o, nil
}

// ListBySession returns the session's orders, most recent last.
func (r *OrderRepository) ListBySession(sessionID string) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.bySession[sessionID]
	out := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out
}
