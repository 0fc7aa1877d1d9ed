package repositories

import (
	"sync"

	"bookstore/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
// Orders live in a slice so per-user listings preserve creation order.
type MemoryOrderRepository struct {
	orders []models.Order
	nextID int
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make([]models.Order, 0),
		nextID: 1,
	}
}

// Create assigns the next sequential id and stores the order. The counter is
// advanced under the same lock as the insert.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders = append(r.orders, *order)
	return nil
}

// GetByUsername returns all orders recorded for username, oldest first.
func (r *MemoryOrderRepository) GetByUsername(username string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userOrders := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.Username == username {
			userOrders = append(userOrders, order)
		}
	}
	return userOrders, nil
}
