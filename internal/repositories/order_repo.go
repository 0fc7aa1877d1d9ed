package repositories

import "bookstore/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Create assigns the order its id and stores it. Id assignment and
	// insertion are atomic so concurrent creators never collide.
	Create(order *models.Order) error
	// GetByUsername returns the orders recorded for username in creation
	// order. An unknown username yields an empty slice, not an error.
	GetByUsername(username string) ([]models.Order, error)
}
