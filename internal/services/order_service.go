package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// ErrInvalidUser is returned when an order names a missing or unknown user.
var ErrInvalidUser = errors.New("invalid user")

// EventPublisher publishes order lifecycle events to a message broker.
type EventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. A nil publisher disables event
// publication without affecting order creation.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// CreateOrder records a new order for a registered user. Line items are
// stored as sent and total is trusted as supplied; there is no inventory to
// reconcile against.
func (s *OrderService) CreateOrder(username string, items []map[string]any, total float64) (*models.Order, error) {
	if username == "" {
		return nil, ErrInvalidUser
	}
	if _, err := s.userRepo.GetByUsername(username); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidUser
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if items == nil {
		items = make([]map[string]any, 0)
	}

	order := &models.Order{
		Username: username,
		Items:    items,
		Total:    total,
		Date:     time.Now().Format(time.RFC3339),
		Status:   models.OrderStatusCompleted,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// A broker outage must never fail the order, so publish errors are
	// only logged.
	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":  order.ID,
			"username": order.Username,
			"status":   order.Status,
			"total":    order.Total,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetOrdersByUsername returns the orders recorded for username in creation
// order. Unknown usernames yield an empty list, same as users with no orders.
func (s *OrderService) GetOrdersByUsername(username string) ([]models.Order, error) {
	return s.orderRepo.GetByUsername(username)
}
