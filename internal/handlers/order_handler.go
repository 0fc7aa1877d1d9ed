package handlers

import (
	"errors"
	"log"

	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:username", h.HandleGetOrdersByUsername)
}

// CreateOrderRequest represents the request body for order creation. Items
// are opaque order lines recorded exactly as sent.
type CreateOrderRequest struct {
	Username string           `json:"username"`
	Items    []map[string]any `json:"items"`
	Total    float64          `json:"total"`
}

// HandleCreateOrder records a new order for a registered user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	order, err := h.service.CreateOrder(req.Username, req.Items, req.Total)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUser) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid user",
			})
		}
		log.Printf("Error creating order for user %s: %v", req.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created",
		"order":   order,
	})
}

// HandleGetOrdersByUsername returns every order recorded for the username in
// the path. An unknown username gets an empty list, not a 404.
func (h *OrderHandler) HandleGetOrdersByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	orders, err := h.service.GetOrdersByUsername(username)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}
