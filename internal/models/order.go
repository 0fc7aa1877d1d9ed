package models

// OrderStatusCompleted is the only status an order ever has; orders are
// recorded after the fact and never transition.
const OrderStatusCompleted = "completed"

// Order represents a recorded customer order. Line items are kept exactly as
// the client sent them and the total is client-supplied.
type Order struct {
	ID       int              `json:"id"`
	Username string           `json:"username"`
	Items    []map[string]any `json:"items"`
	Total    float64          `json:"total"`
	Date     string           `json:"date"`
	Status   string           `json:"status"`
}
