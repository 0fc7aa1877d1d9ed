package repositories

import "bookstore/internal/models"

// UserRepository defines the interface for user data access. Create must be
// atomic with its duplicate check so concurrent registrations cannot both
// claim the same username.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
}
