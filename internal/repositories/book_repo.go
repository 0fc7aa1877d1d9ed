package repositories

import (
	"bookstore/internal/models"
)

// BookRepository defines the interface for catalog data access.
type BookRepository interface {
	GetAll() ([]models.Book, error)
	GetFeatured() ([]models.Book, error)
	Create(book *models.Book) error
}
