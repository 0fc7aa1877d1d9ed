package repositories

import (
	"fmt"

	"bookstore/internal/models"

	"gorm.io/gorm"
)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{
		db: db,
	}
}

// GetAll retrieves all books from the database in id order, which matches
// seed order since ids are assigned sequentially.
func (r *GORMBookRepository) GetAll() ([]models.Book, error) {
	var books []models.Book
	if err := r.db.Order("id").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to get all books: %w", err)
	}
	return books, nil
}

// GetFeatured retrieves the featured books from the database in id order.
func (r *GORMBookRepository) GetFeatured() ([]models.Book, error) {
	var books []models.Book
	if err := r.db.Where("featured = ?", true).Order("id").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to get featured books: %w", err)
	}
	return books, nil
}

// Create creates a new book in the database.
func (r *GORMBookRepository) Create(book *models.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}
