package repositories

import (
	"fmt"
	"sync"

	"bookstore/internal/models"
)

// MemoryBookRepository is an in-memory implementation of BookRepository.
// Books are kept in a slice so listings always come back in seed order.
type MemoryBookRepository struct {
	books []models.Book
	mu    sync.RWMutex
}

// NewMemoryBookRepository creates a new instance of MemoryBookRepository.
func NewMemoryBookRepository() *MemoryBookRepository {
	return &MemoryBookRepository{
		books: make([]models.Book, 0),
	}
}

// GetAll returns all books in insertion order.
func (r *MemoryBookRepository) GetAll() ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookList := make([]models.Book, len(r.books))
	copy(bookList, r.books)
	return bookList, nil
}

// GetFeatured returns the books flagged as featured, preserving insertion order.
func (r *MemoryBookRepository) GetFeatured() ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := make([]models.Book, 0)
	for _, b := range r.books {
		if b.Featured {
			featured = append(featured, b)
		}
	}
	return featured, nil
}

// Create adds a new book. Duplicate ids are rejected to keep the catalog
// invariant of unique positive ids.
func (r *MemoryBookRepository) Create(book *models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.books {
		if b.ID == book.ID {
			return fmt.Errorf("book with ID %d: %w", book.ID, ErrDuplicate)
		}
	}
	r.books = append(r.books, *book)
	return nil
}
