package services

import (
	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// CatalogService handles business logic related to the book catalog.
type CatalogService struct {
	repo repositories.BookRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.BookRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllBooks retrieves the full catalog in seed order.
func (s *CatalogService) GetAllBooks() ([]models.Book, error) {
	return s.repo.GetAll()
}

// GetFeaturedBooks retrieves the books flagged for promotional display.
func (s *CatalogService) GetFeaturedBooks() ([]models.Book, error) {
	return s.repo.GetFeatured()
}

// GetCategories returns each distinct category exactly once, in the order a
// category first appears in the catalog. First-seen ordering keeps the
// endpoint deterministic across calls.
func (s *CatalogService) GetCategories() ([]string, error) {
	books, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, b := range books {
		if !seen[b.Category] {
			seen[b.Category] = true
			categories = append(categories, b.Category)
		}
	}
	return categories, nil
}
