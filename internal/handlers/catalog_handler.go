package handlers

import (
	"log"

	"bookstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for catalog browsing.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Get("/", h.HandleGetBooks)
	bookRoutes.Get("/featured", h.HandleGetFeaturedBooks)
	bookRoutes.Get("/categories", h.HandleGetCategories)
}

// HandleGetBooks returns the full catalog in seed order.
func (h *CatalogHandler) HandleGetBooks(c *fiber.Ctx) error {
	books, err := h.service.GetAllBooks()
	if err != nil {
		log.Printf("Error getting all books: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve books",
		})
	}
	return c.JSON(books)
}

// HandleGetFeaturedBooks returns the books flagged as featured.
func (h *CatalogHandler) HandleGetFeaturedBooks(c *fiber.Ctx) error {
	books, err := h.service.GetFeaturedBooks()
	if err != nil {
		log.Printf("Error getting featured books: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve books",
		})
	}
	return c.JSON(books)
}

// HandleGetCategories returns the distinct categories across the catalog.
func (h *CatalogHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve categories",
		})
	}
	return c.JSON(categories)
}
