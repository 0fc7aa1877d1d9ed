package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"bookstore/internal/handlers"
	"bookstore/internal/models"
	"bookstore/internal/repositories"
	"bookstore/internal/services"
	"bookstore/pkg/rabbitmq"
)

// NewApp builds the Fiber app with in-memory stores, the seeded catalog, and
// all routes registered. The publisher may be nil, in which case order events
// are not published.
func NewApp(publisher services.EventPublisher) *fiber.App {
	// --- Initialize Repositories ---
	bookRepo := repositories.NewMemoryBookRepository()
	userRepo := repositories.NewMemoryUserRepository()
	orderRepo := repositories.NewMemoryOrderRepository()

	seedBooks(bookRepo)

	// --- Initialize Services ---
	catalogService := services.NewCatalogService(bookRepo)
	// Plain-text credential storage, same as the original backend. Swap in
	// services.BcryptChecker{} here to store hashes instead.
	authService := services.NewAuthService(userRepo, services.PlainChecker{})
	orderService := services.NewOrderService(orderRepo, userRepo, publisher)

	// --- Initialize Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())   // Cross-origin requests allowed from any origin

	// --- API Routes ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Online Book Store API!",
		})
	})

	catalogHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables order events
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize RabbitMQ Client (optional) ---
	// The store works without a broker; order events are simply skipped.
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable, continuing without order events: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	app := NewApp(publisher)

	// --- Start RabbitMQ Consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for orders...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received Order Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if err := mqClient.ConsumeOrderEvents(messageHandler); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// seedBooks loads the fixed catalog into the book repository.
func seedBooks(repo repositories.BookRepository) {
	for _, book := range models.SeedBooks() {
		if err := repo.Create(&book); err != nil {
			log.Printf("Error seeding book %q: %v", book.Title, err)
		}
	}
}
