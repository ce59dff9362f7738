package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/praveenm/billing-api/internal/application/service"
	"github.com/praveenm/billing-api/internal/config"
	"github.com/praveenm/billing-api/internal/infrastructure/database"
	"github.com/praveenm/billing-api/internal/infrastructure/repository"
	"github.com/praveenm/billing-api/internal/presentation/http/handler"
	"github.com/praveenm/billing-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default denominations and sample products
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	denominationRepo := repository.NewDenominationRepository(db)
	billRepo := repository.NewBillRepository(db)
	txManager := repository.NewTransactionManager(db)

	// Initialize services
	productService := service.NewProductService(productRepo)
	denominationService := service.NewDenominationService(denominationRepo)
	billingService := service.NewBillingService(billRepo, productRepo, denominationRepo, txManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:      handler.NewProductHandler(productService),
		Denomination: handler.NewDenominationHandler(denominationService),
		Bill:         handler.NewBillHandler(billingService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
