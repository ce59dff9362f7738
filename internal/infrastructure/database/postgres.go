package database

import (
	"fmt"
	"log"

	"github.com/praveenm/billing-api/internal/config"
	"github.com/praveenm/billing-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Product{},
		&entity.Denomination{},
		&entity.Bill{},
		&entity.BillItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// defaultDenominations is the register's default currency set, in cents.
var defaultDenominations = []int64{200000, 50000, 20000, 10000, 5000, 2000, 1000, 500, 200, 100}

// SeedDefaultData seeds the database with the default denomination set and
// a handful of sample products. Safe to run repeatedly.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for _, value := range defaultDenominations {
		var existing entity.Denomination
		if err := db.Where("value = ?", value).First(&existing).Error; err != nil {
			denom := entity.Denomination{Value: value}
			if err := db.Create(&denom).Error; err != nil {
				log.Printf("Warning: failed to create denomination %d: %v", value, err)
			}
		}
	}

	sampleProducts := []entity.Product{
		{Code: "PROD001", Name: "Laptop", AvailableStocks: 10, UnitPrice: 5000000, TaxPercentage: 18},
		{Code: "PROD002", Name: "Mouse", AvailableStocks: 50, UnitPrice: 50000, TaxPercentage: 12},
		{Code: "PROD003", Name: "Keyboard", AvailableStocks: 30, UnitPrice: 200000, TaxPercentage: 12},
		{Code: "PROD004", Name: "Monitor", AvailableStocks: 15, UnitPrice: 1500000, TaxPercentage: 18},
		{Code: "PROD005", Name: "USB Cable", AvailableStocks: 100, UnitPrice: 20000, TaxPercentage: 5},
	}

	for i := range sampleProducts {
		var existing entity.Product
		if err := db.Where("code = ?", sampleProducts[i].Code).First(&existing).Error; err != nil {
			if err := db.Create(&sampleProducts[i]).Error; err != nil {
				log.Printf("Warning: failed to create product %s: %v", sampleProducts[i].Code, err)
			}
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
