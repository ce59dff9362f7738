package entity

import (
	"encoding/json"
	"time"
)

// Product represents a catalog item available for sale
type Product struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	AvailableStocks int       `gorm:"not null;default:0" json:"available_stocks"`
	UnitPrice       int64     `gorm:"not null" json:"-"` // Stored in cents
	TaxPercentage   float64   `gorm:"not null;default:0" json:"tax_percentage"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	BillItems []BillItem `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetUnitPriceDecimal returns the unit price as a decimal (for display)
func (p *Product) GetUnitPriceDecimal() float64 {
	return float64(p.UnitPrice) / 100
}

// SetUnitPriceFromDecimal sets the unit price from a decimal value
func (p *Product) SetUnitPriceFromDecimal(price float64) {
	p.UnitPrice = int64(price*100 + 0.5)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"price_per_unit"`
	}{
		Alias:     Alias(p),
		UnitPrice: p.GetUnitPriceDecimal(),
	})
}
