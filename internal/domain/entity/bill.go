package entity

import (
	"encoding/json"
	"time"

	"github.com/praveenm/billing-api/pkg/change"
)

// Bill represents one completed sales transaction. Bills are created in a
// single transaction together with their items and are never mutated
// afterwards.
type Bill struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	BillNumber       string    `gorm:"size:50;uniqueIndex;not null" json:"bill_number"`
	CustomerEmail    string    `gorm:"size:255;not null;index" json:"customer_email"`
	Subtotal         int64     `gorm:"not null" json:"-"` // Stored in cents
	TotalTax         int64     `gorm:"not null" json:"-"` // Stored in cents
	TotalAmount      int64     `gorm:"not null" json:"-"` // Stored in cents
	PaidAmount       int64     `gorm:"not null" json:"-"` // Stored in cents
	BalanceAmount    int64     `gorm:"not null" json:"-"` // Stored in cents
	BalanceBreakdown string    `gorm:"type:text" json:"-"` // Serialized denomination -> count map
	CreatedAt        time.Time `json:"created_at"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// ChangeBreakdown decodes the persisted balance denomination breakdown.
func (b *Bill) ChangeBreakdown() (change.Breakdown, error) {
	return change.Decode(b.BalanceBreakdown)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	breakdown, err := b.ChangeBreakdown()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(breakdown))
	for denom, count := range breakdown {
		counts[change.FormatValue(denom)] = count
	}

	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Subtotal             float64        `json:"subtotal"`
		TotalTax             float64        `json:"total_tax"`
		TotalAmount          float64        `json:"total_amount"`
		PaidAmount           float64        `json:"paid_amount"`
		BalanceAmount        float64        `json:"balance_amount"`
		BalanceDenominations map[string]int `json:"balance_denominations"`
	}{
		Alias:                Alias(b),
		Subtotal:             float64(b.Subtotal) / 100,
		TotalTax:             float64(b.TotalTax) / 100,
		TotalAmount:          float64(b.TotalAmount) / 100,
		PaidAmount:           float64(b.PaidAmount) / 100,
		BalanceAmount:        float64(b.BalanceAmount) / 100,
		BalanceDenominations: counts,
	})
}

// BillItem represents one priced line within a bill. Unit price and tax
// percentage are snapshots taken at transaction time, so later catalog
// edits never alter historical bills.
type BillItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	BillID        uint    `gorm:"not null;index" json:"bill_id"`
	ProductID     uint    `gorm:"not null;index" json:"product_id"`
	Quantity      int     `gorm:"not null" json:"quantity"`
	UnitPrice     int64   `gorm:"not null" json:"-"` // Stored in cents
	TaxPercentage float64 `gorm:"not null" json:"tax_percentage"`
	ItemSubtotal  int64   `gorm:"not null" json:"-"` // Stored in cents
	ItemTax       int64   `gorm:"not null" json:"-"` // Stored in cents
	ItemTotal     int64   `gorm:"not null" json:"-"` // Stored in cents

	// Relationships
	Bill    Bill    `gorm:"foreignKey:BillID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		UnitPrice    float64 `json:"unit_price"`
		ItemSubtotal float64 `json:"item_subtotal"`
		ItemTax      float64 `json:"item_tax"`
		ItemTotal    float64 `json:"item_total"`
	}{
		Alias:        Alias(bi),
		UnitPrice:    float64(bi.UnitPrice) / 100,
		ItemSubtotal: float64(bi.ItemSubtotal) / 100,
		ItemTax:      float64(bi.ItemTax) / 100,
		ItemTotal:    float64(bi.ItemTotal) / 100,
	})
}
