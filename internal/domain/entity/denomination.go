package entity

import (
	"encoding/json"
	"time"
)

// Denomination represents a currency unit value available in the register
// for making change
type Denomination struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Value     int64     `gorm:"uniqueIndex;not null" json:"-"` // Stored in cents
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the Denomination model
func (Denomination) TableName() string {
	return "denominations"
}

// GetValueDecimal returns the denomination value as a decimal (for display)
func (d *Denomination) GetValueDecimal() float64 {
	return float64(d.Value) / 100
}

// SetValueFromDecimal sets the denomination value from a decimal value
func (d *Denomination) SetValueFromDecimal(value float64) {
	d.Value = int64(value*100 + 0.5)
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d Denomination) MarshalJSON() ([]byte, error) {
	type Alias Denomination
	return json.Marshal(&struct {
		Alias
		Value float64 `json:"value"`
	}{
		Alias: Alias(d),
		Value: d.GetValueDecimal(),
	})
}

// DenominationValues extracts the raw cent values from a denomination set,
// ready to feed into change.Resolve.
func DenominationValues(denoms []Denomination) []int64 {
	values := make([]int64, 0, len(denoms))
	for _, d := range denoms {
		values = append(values, d.Value)
	}
	return values
}
