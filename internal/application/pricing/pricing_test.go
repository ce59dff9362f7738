package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceLine(t *testing.T) {
	tests := []struct {
		name          string
		unitPrice     int64
		taxPercentage float64
		quantity      int
		wantSubtotal  int64
		wantTax       int64
		wantTotal     int64
	}{
		{
			// price=100, tax=18%, qty=2 -> subtotal=200, tax=36, total=236
			name:          "standard taxed line",
			unitPrice:     10000,
			taxPercentage: 18,
			quantity:      2,
			wantSubtotal:  20000,
			wantTax:       3600,
			wantTotal:     23600,
		},
		{
			name:          "zero tax",
			unitPrice:     5000,
			taxPercentage: 0,
			quantity:      3,
			wantSubtotal:  15000,
			wantTax:       0,
			wantTotal:     15000,
		},
		{
			name:          "fractional tax rounds to nearest cent",
			unitPrice:     99,
			taxPercentage: 5,
			quantity:      1,
			wantSubtotal:  99,
			wantTax:       5, // 4.95 rounds up
			wantTotal:     104,
		},
		{
			name:          "single quantity full rate",
			unitPrice:     5000000,
			taxPercentage: 18,
			quantity:      1,
			wantSubtotal:  5000000,
			wantTax:       900000,
			wantTotal:     5900000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := PriceLine(tt.unitPrice, tt.taxPercentage, tt.quantity)
			assert.Equal(t, tt.wantSubtotal, line.Subtotal)
			assert.Equal(t, tt.wantTax, line.Tax)
			assert.Equal(t, tt.wantTotal, line.Total)
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Run("empty bill", func(t *testing.T) {
		s := Aggregate(nil)
		assert.Equal(t, Summary{}, s)
	})

	t.Run("totals are exact sums of lines", func(t *testing.T) {
		lines := []Line{
			PriceLine(10000, 18, 2),
			PriceLine(50000, 12, 1),
			PriceLine(99, 5, 7),
		}
		s := Aggregate(lines)

		var wantSubtotal, wantTax int64
		for _, l := range lines {
			wantSubtotal += l.Subtotal
			wantTax += l.Tax
		}
		assert.Equal(t, wantSubtotal, s.Subtotal)
		assert.Equal(t, wantTax, s.TotalTax)
		assert.Equal(t, s.Subtotal+s.TotalTax, s.TotalAmount)
	})

	t.Run("identity holds for many lines", func(t *testing.T) {
		var lines []Line
		for i := 1; i <= 500; i++ {
			lines = append(lines, PriceLine(int64(i)*7, 13.5, i%9+1))
		}
		s := Aggregate(lines)
		assert.Equal(t, s.Subtotal+s.TotalTax, s.TotalAmount)
	})
}
