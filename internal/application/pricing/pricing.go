// Package pricing computes line-item and aggregate bill figures. All
// monetary values are in minor currency units (cents), so summation over
// any number of lines is exact.
package pricing

import "math"

// Line holds the computed figures for a single bill line.
type Line struct {
	Quantity      int
	UnitPrice     int64
	TaxPercentage float64
	Subtotal      int64
	Tax           int64
	Total         int64
}

// Summary holds the aggregate figures for a bill.
type Summary struct {
	Subtotal    int64
	TotalTax    int64
	TotalAmount int64
}

// PriceLine computes a single line: subtotal = unit price x quantity,
// tax = subtotal x (percentage / 100) rounded to the nearest cent.
func PriceLine(unitPrice int64, taxPercentage float64, quantity int) Line {
	subtotal := unitPrice * int64(quantity)
	tax := int64(math.Round(float64(subtotal) * taxPercentage / 100))
	return Line{
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TaxPercentage: taxPercentage,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
	}
}

// Aggregate sums line figures into bill totals. The identity
// TotalAmount == Subtotal + TotalTax holds for any number of lines.
func Aggregate(lines []Line) Summary {
	var s Summary
	for _, line := range lines {
		s.Subtotal += line.Subtotal
		s.TotalTax += line.Tax
	}
	s.TotalAmount = s.Subtotal + s.TotalTax
	return s
}
