// Package change computes cash denomination breakdowns for returning
// balance to a customer. Amounts and denomination values are expressed in
// minor currency units (cents).
package change

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Breakdown maps a denomination value (in cents) to the number of notes or
// coins of that denomination to hand back.
type Breakdown map[int64]int

// Resolve splits amount into denominations using a greedy walk from the
// largest available denomination down. It returns the breakdown together
// with the residual amount that no available denomination could cover.
//
// The greedy allocation is not coin-optimal for arbitrary denomination
// sets, only for canonical ones where each step divides evenly. Callers
// rely on this exact behavior, so do not substitute a search-based
// change-making algorithm here.
//
// The residual is dropped from the breakdown rather than reported as an
// error; stricter callers can inspect it and decide for themselves.
func Resolve(amount int64, denominations []int64) (Breakdown, int64) {
	breakdown := make(Breakdown)
	if amount <= 0 || len(denominations) == 0 {
		return breakdown, max64(amount, 0)
	}

	sorted := make([]int64, 0, len(denominations))
	for _, d := range denominations {
		if d > 0 {
			sorted = append(sorted, d)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	remaining := amount
	for _, denom := range sorted {
		if remaining < denom {
			continue
		}
		count := remaining / denom
		breakdown[denom] = int(count)
		remaining -= count * denom
	}

	return breakdown, remaining
}

// Total returns the reconstructed value of the breakdown in cents.
func (b Breakdown) Total() int64 {
	var total int64
	for denom, count := range b {
		total += denom * int64(count)
	}
	return total
}

// Encode serializes the breakdown as a JSON object keyed by the decimal
// denomination value, e.g. {"50":1,"0.5":2}. This is the format persisted
// on the bill record.
func (b Breakdown) Encode() (string, error) {
	out := make(map[string]int, len(b))
	for denom, count := range b {
		out[FormatValue(denom)] = count
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a breakdown previously produced by Encode. An empty string
// decodes to an empty breakdown.
func Decode(s string) (Breakdown, error) {
	breakdown := make(Breakdown)
	if s == "" {
		return breakdown, nil
	}
	var raw map[string]int
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	for key, count := range raw {
		value, err := ParseValue(key)
		if err != nil {
			return nil, err
		}
		breakdown[value] = count
	}
	return breakdown, nil
}

// Format renders the breakdown for display, largest denomination first,
// e.g. "50 x 1, 10 x 1, 2 x 2".
func (b Breakdown) Format() string {
	if len(b) == 0 {
		return "No denominations"
	}

	denoms := make([]int64, 0, len(b))
	for denom := range b {
		denoms = append(denoms, denom)
	}
	sort.Slice(denoms, func(i, j int) bool { return denoms[i] > denoms[j] })

	parts := make([]string, 0, len(denoms))
	for _, denom := range denoms {
		if b[denom] > 0 {
			parts = append(parts, FormatValue(denom)+" x "+strconv.Itoa(b[denom]))
		}
	}
	if len(parts) == 0 {
		return "No denominations"
	}
	return strings.Join(parts, ", ")
}

// FormatValue renders a cent amount as a decimal string without trailing
// zeros ("5000" cents -> "50", "50" cents -> "0.5").
func FormatValue(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', -1, 64)
}

// ParseValue parses a decimal value string back into cents.
func ParseValue(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f >= 0 {
		return int64(f*100 + 0.5), nil
	}
	return int64(f*100 - 0.5), nil
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
