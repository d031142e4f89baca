package domain

import "fmt"

// Extreme is the value found by FindMin or FindMax and its position in the
// input sequence.
type Extreme struct {
	Value float64 `json:"value"`
	Index int     `json:"index"`
}

// CalculateMean returns the unrounded arithmetic mean of values.
func CalculateMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("calculate mean of empty sequence: %w", ErrInvalidArgument)
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), nil
}

// FindMin returns the smallest value and its index. When the minimum occurs
// more than once the last occurrence wins. The bool is false for empty input.
func FindMin(values []float64) (Extreme, bool) {
	return findExtreme(values, func(candidate, current float64) bool { return candidate <= current })
}

// FindMax returns the largest value and its index. When the maximum occurs
// more than once the last occurrence wins. The bool is false for empty input.
func FindMax(values []float64) (Extreme, bool) {
	return findExtreme(values, func(candidate, current float64) bool { return candidate >= current })
}

// findExtreme scans left to right and replaces the running extreme whenever
// replace reports true. Non-strict comparisons give tie-break-to-last.
func findExtreme(values []float64, replace func(candidate, current float64) bool) (Extreme, bool) {
	if len(values) == 0 {
		return Extreme{}, false
	}
	best := Extreme{Value: values[0], Index: 0}
	for i := 1; i < len(values); i++ {
		if replace(values[i], best.Value) {
			best = Extreme{Value: values[i], Index: i}
		}
	}
	return best, true
}
