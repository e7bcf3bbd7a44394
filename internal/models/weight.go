package models

import (
	"errors"
	"math"
)

// ErrNotation is the root of every notation parse failure.
var ErrNotation = errors.New("invalid notation")

// RoundUpToNearest5 rounds x up to the next multiple of 5. Negative input
// clamps to 0.
func RoundUpToNearest5(x int) int {
	if x <= 0 {
		return 0
	}
	if r := x % 5; r != 0 {
		return x + (5 - r)
	}
	return x
}

// ReferenceWeight computes the working weight of a reference-based lift:
// ceil(multiplier*reference + offset), clamped at zero and rounded up to
// the nearest 5.
func ReferenceWeight(multiplier float64, offset, reference int) int {
	// The explicit conversion keeps the product rounded before the add.
	raw := math.Ceil(float64(multiplier*float64(reference)) + float64(offset))
	if raw < 0 || math.IsNaN(raw) {
		return 0
	}
	return RoundUpToNearest5(int(raw))
}
