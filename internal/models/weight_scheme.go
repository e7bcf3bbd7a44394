package models

import (
	"strconv"
)

// WeightKind identifies how a lift's working weight is derived.
type WeightKind int

const (
	// WeightNone means the lift has no weight concept (bodyweight reps).
	WeightNone WeightKind = iota
	// WeightBasedOnReference derives the weight from the program's reference weight.
	WeightBasedOnReference
	// WeightAny leaves the weight to the lifter.
	WeightAny
	// WeightLinear tracks the weight per lift and adds a fixed amount on success.
	WeightLinear
)

// WeightScheme describes how a lift's working weight is computed. The zero
// value is the None scheme.
type WeightScheme struct {
	Kind             WeightKind
	Multiplier       float64
	Offset           int
	AmountToIncrease int
}

// BasedOnReference returns a scheme computing multiplier*reference + offset.
func BasedOnReference(multiplier float64, offset int) WeightScheme {
	return WeightScheme{Kind: WeightBasedOnReference, Multiplier: multiplier, Offset: offset}
}

// AnyWeight returns the lifter's-choice scheme.
func AnyWeight() WeightScheme {
	return WeightScheme{Kind: WeightAny}
}

// NoWeight returns the scheme for lifts without a weight.
func NoWeight() WeightScheme {
	return WeightScheme{}
}

// LinearBasedOnPrevious returns a scheme that ratchets up by amount on success.
func LinearBasedOnPrevious(amount int) WeightScheme {
	return WeightScheme{Kind: WeightLinear, AmountToIncrease: amount}
}

// String formats the scheme in notation form. None formats as "".
func (w WeightScheme) String() string {
	switch w.Kind {
	case WeightBasedOnReference:
		m := strconv.FormatFloat(w.Multiplier, 'f', -1, 64)
		switch {
		case w.Offset > 0:
			return m + "r+" + strconv.Itoa(w.Offset)
		case w.Offset == 0:
			return m + "r"
		default:
			return m + "r" + strconv.Itoa(w.Offset)
		}
	case WeightAny:
		return "any"
	case WeightLinear:
		return "add" + strconv.Itoa(w.AmountToIncrease)
	default:
		return ""
	}
}
