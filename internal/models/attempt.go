package models

import "strconv"

// ResultKind distinguishes a completed attempt from a missed one.
type ResultKind int

const (
	// ResultNotCompleted means the lifter did not complete the prescription.
	ResultNotCompleted ResultKind = iota
	// ResultCompleted means the prescription was completed.
	ResultCompleted
)

// LiftAttemptResult is the outcome of a single LiftAttempt.
// CompletedMaximumReps is only meaningful when Kind is ResultCompleted.
type LiftAttemptResult struct {
	Kind                 ResultKind
	CompletedMaximumReps bool
}

// NotCompleted is the result of a missed attempt.
var NotCompleted = LiftAttemptResult{Kind: ResultNotCompleted}

// Completed returns the result of a completed attempt.
func Completed(maximumReps bool) LiftAttemptResult {
	return LiftAttemptResult{Kind: ResultCompleted, CompletedMaximumReps: maximumReps}
}

// IsCompletedWithMaximumReps reports whether the attempt was completed at the
// top of its rep target. Only such results drive progression.
func (r LiftAttemptResult) IsCompletedWithMaximumReps() bool {
	return r.Kind == ResultCompleted && r.CompletedMaximumReps
}

// String formats the result as "NotCompleted", "Completed" or "Completed+MaxReps".
func (r LiftAttemptResult) String() string {
	switch r.Kind {
	case ResultCompleted:
		if r.CompletedMaximumReps {
			return "Completed+MaxReps"
		}
		return "Completed"
	default:
		return "NotCompleted"
	}
}

// LiftAttempt is a lift with a resolved weight. Weight is nil when the
// lift's scheme does not resolve one.
type LiftAttempt struct {
	Lift   Lift
	Weight *int
}

// String formats the attempt for display, turning the scheme into a concrete
// weight where one can be computed.
func (a LiftAttempt) String() string {
	prefix := a.Lift.Name + " -> " + FormatSets(a.Lift.Sets)
	switch a.Lift.Weight.Kind {
	case WeightNone:
		return prefix
	case WeightBasedOnReference:
		if a.Weight == nil {
			return prefix + " @ any"
		}
		w := ReferenceWeight(a.Lift.Weight.Multiplier, a.Lift.Weight.Offset, *a.Weight)
		return prefix + " @ " + strconv.Itoa(w)
	default:
		// Any and LinearBasedOnPrevious show the tracked weight when there is one.
		if a.Weight == nil {
			return prefix + " @ any"
		}
		return prefix + " @ " + strconv.Itoa(RoundUpToNearest5(*a.Weight))
	}
}
