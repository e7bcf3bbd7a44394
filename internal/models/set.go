package models

import (
	"strconv"
	"time"
)

// SetKind identifies which rep target a Set prescribes.
type SetKind int

const (
	// SetDefined is an exact rep count ("5").
	SetDefined SetKind = iota
	// SetAmrap is as-many-reps-as-possible with a floor ("5+").
	SetAmrap
	// SetRange is a rep range ("8-12").
	SetRange
	// SetAny has no rep target ("Any").
	SetAny
	// SetTime is a timed hold ("30s").
	SetTime
)

// Set is one prescribed set. Only the fields relevant to Kind are set, so
// two Sets compare equal with == exactly when they prescribe the same thing.
type Set struct {
	Kind        SetKind
	Reps        int
	MinimumReps int
	MaximumReps int
	Duration    time.Duration
}

// Defined returns a set of exactly reps repetitions.
func Defined(reps int) Set {
	return Set{Kind: SetDefined, Reps: reps}
}

// Amrap returns an as-many-reps-as-possible set with the given floor.
func Amrap(minimumReps int) Set {
	return Set{Kind: SetAmrap, MinimumReps: minimumReps}
}

// Range returns a set targeting between minimumReps and maximumReps.
func Range(minimumReps, maximumReps int) Set {
	return Set{Kind: SetRange, MinimumReps: minimumReps, MaximumReps: maximumReps}
}

// AnySet returns a set with no rep target.
func AnySet() Set {
	return Set{Kind: SetAny}
}

// Timed returns a timed hold. Durations are kept at whole-second granularity.
func Timed(d time.Duration) Set {
	return Set{Kind: SetTime, Duration: d.Truncate(time.Second)}
}

// String formats the set in notation form.
func (s Set) String() string {
	switch s.Kind {
	case SetAmrap:
		return strconv.Itoa(s.MinimumReps) + "+"
	case SetRange:
		return strconv.Itoa(s.MinimumReps) + "-" + strconv.Itoa(s.MaximumReps)
	case SetAny:
		return "Any"
	case SetTime:
		return strconv.FormatInt(int64(s.Duration/time.Second), 10) + "s"
	default:
		return strconv.Itoa(s.Reps)
	}
}
