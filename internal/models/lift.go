package models

import (
	"strconv"
	"strings"
)

// Lift is a prescribed exercise: a name, an ordered list of sets and a
// weight scheme.
type Lift struct {
	Name   string
	Sets   []Set
	Weight WeightScheme
}

// Equal reports whether two lifts have the same name, sets in order and
// weight scheme.
func (l Lift) Equal(other Lift) bool {
	if l.Name != other.Name || l.Weight != other.Weight || len(l.Sets) != len(other.Sets) {
		return false
	}
	for i := range l.Sets {
		if l.Sets[i] != other.Sets[i] {
			return false
		}
	}
	return true
}

// Key returns the canonical notation used to look up per-lift state.
func (l Lift) Key() string {
	return l.String()
}

// HasRepRange reports whether any set of the lift is a rep range.
func (l Lift) HasRepRange() bool {
	for _, s := range l.Sets {
		if s.Kind == SetRange {
			return true
		}
	}
	return false
}

// String formats the lift as "name -> sets" or "name -> sets @ weight".
func (l Lift) String() string {
	if l.Weight.Kind == WeightNone {
		return l.Name + " -> " + FormatSets(l.Sets)
	}
	return l.Name + " -> " + FormatSets(l.Sets) + " @ " + l.Weight.String()
}

// FormatSets run-length encodes adjacent equal sets: [5 5 5-7 5+] becomes
// "2x5,1x5-7,1x5+". Non-adjacent runs are not merged.
func FormatSets(sets []Set) string {
	type run struct {
		count int
		set   Set
	}
	var runs []run
	for _, s := range sets {
		if n := len(runs); n > 0 && runs[n-1].set == s {
			runs[n-1].count++
			continue
		}
		runs = append(runs, run{count: 1, set: s})
	}

	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		parts = append(parts, strconv.Itoa(r.count)+"x"+r.set.String())
	}
	return strings.Join(parts, ",")
}
