// Package program holds the Program aggregate and the progression engine that
// moves it from one training day to the next.
package program

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/claude/yawa/internal/models"
)

// ReferenceIncrement is added to the reference weight after a perfect cycle.
const ReferenceIncrement = 5

var (
	// ErrPreconditionViolation means the caller passed results that do not
	// line up with the current day's lifts.
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrInvalidProgram means a program value breaks its own invariants.
	ErrInvalidProgram = errors.New("invalid program")
)

// Program is a cyclic training program and its progression state.
//
// Weights is keyed by a lift's canonical notation (models.Lift.Key) and only
// holds lifts with a LinearBasedOnPrevious scheme. CurrentCycleAttemptResults
// is indexed by day and grows as days are completed; it is never cleared at
// cycle boundaries.
type Program struct {
	ID                         string
	Name                       string
	Days                       []models.Day
	ReferenceWeight            int
	StartingReferenceWeight    int
	Weights                    map[string]int
	CurrentDay                 int
	CurrentCycleAttemptResults [][]models.LiftAttemptResult
	WorkoutsCompleted          int
	StartedAt                  time.Time
}

// Validate checks the structural invariants of a program.
func (p Program) Validate() error {
	if len(p.Days) == 0 {
		return fmt.Errorf("%w: no days", ErrInvalidProgram)
	}
	if p.CurrentDay < 0 || p.CurrentDay >= len(p.Days) {
		return fmt.Errorf("%w: current day %d outside 0..%d", ErrInvalidProgram, p.CurrentDay, len(p.Days)-1)
	}
	if p.ReferenceWeight < 0 || p.StartingReferenceWeight < 0 {
		return fmt.Errorf("%w: negative reference weight", ErrInvalidProgram)
	}
	if p.WorkoutsCompleted < 0 {
		return fmt.Errorf("%w: negative workouts completed", ErrInvalidProgram)
	}
	for key, w := range p.Weights {
		if w < 0 {
			return fmt.Errorf("%w: negative weight %d for %q", ErrInvalidProgram, w, key)
		}
	}
	return nil
}

// Today returns the day the next workout is taken from.
func (p Program) Today() models.Day {
	return p.Days[p.CurrentDay]
}

// WeightFor returns the independently tracked weight of a lift.
func (p Program) WeightFor(lift models.Lift) (int, bool) {
	w, ok := p.Weights[lift.Key()]
	return w, ok
}

// Clone returns a deep copy, so the copy can be changed without touching p.
func (p Program) Clone() Program {
	out := p

	out.Days = make([]models.Day, len(p.Days))
	for i, d := range p.Days {
		lifts := make([]models.Lift, len(d.Lifts))
		for j, l := range d.Lifts {
			l.Sets = append([]models.Set(nil), l.Sets...)
			lifts[j] = l
		}
		out.Days[i] = models.Day{Name: d.Name, Lifts: lifts}
	}

	out.Weights = make(map[string]int, len(p.Weights))
	maps.Copy(out.Weights, p.Weights)

	out.CurrentCycleAttemptResults = make([][]models.LiftAttemptResult, len(p.CurrentCycleAttemptResults))
	for i, r := range p.CurrentCycleAttemptResults {
		out.CurrentCycleAttemptResults[i] = append([]models.LiftAttemptResult(nil), r...)
	}
	return out
}

// Equal reports whether two programs hold the same state.
func (p Program) Equal(other Program) bool {
	if p.ID != other.ID || p.Name != other.Name ||
		p.ReferenceWeight != other.ReferenceWeight ||
		p.StartingReferenceWeight != other.StartingReferenceWeight ||
		p.CurrentDay != other.CurrentDay ||
		p.WorkoutsCompleted != other.WorkoutsCompleted ||
		!p.StartedAt.Equal(other.StartedAt) {
		return false
	}
	if len(p.Days) != len(other.Days) {
		return false
	}
	for i := range p.Days {
		if !p.Days[i].Equal(other.Days[i]) {
			return false
		}
	}
	if !maps.Equal(p.Weights, other.Weights) {
		return false
	}
	if len(p.CurrentCycleAttemptResults) != len(other.CurrentCycleAttemptResults) {
		return false
	}
	for i := range p.CurrentCycleAttemptResults {
		a, b := p.CurrentCycleAttemptResults[i], other.CurrentCycleAttemptResults[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
