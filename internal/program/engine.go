package program

import (
	"fmt"

	"github.com/claude/yawa/internal/models"
)

// NextWorkout resolves today's lifts into attempts. Reference-based lifts
// carry the raw reference weight; the multiplier and offset are applied when
// the attempt is formatted.
func (p Program) NextWorkout() []models.LiftAttempt {
	day := p.Today()
	attempts := make([]models.LiftAttempt, 0, len(day.Lifts))
	for _, lift := range day.Lifts {
		attempt := models.LiftAttempt{Lift: lift}
		switch lift.Weight.Kind {
		case models.WeightBasedOnReference:
			w := p.ReferenceWeight
			attempt.Weight = &w
		case models.WeightLinear:
			if w, ok := p.WeightFor(lift); ok {
				attempt.Weight = &w
			}
		case models.WeightAny, models.WeightNone:
		}
		attempts = append(attempts, attempt)
	}
	return attempts
}

// CompleteWorkout records results for today and returns the program as it
// stands afterwards. results must line up with today's lifts. p is left
// untouched.
func (p Program) CompleteWorkout(results []models.LiftAttemptResult) (Program, error) {
	day := p.Today()
	if len(results) != len(day.Lifts) {
		return Program{}, fmt.Errorf("%w: %d results for %d lifts on day %q",
			ErrPreconditionViolation, len(results), len(day.Lifts), day.Name)
	}

	next := p.Clone()
	next.recordResults(results)
	next.ratchetLinearWeights(day, results)
	if next.CurrentDay == len(next.Days)-1 && next.cycleWasPerfect() {
		next.ReferenceWeight += ReferenceIncrement
	}
	next.WorkoutsCompleted++
	next.CurrentDay = (next.CurrentDay + 1) % len(next.Days)
	return next, nil
}

func (p *Program) recordResults(results []models.LiftAttemptResult) {
	for len(p.CurrentCycleAttemptResults) <= p.CurrentDay {
		p.CurrentCycleAttemptResults = append(p.CurrentCycleAttemptResults, nil)
	}
	p.CurrentCycleAttemptResults[p.CurrentDay] = append([]models.LiftAttemptResult(nil), results...)
}

func (p *Program) ratchetLinearWeights(day models.Day, results []models.LiftAttemptResult) {
	if p.Weights == nil {
		p.Weights = make(map[string]int)
	}
	for i, lift := range day.Lifts {
		if lift.Weight.Kind != models.WeightLinear || !results[i].IsCompletedWithMaximumReps() {
			continue
		}
		key := lift.Key()
		p.Weights[key] = p.Weights[key] + lift.Weight.AmountToIncrease
	}
}

// cycleWasPerfect reports whether every reference-based lift of every day has
// a Completed+MaxReps result. Results come from the last time each day was
// completed, which may be a previous cycle if a day was never reached in this
// one.
func (p Program) cycleWasPerfect() bool {
	for d, day := range p.Days {
		for i, lift := range day.Lifts {
			if lift.Weight.Kind != models.WeightBasedOnReference {
				continue
			}
			if d >= len(p.CurrentCycleAttemptResults) || i >= len(p.CurrentCycleAttemptResults[d]) {
				return false
			}
			if !p.CurrentCycleAttemptResults[d][i].IsCompletedWithMaximumReps() {
				return false
			}
		}
	}
	return true
}
