package program

import (
	"errors"
	"slices"
	"testing"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/notation"
)

func startGZCL(t *testing.T, reference int) Program {
	t.Helper()
	p, err := Start(GZCL4Day, reference)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return p
}

func results(n int, r models.LiftAttemptResult) []models.LiftAttemptResult {
	out := make([]models.LiftAttemptResult, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func completeDay(t *testing.T, p Program, r models.LiftAttemptResult) Program {
	t.Helper()
	next, err := p.CompleteWorkout(results(len(p.Today().Lifts), r))
	if err != nil {
		t.Fatalf("CompleteWorkout: %v", err)
	}
	return next
}

// TestStart verifies a fresh program begins at day zero with both reference
// weights equal and linear lifts seeded.
func TestStart(t *testing.T) {
	p := startGZCL(t, 100)
	if p.Name != "GZCL-based 4-day cycle" {
		t.Errorf("Name = %q, want %q", p.Name, "GZCL-based 4-day cycle")
	}
	if p.ReferenceWeight != 100 || p.StartingReferenceWeight != 100 {
		t.Errorf("reference = %d/%d, want 100/100", p.ReferenceWeight, p.StartingReferenceWeight)
	}
	if p.CurrentDay != 0 || p.WorkoutsCompleted != 0 {
		t.Errorf("day/completed = %d/%d, want 0/0", p.CurrentDay, p.WorkoutsCompleted)
	}
	if len(p.Days) != 4 {
		t.Fatalf("days = %d, want 4", len(p.Days))
	}
	if p.ID == "" {
		t.Error("ID not assigned")
	}
	// Face Pull, Cable Curl, Tricep Cable Pressdown, Leg press, calf raise
	if len(p.Weights) != 5 {
		t.Errorf("seeded weights = %d, want 5", len(p.Weights))
	}
	for key, w := range p.Weights {
		if w != GZCL4Day.InitialLinearWeight {
			t.Errorf("weights[%q] = %d, want %d", key, w, GZCL4Day.InitialLinearWeight)
		}
	}

	if _, err := Start(GZCL4Day, -5); !errors.Is(err, ErrInvalidProgram) {
		t.Errorf("Start(-5) error = %v, want ErrInvalidProgram", err)
	}
}

// TestNextWorkoutResolvesWeights verifies the prescribed weights of the first
// day at reference 100.
func TestNextWorkoutResolvesWeights(t *testing.T) {
	attempts := startGZCL(t, 100).NextWorkout()
	want := []string{
		"Weighted Pullup -> 4x3,1x3+ @ 20",
		"Pullup -> 3x7+",
		"Barbell Row -> 3x10 @ 65",
		"Face Pull -> 2x15,1x15-25 @ 30",
		"Cable Curl -> 2x15,1x15-25 @ 30",
	}
	if len(attempts) != len(want) {
		t.Fatalf("attempts = %d, want %d", len(attempts), len(want))
	}
	for i, a := range attempts {
		if got := a.String(); got != want[i] {
			t.Errorf("attempt %d = %q, want %q", i, got, want[i])
		}
	}
	if attempts[0].Weight == nil || *attempts[0].Weight != 100 {
		t.Errorf("reference attempt carries %v, want raw reference 100", attempts[0].Weight)
	}
	if attempts[1].Weight != nil {
		t.Errorf("unweighted attempt carries %v, want nil", *attempts[1].Weight)
	}
}

// TestNextWorkoutUnrecordedLinearLift verifies a linear lift with no tracked
// weight resolves to nil and prints as "any".
func TestNextWorkoutUnrecordedLinearLift(t *testing.T) {
	day, err := notation.ParseDay("Arms | Curl -> 3x10 @ add5 | Dips -> 3x8 @ any")
	if err != nil {
		t.Fatal(err)
	}
	p := Program{Name: "arms", Days: []models.Day{day}, ReferenceWeight: 50}
	attempts := p.NextWorkout()
	for i, a := range attempts {
		if a.Weight != nil {
			t.Errorf("attempt %d weight = %d, want nil", i, *a.Weight)
		}
	}
	if got := attempts[0].String(); got != "Curl -> 3x10 @ any" {
		t.Errorf("attempt = %q, want %q", got, "Curl -> 3x10 @ any")
	}
}

// TestCompleteWorkoutAdvancesDay verifies one completion moves to the next
// day, and a full cycle returns to the starting day.
func TestCompleteWorkoutAdvancesDay(t *testing.T) {
	p := startGZCL(t, 100)
	p = completeDay(t, p, models.NotCompleted)
	if p.CurrentDay != 1 || p.WorkoutsCompleted != 1 {
		t.Fatalf("day/completed = %d/%d, want 1/1", p.CurrentDay, p.WorkoutsCompleted)
	}
	if got := p.Today().Name; got != "Push" {
		t.Errorf("today = %q, want Push", got)
	}

	start := p.CurrentDay
	for range len(p.Days) {
		p = completeDay(t, p, models.Completed(false))
	}
	if p.CurrentDay != start {
		t.Errorf("after a cycle day = %d, want %d", p.CurrentDay, start)
	}
	if p.WorkoutsCompleted != 1+len(p.Days) {
		t.Errorf("completed = %d, want %d", p.WorkoutsCompleted, 1+len(p.Days))
	}
}

// TestPerfectCycleRaisesReference covers the 100 -> 105 scenario: four days
// all Completed+MaxReps.
func TestPerfectCycleRaisesReference(t *testing.T) {
	p := startGZCL(t, 100)
	for range 4 {
		p = completeDay(t, p, models.Completed(true))
	}
	if p.ReferenceWeight != 105 {
		t.Errorf("reference = %d, want 105", p.ReferenceWeight)
	}
	if p.StartingReferenceWeight != 100 {
		t.Errorf("starting reference = %d, want 100", p.StartingReferenceWeight)
	}
	if p.WorkoutsCompleted != 4 || p.CurrentDay != 0 {
		t.Errorf("completed/day = %d/%d, want 4/0", p.WorkoutsCompleted, p.CurrentDay)
	}

	attempts := p.NextWorkout()
	if got := attempts[0].String(); got != "Weighted Pullup -> 4x3,1x3+ @ 25" {
		t.Errorf("next cycle first attempt = %q, want %q", got, "Weighted Pullup -> 4x3,1x3+ @ 25")
	}
}

// TestReferenceOnlyChangesAtCycleClose verifies the reference weight is left
// alone before the last day.
func TestReferenceOnlyChangesAtCycleClose(t *testing.T) {
	p := startGZCL(t, 100)
	for range 3 {
		p = completeDay(t, p, models.Completed(true))
		if p.ReferenceWeight != 100 {
			t.Fatalf("mid-cycle ReferenceWeight = %d, want 100", p.ReferenceWeight)
		}
	}
}

// TestSingleMissBlocksReferenceIncrease verifies one NotCompleted reference
// lift anywhere in the cycle keeps the reference weight.
func TestSingleMissBlocksReferenceIncrease(t *testing.T) {
	for _, miss := range []models.LiftAttemptResult{models.NotCompleted, models.Completed(false)} {
		p := startGZCL(t, 100)
		for day := range 4 {
			r := results(len(p.Today().Lifts), models.Completed(true))
			if day == 2 {
				r[1] = miss // Deadlift @ 1.25r
			}
			next, err := p.CompleteWorkout(r)
			if err != nil {
				t.Fatal(err)
			}
			p = next
		}
		if p.ReferenceWeight != 100 {
			t.Errorf("miss %v: reference = %d, want 100", miss, p.ReferenceWeight)
		}
	}
}

// TestMissOnNonReferenceLiftDoesNotBlock verifies only reference-based lifts
// are considered at cycle close.
func TestMissOnNonReferenceLiftDoesNotBlock(t *testing.T) {
	p := startGZCL(t, 100)
	for day := range 4 {
		r := results(len(p.Today().Lifts), models.Completed(true))
		if day == 0 {
			r[1] = models.NotCompleted // Pullup, no weight scheme
		}
		next, err := p.CompleteWorkout(r)
		if err != nil {
			t.Fatal(err)
		}
		p = next
	}
	if p.ReferenceWeight != 105 {
		t.Errorf("reference = %d, want 105", p.ReferenceWeight)
	}
}

// TestLinearWeightRatchet verifies a linear lift gains its increment only on
// Completed+MaxReps.
func TestLinearWeightRatchet(t *testing.T) {
	p := startGZCL(t, 100)
	facePull := p.Days[0].Lifts[3]
	cableCurl := p.Days[0].Lifts[4]

	r := results(5, models.Completed(true))
	r[4] = models.Completed(false)
	next, err := p.CompleteWorkout(r)
	if err != nil {
		t.Fatal(err)
	}
	if w, _ := next.WeightFor(facePull); w != 50 {
		t.Errorf("face pull = %d, want 50", w)
	}
	if w, _ := next.WeightFor(cableCurl); w != 30 {
		t.Errorf("cable curl = %d, want 30", w)
	}
	if w, _ := p.WeightFor(facePull); w != 30 {
		t.Errorf("original program mutated: face pull = %d, want 30", w)
	}
}

// TestLinearWeightInsertedWhenAbsent verifies an untracked linear lift starts
// from zero.
func TestLinearWeightInsertedWhenAbsent(t *testing.T) {
	day, err := notation.ParseDay("Arms | Curl -> 3x10 @ add5")
	if err != nil {
		t.Fatal(err)
	}
	p := Program{Name: "arms", Days: []models.Day{day}}
	next, err := p.CompleteWorkout([]models.LiftAttemptResult{models.Completed(true)})
	if err != nil {
		t.Fatal(err)
	}
	if w, ok := next.WeightFor(day.Lifts[0]); !ok || w != 5 {
		t.Errorf("curl = %d (ok=%v), want 5", w, ok)
	}
}

// TestCompleteWorkoutIsValueToValue verifies the input program is unchanged
// after a transition.
func TestCompleteWorkoutIsValueToValue(t *testing.T) {
	p := startGZCL(t, 100)
	before := p.Clone()
	if _, err := p.CompleteWorkout(results(5, models.Completed(true))); err != nil {
		t.Fatal(err)
	}
	if !p.Equal(before) {
		t.Error("CompleteWorkout mutated its receiver")
	}
}

// TestCompleteWorkoutRecordsResults verifies results are stored by day index
// and the slice grows as days are visited.
func TestCompleteWorkoutRecordsResults(t *testing.T) {
	p := startGZCL(t, 100)
	r := results(5, models.Completed(false))
	r[0] = models.NotCompleted
	p, err := p.CompleteWorkout(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.CurrentCycleAttemptResults) != 1 {
		t.Fatalf("recorded days = %d, want 1", len(p.CurrentCycleAttemptResults))
	}
	if !slices.Equal(p.CurrentCycleAttemptResults[0], r) {
		t.Errorf("recorded = %v, want %v", p.CurrentCycleAttemptResults[0], r)
	}
	r[1] = models.NotCompleted
	if p.CurrentCycleAttemptResults[0][1] != models.Completed(false) {
		t.Error("recorded results alias the caller's slice")
	}
}

// TestCompleteWorkoutPrecondition verifies a result count that does not match
// today's lifts is rejected.
func TestCompleteWorkoutPrecondition(t *testing.T) {
	p := startGZCL(t, 100)
	for _, n := range []int{0, 4, 6} {
		if _, err := p.CompleteWorkout(results(n, models.Completed(true))); !errors.Is(err, ErrPreconditionViolation) {
			t.Errorf("%d results: error = %v, want ErrPreconditionViolation", n, err)
		}
	}
}

// TestStaleResultsCountAtCycleClose pins the behaviour that results are not
// reset between cycles: a day that was not redone in this cycle is judged by
// its results from the previous one.
func TestStaleResultsCountAtCycleClose(t *testing.T) {
	p := startGZCL(t, 100)
	for range 4 {
		p = completeDay(t, p, models.Completed(true))
	}
	if p.ReferenceWeight != 105 {
		t.Fatalf("reference = %d, want 105", p.ReferenceWeight)
	}

	// Jump straight to the last day as a restored save file could.
	p.CurrentDay = len(p.Days) - 1
	p = completeDay(t, p, models.Completed(true))
	if p.ReferenceWeight != 110 {
		t.Errorf("reference = %d, want 110 from stale perfect results", p.ReferenceWeight)
	}

	// And stale misses block the increase the same way.
	p.CurrentCycleAttemptResults[1][0] = models.NotCompleted
	p.CurrentDay = len(p.Days) - 1
	p = completeDay(t, p, models.Completed(true))
	if p.ReferenceWeight != 110 {
		t.Errorf("reference = %d, want 110 with a stale miss", p.ReferenceWeight)
	}
}

// TestValidate verifies the structural invariants.
func TestValidate(t *testing.T) {
	p := startGZCL(t, 100)
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	bad := []Program{
		{},
		func() Program { q := p.Clone(); q.CurrentDay = 4; return q }(),
		func() Program { q := p.Clone(); q.CurrentDay = -1; return q }(),
		func() Program { q := p.Clone(); q.ReferenceWeight = -1; return q }(),
		func() Program {
			q := p.Clone()
			for k := range q.Weights {
				q.Weights[k] = -3
				break
			}
			return q
		}(),
	}
	for i, q := range bad {
		if err := q.Validate(); !errors.Is(err, ErrInvalidProgram) {
			t.Errorf("case %d: error = %v, want ErrInvalidProgram", i, err)
		}
	}
}

// TestLookupTemplate verifies the registry.
func TestLookupTemplate(t *testing.T) {
	tmpl, err := LookupTemplate("gzcl-4day")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Name != GZCL4Day.Name {
		t.Errorf("Name = %q, want %q", tmpl.Name, GZCL4Day.Name)
	}
	if _, err := LookupTemplate("5x5"); err == nil {
		t.Error("expected error for unknown template")
	}
	if keys := TemplateKeys(); !slices.Equal(keys, []string{"gzcl-4day"}) {
		t.Errorf("TemplateKeys = %v, want [gzcl-4day]", keys)
	}
}
