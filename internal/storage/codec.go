package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/notation"
	"github.com/claude/yawa/internal/program"
)

// programJSON is the on-disk shape of a program. Days, weights keys and
// results are stored in notation so the file stays readable and editable.
type programJSON struct {
	ID                      string         `json:"id,omitempty"`
	Name                    string         `json:"name"`
	ReferenceWeight         int            `json:"reference_weight"`
	StartingReferenceWeight int            `json:"starting_reference_weight"`
	WorkoutsCompleted       int            `json:"workouts_completed"`
	DaysInNotation          []string       `json:"days_in_notation"`
	Weights                 map[string]int `json:"weights"`
	CurrentDay              int            `json:"current_day"`
	PastAttemptResults      [][]string     `json:"past_attempt_results_in_notation"`
	StartedAt               *time.Time     `json:"started_at,omitempty"`
}

// MarshalProgram encodes p as indented JSON.
func MarshalProgram(p program.Program) ([]byte, error) {
	doc := programJSON{
		ID:                      p.ID,
		Name:                    p.Name,
		ReferenceWeight:         p.ReferenceWeight,
		StartingReferenceWeight: p.StartingReferenceWeight,
		WorkoutsCompleted:       p.WorkoutsCompleted,
		DaysInNotation:          make([]string, len(p.Days)),
		Weights:                 p.Weights,
		CurrentDay:              p.CurrentDay,
		PastAttemptResults:      make([][]string, len(p.CurrentCycleAttemptResults)),
	}
	if doc.Weights == nil {
		doc.Weights = map[string]int{}
	}
	for i, d := range p.Days {
		doc.DaysInNotation[i] = d.String()
	}
	for i, day := range p.CurrentCycleAttemptResults {
		doc.PastAttemptResults[i] = make([]string, len(day))
		for j, r := range day {
			doc.PastAttemptResults[i][j] = r.String()
		}
	}
	if !p.StartedAt.IsZero() {
		t := p.StartedAt
		doc.StartedAt = &t
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding program: %w", err)
	}
	return data, nil
}

// UnmarshalProgram decodes and validates a program written by MarshalProgram.
func UnmarshalProgram(data []byte) (program.Program, error) {
	var doc programJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return program.Program{}, fmt.Errorf("decoding program: %w", err)
	}

	p := program.Program{
		ID:                      doc.ID,
		Name:                    doc.Name,
		ReferenceWeight:         doc.ReferenceWeight,
		StartingReferenceWeight: doc.StartingReferenceWeight,
		WorkoutsCompleted:       doc.WorkoutsCompleted,
		Days:                    make([]models.Day, 0, len(doc.DaysInNotation)),
		Weights:                 doc.Weights,
		CurrentDay:              doc.CurrentDay,
	}
	if p.Weights == nil {
		p.Weights = map[string]int{}
	}
	if doc.StartedAt != nil {
		p.StartedAt = *doc.StartedAt
	}

	for _, n := range doc.DaysInNotation {
		d, err := notation.ParseDay(n)
		if err != nil {
			return program.Program{}, fmt.Errorf("decoding program: %w", err)
		}
		p.Days = append(p.Days, d)
	}

	if len(doc.PastAttemptResults) > 0 {
		p.CurrentCycleAttemptResults = make([][]models.LiftAttemptResult, len(doc.PastAttemptResults))
		for i, day := range doc.PastAttemptResults {
			rs := make([]models.LiftAttemptResult, len(day))
			for j, s := range day {
				r, err := notation.ParseResult(s)
				if err != nil {
					return program.Program{}, fmt.Errorf("decoding program: %w", err)
				}
				rs[j] = r
			}
			p.CurrentCycleAttemptResults[i] = rs
		}
	}

	if err := p.Validate(); err != nil {
		return program.Program{}, fmt.Errorf("decoding program: %w", err)
	}
	return p, nil
}
