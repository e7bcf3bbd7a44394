package program

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/notation"
)

// Template is a fixed program definition that a Program is started from.
type Template struct {
	Key  string
	Name string
	// Days in day notation ("Name | lift | lift").
	Days []string
	// InitialLinearWeight seeds the tracked weight of every linear lift.
	InitialLinearWeight int
}

// GZCL4Day is the default template: a GZCL-based Pull/Push/Legs/Core split
// with reference multipliers from SymmetricStrength.
var GZCL4Day = Template{
	Key:  "gzcl-4day",
	Name: "GZCL-based 4-day cycle",
	Days: []string{
		"Pull | Weighted Pullup -> 4x3,1x3+ @ 0.5r-30 | Pullup -> 3x7+ | Barbell Row -> 3x10 @ 0.65r | Face Pull -> 2x15,1x15-25 @ add20 | Cable Curl -> 2x15,1x15-25 @ add20",
		"Push | Bench press -> 4x3,1x3+ @ 1r | Overhead press -> 3x10 @ 0.5r | Incline bench press -> 3x10 @ 0.6r | Pushup -> 3x15+ | Tricep Cable Pressdown -> 2x15,1x15-25 @ add20",
		"Legs | Squat -> 4x3,1x3+ @ 1.35r | Deadlift -> 3x8 @ 1.25r | Romanian Deadlift -> 3x10 @ 0.675r | Leg press -> 2x15,1x15-25 @ add30 | Standing dumbbell calf raise -> 2x15,1x15-25 @ add20",
		"Core | Plank -> 1x30s @ any | Ab Rollout -> 3xAny | Cable Core Press -> 3xAny @ any | Bent-knee reverse hyperextension -> 3xAny @ any | Knee raises -> 3xAny | Leg extensions -> 3xAny @ any",
	},
	InitialLinearWeight: 30,
}

var templates = map[string]Template{
	GZCL4Day.Key: GZCL4Day,
}

// LookupTemplate returns the template registered under key.
func LookupTemplate(key string) (Template, error) {
	t, ok := templates[key]
	if !ok {
		return Template{}, fmt.Errorf("unknown program template %q (available: %v)", key, TemplateKeys())
	}
	return t, nil
}

// TemplateKeys lists the registered template keys in sorted order.
func TemplateKeys() []string {
	keys := make([]string, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ParseDays parses the template's day notations.
func (t Template) ParseDays() ([]models.Day, error) {
	days := make([]models.Day, 0, len(t.Days))
	for _, n := range t.Days {
		d, err := notation.ParseDay(n)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", t.Key, err)
		}
		days = append(days, d)
	}
	return days, nil
}

// Start creates a new program at day zero with the given reference weight.
func Start(t Template, referenceWeight int) (Program, error) {
	if referenceWeight < 0 {
		return Program{}, fmt.Errorf("%w: negative reference weight %d", ErrInvalidProgram, referenceWeight)
	}
	days, err := t.ParseDays()
	if err != nil {
		return Program{}, err
	}

	weights := make(map[string]int)
	for _, d := range days {
		for _, l := range d.Lifts {
			if l.Weight.Kind == models.WeightLinear {
				weights[l.Key()] = t.InitialLinearWeight
			}
		}
	}

	p := Program{
		ID:                      uuid.New().String(),
		Name:                    t.Name,
		Days:                    days,
		ReferenceWeight:         referenceWeight,
		StartingReferenceWeight: referenceWeight,
		Weights:                 weights,
		StartedAt:               time.Now().UTC().Truncate(time.Second),
	}
	if err := p.Validate(); err != nil {
		return Program{}, err
	}
	return p, nil
}
