// Package notation parses the compact text notation used to write programs:
//
//	set:            "5", "5+", "8-12", "Any", "30s"
//	weight scheme:  "0.5r-30", "1r", "any", "add20"
//	lift:           "Bench press -> 4x3,1x3+ @ 1r"
//	day:            "Push | Bench press -> 4x3,1x3+ @ 1r | Pushup -> 3x15+"
//
// Formatting is the String method of the corresponding models type.
package notation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/claude/yawa/internal/models"
)

var (
	errMissingArrow  = errors.New(`missing "->"`)
	errMissingCount  = errors.New(`expected "<count>x<set>"`)
	errUnknownScheme = errors.New(`expected "any", "<multiplier>r[offset]" or "add<amount>"`)
	errNotFinite     = errors.New("multiplier must be a finite number")
)

// ParseSet parses a single set. Checks run in a fixed order and the first
// match wins: "Any", then '-', '+', 's', then a bare rep count.
func ParseSet(s string) (models.Set, error) {
	switch {
	case s == "Any":
		return models.AnySet(), nil

	case strings.Contains(s, "-"):
		// 8-12
		minStr, maxStr, _ := strings.Cut(s, "-")
		minimum, err := parseCount(minStr)
		if err != nil {
			return models.Set{}, parseError(KindSet, s, err)
		}
		maximum, err := parseCount(maxStr)
		if err != nil {
			return models.Set{}, parseError(KindSet, s, err)
		}
		return models.Range(minimum, maximum), nil

	case strings.Contains(s, "+"):
		// 5+
		repStr, _, _ := strings.Cut(s, "+")
		minimum, err := parseCount(repStr)
		if err != nil {
			return models.Set{}, parseError(KindSet, s, err)
		}
		return models.Amrap(minimum), nil

	case strings.Contains(s, "s"):
		// 30s
		secStr, _, _ := strings.Cut(s, "s")
		seconds, err := parseCount(secStr)
		if err != nil {
			return models.Set{}, parseError(KindSet, s, err)
		}
		return models.Timed(time.Duration(seconds) * time.Second), nil

	default:
		reps, err := parseCount(s)
		if err != nil {
			return models.Set{}, parseError(KindSet, s, err)
		}
		return models.Defined(reps), nil
	}
}

// ParseSets expands comma separated "<count>x<set>" runs, so "2x5,1x5+"
// yields three sets.
func ParseSets(s string) ([]models.Set, error) {
	var sets []models.Set
	for _, run := range strings.Split(s, ",") {
		countStr, setStr, ok := strings.Cut(run, "x")
		if !ok {
			return nil, parseError(KindSets, s, errMissingCount)
		}
		count, err := parseCount(countStr)
		if err != nil {
			return nil, parseError(KindSets, s, err)
		}
		set, err := ParseSet(setStr)
		if err != nil {
			return nil, parseError(KindSets, s, err)
		}
		for range count {
			sets = append(sets, set)
		}
	}
	return sets, nil
}

// ParseWeightScheme parses a weight scheme. An empty or unparseable offset
// after 'r' means zero.
func ParseWeightScheme(s string) (models.WeightScheme, error) {
	if s == "any" {
		return models.AnyWeight(), nil
	}

	if multStr, offsetStr, ok := strings.Cut(s, "r"); ok {
		// 3.14r+12
		multiplier, err := strconv.ParseFloat(multStr, 64)
		if err != nil {
			return models.WeightScheme{}, parseError(KindWeightScheme, s, err)
		}
		if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
			return models.WeightScheme{}, parseError(KindWeightScheme, s, errNotFinite)
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			offset = 0
		}
		return models.BasedOnReference(multiplier, offset), nil
	}

	// add20
	amountStr, ok := strings.CutPrefix(s, "add")
	if !ok {
		return models.WeightScheme{}, parseError(KindWeightScheme, s, errUnknownScheme)
	}
	amount, err := parseCount(amountStr)
	if err != nil {
		return models.WeightScheme{}, parseError(KindWeightScheme, s, err)
	}
	return models.LinearBasedOnPrevious(amount), nil
}

// ParseLift parses "<name> -> <sets>[ @ <weight>]". Without '@' the lift
// has no weight scheme.
func ParseLift(s string) (models.Lift, error) {
	name, rest, ok := strings.Cut(s, "->")
	if !ok {
		return models.Lift{}, parseError(KindLift, s, errMissingArrow)
	}

	setsStr := strings.TrimSpace(rest)
	weight := models.NoWeight()
	if before, after, found := strings.Cut(rest, "@"); found {
		setsStr = strings.TrimSpace(before)
		w, err := ParseWeightScheme(strings.TrimSpace(after))
		if err != nil {
			return models.Lift{}, parseError(KindLift, s, err)
		}
		weight = w
	}

	sets, err := ParseSets(setsStr)
	if err != nil {
		return models.Lift{}, parseError(KindLift, s, err)
	}

	return models.Lift{
		Name:   strings.TrimSpace(name),
		Sets:   sets,
		Weight: weight,
	}, nil
}

// ParseDay parses "Name | lift | lift". Blank lift segments are skipped.
func ParseDay(s string) (models.Day, error) {
	parts := strings.Split(s, models.DaySeparator)
	day := models.Day{Name: strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		if strings.TrimSpace(part) == "" {
			continue
		}
		lift, err := ParseLift(part)
		if err != nil {
			return models.Day{}, parseError(KindDay, s, err)
		}
		day.Lifts = append(day.Lifts, lift)
	}
	return day, nil
}

// ParseResult parses "NotCompleted", "Completed" or "Completed+MaxReps".
func ParseResult(s string) (models.LiftAttemptResult, error) {
	switch s {
	case "NotCompleted":
		return models.NotCompleted, nil
	case "Completed":
		return models.Completed(false), nil
	case "Completed+MaxReps":
		return models.Completed(true), nil
	default:
		return models.LiftAttemptResult{}, parseError(KindResult, s, nil)
	}
}

// parseCount parses a non-negative decimal integer.
func parseCount(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
