package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/service"
)

const defaultHistoryLimit = 20

// --- Tool definitions ---

var toolGetStatus = mcp.NewTool("get_status",
	mcp.WithDescription("Status of the active lifting program: name, current and starting reference weight, workouts completed, and the day up next."),
)

var toolGetNextWorkout = mcp.NewTool("get_next_workout",
	mcp.WithDescription("The next prescribed workout. Each attempt lists the lift, its sets in notation (e.g. 4x3,1x3+), and the concrete weight to use when one applies."),
)

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("Recorded lift attempts, newest first. Results are NotCompleted, Completed, or Completed+MaxReps."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of attempts to return. Defaults to 20; 0 returns everything.")),
	mcp.WithString("lift", mcp.Description("Only attempts whose lift name contains this text (case-insensitive, e.g. 'squat')")),
)

// --- Views ---

type attemptView struct {
	Lift   string `json:"lift"`
	Sets   string `json:"sets"`
	Weight *int   `json:"weight,omitempty"`
	Text   string `json:"prescription"`
}

type workoutView struct {
	Day      string        `json:"day"`
	DayIndex int           `json:"day_index"`
	Attempts []attemptView `json:"attempts"`
}

func newWorkoutView(w service.Workout) workoutView {
	v := workoutView{Day: w.DayName, DayIndex: w.DayIndex, Attempts: make([]attemptView, 0, len(w.Attempts))}
	for _, a := range w.Attempts {
		av := attemptView{
			Lift: a.Lift.Name,
			Sets: models.FormatSets(a.Lift.Sets),
			Text: a.String(),
		}
		if load, ok := displayWeight(a); ok {
			av.Weight = &load
		}
		v.Attempts = append(v.Attempts, av)
	}
	return v
}

// displayWeight is the weight a lifter should load, matching what
// LiftAttempt.String prints.
func displayWeight(a models.LiftAttempt) (int, bool) {
	if a.Weight == nil {
		return 0, false
	}
	switch a.Lift.Weight.Kind {
	case models.WeightBasedOnReference:
		return models.ReferenceWeight(a.Lift.Weight.Multiplier, a.Lift.Weight.Offset, *a.Weight), true
	case models.WeightAny, models.WeightLinear:
		return models.RoundUpToNearest5(*a.Weight), true
	default:
		return 0, false
	}
}

func historyView(entries []models.HistoryEntry) []models.HistoryEntry {
	if entries == nil {
		return []models.HistoryEntry{}
	}
	return entries
}

func filterByLift(entries []models.HistoryEntry, lift string, limit int) []models.HistoryEntry {
	needle := strings.ToLower(lift)
	out := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		name, _, _ := strings.Cut(e.Attempt, " -> ")
		if !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// --- Tool handlers ---

func (h *handlers) getStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.ds.Status(ctx)
	if err != nil {
		return h.queryError("get_status", err), nil
	}

	result, err := mcp.NewToolResultJSON(st)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getNextWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	w, err := h.ds.Next(ctx)
	if err != nil {
		return h.queryError("get_next_workout", err), nil
	}

	result, err := mcp.NewToolResultJSON(newWorkoutView(w))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", defaultHistoryLimit)
	if limit < 0 {
		return mcp.NewToolResultError("limit must not be negative"), nil
	}
	lift := strings.TrimSpace(req.GetString("lift", ""))

	fetch := limit
	if lift != "" {
		fetch = 0
	}
	entries, err := h.ds.History(ctx, fetch)
	if err != nil {
		return h.queryError("get_history", err), nil
	}
	if lift != "" {
		entries = filterByLift(entries, lift, limit)
	}

	result, err := mcp.NewToolResultJSON(historyView(entries))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// queryError turns a data source failure into a tool error. A missing program
// is an expected state and is not logged as an error.
func (h *handlers) queryError(tool string, err error) *mcp.CallToolResult {
	if errors.Is(err, service.ErrProgramNotStarted) {
		return mcp.NewToolResultError(service.ErrProgramNotStarted.Error())
	}
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("query failed: " + err.Error())
}
