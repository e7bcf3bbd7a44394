// Package service runs the yawa use cases (start, status, next, complete and
// history) against the persistence and user-input ports.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/program"
)

// ErrProgramNotStarted is returned when a command needs a saved program and
// there is none.
var ErrProgramNotStarted = errors.New("Start a lifting program first!")

// ErrHistoryUnavailable is returned by History when the store cannot list
// past attempts.
var ErrHistoryUnavailable = errors.New("history is not available for this store")

// Status summarizes the active program.
type Status struct {
	ProgramID               string `json:"program_id,omitempty"`
	Name                    string `json:"name"`
	ReferenceWeight         int    `json:"reference_weight"`
	StartingReferenceWeight int    `json:"starting_reference_weight"`
	WorkoutsCompleted       int    `json:"workouts_completed"`
	CurrentDay              int    `json:"current_day"`
	CurrentDayName          string `json:"current_day_name"`
	DaysInCycle             int    `json:"days_in_cycle"`
}

// Workout is the day a lifter should train next.
type Workout struct {
	DayIndex int
	DayName  string
	Attempts []models.LiftAttempt
}

// Service wires the program engine to its ports.
type Service struct {
	store    Persistence
	input    UserInput
	template program.Template
	log      *slog.Logger
}

// New creates a Service. input may be nil for callers that never complete
// workouts (status, next, mcp).
func New(store Persistence, input UserInput, template program.Template, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, input: input, template: template, log: log}
}

// Start begins a fresh program from the configured template, replacing any
// saved one.
func (s *Service) Start(ctx context.Context, referenceWeight int) (program.Program, error) {
	p, err := program.Start(s.template, referenceWeight)
	if err != nil {
		return program.Program{}, fmt.Errorf("starting program: %w", err)
	}
	if err := s.store.Persist(ctx, p); err != nil {
		return program.Program{}, fmt.Errorf("saving program: %w", err)
	}
	s.log.Info("program started", "id", p.ID, "template", s.template.Key, "reference_weight", referenceWeight)
	return p, nil
}

// Status reports the saved program's progress.
func (s *Service) Status(ctx context.Context) (Status, error) {
	p, err := s.store.Summon(ctx)
	if err != nil {
		return Status{}, err
	}
	return Status{
		ProgramID:               p.ID,
		Name:                    p.Name,
		ReferenceWeight:         p.ReferenceWeight,
		StartingReferenceWeight: p.StartingReferenceWeight,
		WorkoutsCompleted:       p.WorkoutsCompleted,
		CurrentDay:              p.CurrentDay,
		CurrentDayName:          p.Today().Name,
		DaysInCycle:             len(p.Days),
	}, nil
}

// Next returns today's workout without changing anything.
func (s *Service) Next(ctx context.Context) (Workout, error) {
	p, err := s.store.Summon(ctx)
	if err != nil {
		return Workout{}, err
	}
	return Workout{
		DayIndex: p.CurrentDay,
		DayName:  p.Today().Name,
		Attempts: p.NextWorkout(),
	}, nil
}

// Complete asks how today's workout went, advances the program and records
// every attempt. The history backend is opened first, then the program is
// saved, then each attempt is recorded.
func (s *Service) Complete(ctx context.Context) (program.Program, error) {
	if s.input == nil {
		return program.Program{}, errors.New("no user input configured")
	}
	p, err := s.store.Summon(ctx)
	if err != nil {
		return program.Program{}, err
	}

	attempts := p.NextWorkout()
	results, err := s.input.CheckComplete(ctx, attempts)
	if err != nil {
		return program.Program{}, fmt.Errorf("reading results: %w", err)
	}

	next, err := p.CompleteWorkout(results)
	if err != nil {
		return program.Program{}, err
	}
	if hp, ok := s.store.(HistoryPreparer); ok {
		if err := hp.PrepareHistory(ctx); err != nil {
			return program.Program{}, fmt.Errorf("opening history: %w", err)
		}
	}
	if err := s.store.Persist(ctx, next); err != nil {
		return program.Program{}, fmt.Errorf("saving program: %w", err)
	}

	for i, attempt := range attempts {
		if err := s.store.SaveHistory(ctx, attempt, results[i]); err != nil {
			return program.Program{}, fmt.Errorf("saving history: %w", err)
		}
	}

	s.log.Info("workout completed",
		"day", p.Today().Name,
		"workouts_completed", next.WorkoutsCompleted,
		"reference_weight", next.ReferenceWeight,
	)
	if next.ReferenceWeight != p.ReferenceWeight {
		s.log.Info("reference weight increased", "from", p.ReferenceWeight, "to", next.ReferenceWeight)
	}
	return next, nil
}

// History lists up to limit recent attempts, newest first. A limit of zero or
// less returns everything.
func (s *Service) History(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	hr, ok := s.store.(HistoryReader)
	if !ok {
		return nil, ErrHistoryUnavailable
	}
	return hr.History(ctx, limit)
}
