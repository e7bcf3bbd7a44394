package service

import (
	"context"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/program"
)

// Persistence stores the single active program and its attempt history.
type Persistence interface {
	// Summon loads the saved program. It returns an error wrapping
	// ErrProgramNotStarted when nothing has been saved yet.
	Summon(ctx context.Context) (program.Program, error)
	// Persist overwrites the saved program.
	Persist(ctx context.Context, p program.Program) error
	// SaveHistory appends one attempt and its result to the history log.
	SaveHistory(ctx context.Context, attempt models.LiftAttempt, result models.LiftAttemptResult) error
}

// HistoryReader is implemented by stores that can list past attempts.
type HistoryReader interface {
	History(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// HistoryPreparer is implemented by stores whose history backend must be
// opened before a workout is saved. Complete calls it before Persist so a
// failing backend leaves neither the program nor the history changed.
type HistoryPreparer interface {
	PrepareHistory(ctx context.Context) error
}

// UserInput asks the lifter how each attempt went. The returned results line
// up with attempts.
type UserInput interface {
	CheckComplete(ctx context.Context, attempts []models.LiftAttempt) ([]models.LiftAttemptResult, error)
}
