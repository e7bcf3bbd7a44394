package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/notation"
)

// HistoryDB mirrors the lift history into SQLite so it can be queried.
type HistoryDB struct {
	db *sql.DB
}

// HistoryRecord is one row of the lift_history table.
type HistoryRecord struct {
	RecordedAt time.Time
	ProgramID  string
	Attempt    models.LiftAttempt
	Result     models.LiftAttemptResult
}

// OpenHistoryDB opens (or creates) the history database at path and brings
// its schema up to date.
func OpenHistoryDB(path string) (*HistoryDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history db: %w", err)
	}
	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &HistoryDB{db: db}, nil
}

// Record inserts one attempt.
func (h *HistoryDB) Record(ctx context.Context, rec HistoryRecord) error {
	var weight sql.NullInt64
	if rec.Attempt.Weight != nil {
		weight = sql.NullInt64{Int64: int64(*rec.Attempt.Weight), Valid: true}
	}
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO lift_history (id, recorded_at, program_id, lift_name, attempt, weight, result)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		rec.RecordedAt.Format(time.RFC3339),
		rec.ProgramID,
		rec.Attempt.Lift.Name,
		rec.Attempt.String(),
		weight,
		rec.Result.String(),
	)
	if err != nil {
		return fmt.Errorf("inserting history: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. limit <= 0 means all.
func (h *HistoryDB) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	q := `SELECT id, recorded_at, program_id, attempt, result FROM lift_history ORDER BY rowid DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		var recordedAt string
		if err := rows.Scan(&e.ID, &recordedAt, &e.ProgramID, &e.Attempt, &e.ResultText); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		if e.RecordedAt, err = time.Parse(time.RFC3339, recordedAt); err != nil {
			return nil, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
		}
		if e.Result, err = notation.ParseResult(e.ResultText); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}
