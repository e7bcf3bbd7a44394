// Package storage persists the active program as JSON and appends lift
// attempts to a plain-text history log, optionally mirrored into SQLite.
//
// Layout under the save directory:
//
//	yawa_save_data/info.txt         program JSON
//	yawa_save_data/lift_history.txt "<RFC3339>: <attempt> | <result>" per line
//	yawa_save_data/history.db       SQLite mirror of the history log
package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/claude/yawa/internal/models"
	"github.com/claude/yawa/internal/notation"
	"github.com/claude/yawa/internal/program"
	"github.com/claude/yawa/internal/service"
)

const (
	SaveDirName     = "yawa_save_data"
	ProgramFileName = "info.txt"
	HistoryFileName = "lift_history.txt"
	HistoryDBName   = "history.db"
)

// Store is the file-backed persistence adapter.
type Store struct {
	dir       string
	useDB     bool
	history   *HistoryDB
	programID string
	now       func() time.Time
	log       *slog.Logger
}

type Option func(*Store)

// WithHistoryDB toggles the SQLite history mirror. It is on by default.
func WithHistoryDB(enabled bool) Option {
	return func(s *Store) { s.useDB = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New returns a Store rooted at saveDir. Nothing is created on disk until
// the first write.
func New(saveDir string, opts ...Option) *Store {
	s := &Store{
		dir:   filepath.Join(saveDir, SaveDirName),
		useDB: true,
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ service.Persistence     = (*Store)(nil)
	_ service.HistoryReader   = (*Store)(nil)
	_ service.HistoryPreparer = (*Store)(nil)
)

// Dir is the yawa_save_data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) programPath() string { return filepath.Join(s.dir, ProgramFileName) }
func (s *Store) historyPath() string { return filepath.Join(s.dir, HistoryFileName) }

// Summon loads the saved program.
func (s *Store) Summon(ctx context.Context) (program.Program, error) {
	path := s.programPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return program.Program{}, fmt.Errorf("reading %s: %w", path, service.ErrProgramNotStarted)
	}
	if err != nil {
		return program.Program{}, fmt.Errorf("reading %s: %w", path, err)
	}

	p, err := UnmarshalProgram(data)
	if err != nil {
		return program.Program{}, fmt.Errorf("%s: %w", path, err)
	}
	s.programID = p.ID
	s.log.Debug("program loaded", "path", path, "current_day", p.CurrentDay)
	return p, nil
}

// Persist overwrites the saved program, writing to a temp file and renaming
// it into place.
func (s *Store) Persist(ctx context.Context, p program.Program) error {
	data, err := MarshalProgram(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir %s: %w", s.dir, err)
	}

	path := s.programPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}

	s.programID = p.ID
	s.log.Info("program persisted", "path", path, "current_day", p.CurrentDay, "reference_weight", p.ReferenceWeight)
	return nil
}

// SaveHistory appends one line to the history log and, when enabled, a row to
// the history database.
func (s *Store) SaveHistory(ctx context.Context, attempt models.LiftAttempt, result models.LiftAttemptResult) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir %s: %w", s.dir, err)
	}

	now := s.now().Truncate(time.Second)
	line := fmt.Sprintf("%s: %s | %s\n", now.Format(time.RFC3339), attempt, result)

	path := s.historyPath()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	if !s.useDB {
		return nil
	}
	db, err := s.historyDB()
	if err != nil {
		return err
	}
	return db.Record(ctx, HistoryRecord{
		RecordedAt: now,
		ProgramID:  s.programID,
		Attempt:    attempt,
		Result:     result,
	})
}

// PrepareHistory opens the history database when it is enabled, so a broken
// database is reported before the program is overwritten.
func (s *Store) PrepareHistory(context.Context) error {
	if !s.useDB {
		return nil
	}
	_, err := s.historyDB()
	return err
}

// History returns up to limit past attempts, newest first. It reads the
// history database when enabled and the text log otherwise.
func (s *Store) History(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if s.useDB {
		db, err := s.historyDB()
		if err != nil {
			return nil, err
		}
		return db.Recent(ctx, limit)
	}
	return s.historyFromLog(limit)
}

// Close releases the history database if it was opened.
func (s *Store) Close() error {
	if s.history == nil {
		return nil
	}
	err := s.history.Close()
	s.history = nil
	return err
}

func (s *Store) historyDB() (*HistoryDB, error) {
	if s.history != nil {
		return s.history, nil
	}
	path := filepath.Join(s.dir, HistoryDBName)
	db, err := OpenHistoryDB(path)
	if err != nil {
		return nil, err
	}
	s.log.Debug("history db opened", "path", path)
	s.history = db
	return db, nil
}

func (s *Store) historyFromLog(limit int) ([]models.HistoryEntry, error) {
	path := s.historyPath()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var out []models.HistoryEntry
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		e, err := ParseHistoryLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, n, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ParseHistoryLine parses one "<RFC3339>: <attempt> | <result>" line.
func ParseHistoryLine(line string) (models.HistoryEntry, error) {
	ts, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return models.HistoryEntry{}, fmt.Errorf("malformed history line %q", line)
	}
	at, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("history timestamp: %w", err)
	}
	i := strings.LastIndex(rest, " | ")
	if i < 0 {
		return models.HistoryEntry{}, fmt.Errorf("malformed history line %q", line)
	}
	result, err := notation.ParseResult(rest[i+3:])
	if err != nil {
		return models.HistoryEntry{}, err
	}
	return models.HistoryEntry{
		RecordedAt: at,
		Attempt:    rest[:i],
		Result:     result,
		ResultText: result.String(),
	}, nil
}
