package models

import "time"

// HistoryEntry is one recorded lift attempt and its outcome.
type HistoryEntry struct {
	ID         string            `json:"id,omitempty"`
	RecordedAt time.Time         `json:"recorded_at"`
	ProgramID  string            `json:"program_id,omitempty"`
	Attempt    string            `json:"attempt"`
	Result     LiftAttemptResult `json:"-"`
	ResultText string            `json:"result"`
}
