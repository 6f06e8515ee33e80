// Package history defines the completed-session log domain.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/timer"
)

// RetentionDays is how long completed sessions are kept before the
// retention sweep drops them.
const RetentionDays = 90

// ErrNotFound is returned when a history entry does not exist.
var ErrNotFound = errors.New("history entry not found")

// Cutoff returns the instant before which entries are pruned, relative to now.
func Cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -RetentionDays)
}

// Entry represents one completed session. Entries are immutable once
// created and leave the log only through the retention sweep.
type Entry struct {
	ID            string     `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	Mode          timer.Mode `json:"mode"`
	ActualSeconds int        `json:"actual_seconds"`

	// TaskID is a weak reference: the task may have been deleted since the
	// entry was recorded, and readers must tolerate an unknown id.
	TaskID string `json:"task_id,omitempty"`
}

// Store is the append-only session log.
type Store interface {
	// Append inserts an entry and prunes expired entries in the same
	// transaction, so a concurrent reader never observes more than the
	// retention window plus the entry just added. The store populates ID
	// and Timestamp if unset.
	Append(ctx context.Context, entry Entry) error

	// Prune removes every entry older than the retention window and
	// returns how many were dropped. Idempotent; safe to call redundantly.
	Prune(ctx context.Context, now time.Time) (int64, error)

	// Range returns entries with start <= Timestamp < end, oldest first.
	// The result is a fresh query against the backing store, not a cursor.
	Range(ctx context.Context, start, end time.Time) ([]Entry, error)

	// List returns all entries, oldest first.
	List(ctx context.Context) ([]Entry, error)
}
