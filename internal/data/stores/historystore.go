package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/history"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/timer"
	"github.com/Ibra084/CleanPomodoroApp/internal/data/db"
)

// HistoryStore implements history.Store using SQLite.
type HistoryStore struct {
	db *db.DB
}

var _ history.Store = (*HistoryStore)(nil)

// NewHistoryStore creates a new SQLite-backed history store.
func NewHistoryStore(db *db.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Append inserts an entry and prunes expired entries in one transaction.
// Generates an ID and timestamp if not set.
func (s *HistoryStore) Append(ctx context.Context, entry history.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	err := s.db.WithTx(ctx, func(q *db.Queries) error {
		if err := q.InsertHistoryEntry(ctx, db.InsertHistoryEntryParams{
			ID:            entry.ID,
			Timestamp:     entry.Timestamp.UnixNano(),
			Mode:          string(entry.Mode),
			ActualSeconds: int64(entry.ActualSeconds),
			TaskID:        toNullString(entry.TaskID),
		}); err != nil {
			return err
		}

		_, err := q.DeleteHistoryBefore(ctx, history.Cutoff(time.Now()).UnixNano())
		return err
	})
	if err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}

	return nil
}

// Prune removes entries older than the retention window.
func (s *HistoryStore) Prune(ctx context.Context, now time.Time) (int64, error) {
	removed, err := s.db.Queries().DeleteHistoryBefore(ctx, history.Cutoff(now).UnixNano())
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return removed, nil
}

// Range returns entries with start <= timestamp < end, oldest first.
func (s *HistoryStore) Range(ctx context.Context, start, end time.Time) ([]history.Entry, error) {
	rows, err := s.db.Queries().ListHistoryRange(ctx, db.ListHistoryRangeParams{
		Start: start.UnixNano(),
		End:   end.UnixNano(),
	})
	if err != nil {
		return nil, fmt.Errorf("list history range: %w", err)
	}

	return rowsToEntries(rows), nil
}

// List returns all entries, oldest first.
func (s *HistoryStore) List(ctx context.Context) ([]history.Entry, error) {
	rows, err := s.db.Queries().ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return rowsToEntries(rows), nil
}

func rowsToEntries(rows []db.HistoryEntry) []history.Entry {
	entries := make([]history.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, history.Entry{
			ID:            row.ID,
			Timestamp:     time.Unix(0, row.Timestamp),
			Mode:          timer.Mode(row.Mode),
			ActualSeconds: int(row.ActualSeconds),
			TaskID:        fromNullString(row.TaskID),
		})
	}
	return entries
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
