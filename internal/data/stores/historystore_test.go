package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/history"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/timer"
	"github.com/Ibra084/CleanPomodoroApp/internal/data/db"
)

func newTestHistoryStore(t *testing.T) *HistoryStore {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewHistoryStore(database)
}

func TestHistoryStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestHistoryStore(t)

	err := store.Append(ctx, history.Entry{
		Mode:          timer.ModeFocus,
		ActualSeconds: 1500,
		TaskID:        "task1",
	})
	require.NoError(t, err)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.NotEmpty(t, got.ID, "store generates an id when unset")
	assert.False(t, got.Timestamp.IsZero())
	assert.Equal(t, timer.ModeFocus, got.Mode)
	assert.Equal(t, 1500, got.ActualSeconds)
	assert.Equal(t, "task1", got.TaskID)
}

func TestHistoryStore_AppendWithoutTask(t *testing.T) {
	ctx := context.Background()
	store := newTestHistoryStore(t)

	require.NoError(t, store.Append(ctx, history.Entry{
		Mode:          timer.ModeShortBreak,
		ActualSeconds: 300,
	}))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].TaskID)
}

func TestHistoryStore_ListOldestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestHistoryStore(t)

	base := time.Now()
	for i, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Append(ctx, history.Entry{
			ID:            id,
			Timestamp:     base.Add(time.Duration(2-i) * time.Hour),
			Mode:          timer.ModeFocus,
			ActualSeconds: 60,
		}))
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
	assert.Equal(t, "c", entries[2].ID)
}

func TestHistoryStore_AppendPrunesExpired(t *testing.T) {
	ctx := context.Background()
	store := newTestHistoryStore(t)

	old := history.Entry{
		ID:            "old",
		Timestamp:     time.Now().AddDate(0, 0, -(history.RetentionDays + 1)),
		Mode:          timer.ModeFocus,
		ActualSeconds: 1500,
	}
	require.NoError(t, store.Append(ctx, old))

	// The next append sweeps anything past the retention window.
	require.NoError(t, store.Append(ctx, history.Entry{
		ID:            "fresh",
		Mode:          timer.ModeFocus,
		ActualSeconds: 1500,
	}))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh", entries[0].ID)
}

func TestHistoryStore_Prune(t *testing.T) {
	ctx := context.Background()
	store := newTestHistoryStore(t)

	now := time.Now()
	require.NoError(t, store.Append(ctx, history.Entry{
		ID:        "expired",
		Timestamp: now.AddDate(0, 0, -91),
		Mode:      timer.ModeFocus,
	}))
	require.NoError(t, store.Append(ctx, history.Entry{
		ID:        "boundary",
		Timestamp: now.AddDate(0, 0, -89),
		Mode:      timer.ModeFocus,
	}))

	removed, err := store.Prune(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// Idempotent: a second sweep finds nothing.
	removed, err = store.Prune(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, removed)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "boundary", entries[0].ID)
}

func TestHistoryStore_Range(t *testing.T) {
	ctx := context.Background()
	store := newTestHistoryStore(t)

	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	for i := 0; i < 4; i++ {
		require.NoError(t, store.Append(ctx, history.Entry{
			Timestamp:     base.Add(time.Duration(i) * time.Hour),
			Mode:          timer.ModeFocus,
			ActualSeconds: 60,
		}))
	}

	// Half-open interval: start inclusive, end exclusive.
	got, err := store.Range(ctx, base.Add(time.Hour), base.Add(3*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Timestamp.Equal(base.Add(time.Hour)))
	assert.True(t, got[1].Timestamp.Equal(base.Add(2*time.Hour)))
}

func TestHistoryStore_RangeEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestHistoryStore(t)

	got, err := store.Range(ctx, time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
}
