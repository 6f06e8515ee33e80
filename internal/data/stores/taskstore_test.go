package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/task"
	"github.com/Ibra084/CleanPomodoroApp/internal/data/db"
)

func newTestTaskStore(t *testing.T) *TaskStore {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewTaskStore(database)
}

func TestTaskStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	created := task.Task{Title: "write report"}
	require.NoError(t, store.Create(ctx, &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Title)
	assert.Zero(t, got.Pomodoros)
	assert.False(t, got.Done)
}

func TestTaskStore_CreateTrimsTitle(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	created := task.Task{Title: "  padded  "}
	require.NoError(t, store.Create(ctx, &created))
	assert.Equal(t, "padded", created.Title)
}

func TestTaskStore_CreateEmptyTitle(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	err := store.Create(ctx, &task.Task{Title: "   "})
	assert.ErrorIs(t, err, task.ErrEmptyTitle)

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStore_GetNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestTaskStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	base := time.Now()
	for i, title := range []string{"first", "second", "third"} {
		tk := task.Task{
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Create(ctx, &tk))
	}

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestTaskStore_ToggleDone(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	tk := task.Task{Title: "toggle me"}
	require.NoError(t, store.Create(ctx, &tk))

	require.NoError(t, store.ToggleDone(ctx, tk.ID))
	got, err := store.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)

	require.NoError(t, store.ToggleDone(ctx, tk.ID))
	got, err = store.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.False(t, got.Done)
}

func TestTaskStore_ToggleDoneMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	assert.NoError(t, store.ToggleDone(ctx, "missing"))
}

func TestTaskStore_Remove(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	tk := task.Task{Title: "doomed"}
	require.NoError(t, store.Create(ctx, &tk))
	require.NoError(t, store.Remove(ctx, tk.ID))

	_, err := store.Get(ctx, tk.ID)
	assert.ErrorIs(t, err, task.ErrNotFound)

	// Removing again is still fine.
	assert.NoError(t, store.Remove(ctx, tk.ID))
}

func TestTaskStore_IncrementPomodoros(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	tk := task.Task{Title: "count me"}
	require.NoError(t, store.Create(ctx, &tk))

	require.NoError(t, store.IncrementPomodoros(ctx, tk.ID))
	require.NoError(t, store.IncrementPomodoros(ctx, tk.ID))

	got, err := store.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Pomodoros)
}

func TestTaskStore_IncrementPomodorosMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newTestTaskStore(t)

	assert.NoError(t, store.IncrementPomodoros(ctx, "missing"))
}
