package stores

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/task"
	"github.com/Ibra084/CleanPomodoroApp/internal/data/db"
	"github.com/Ibra084/CleanPomodoroApp/pkg/randid"
)

// TaskStore implements task.Store using SQLite.
type TaskStore struct {
	db *db.DB
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates a new SQLite-backed task store.
func NewTaskStore(db *db.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Create persists a new task. The title is trimmed; an empty title is
// rejected with task.ErrEmptyTitle. Generates ID and timestamps if not set.
func (s *TaskStore) Create(ctx context.Context, t *task.Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return task.ErrEmptyTitle
	}

	if t.ID == "" {
		t.ID = randid.Generate(8)
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	err := s.db.Queries().CreateTask(ctx, db.CreateTaskParams{
		ID:        t.ID,
		Title:     t.Title,
		CreatedAt: t.CreatedAt.UnixNano(),
		UpdatedAt: t.UpdatedAt.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// Get returns a single task by ID.
func (s *TaskStore) Get(ctx context.Context, id string) (task.Task, error) {
	row, err := s.db.Queries().GetTask(ctx, id)
	if err != nil {
		if IsNotFoundError(err) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, fmt.Errorf("get task: %w", err)
	}

	return rowToTask(row), nil
}

// List returns all tasks, newest first.
func (s *TaskStore) List(ctx context.Context) ([]task.Task, error) {
	rows, err := s.db.Queries().ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]task.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, rowToTask(row))
	}

	return tasks, nil
}

// ToggleDone flips the done flag. A missing id is a no-op; rapid
// delete-then-toggle races from the UI are expected and benign.
func (s *TaskStore) ToggleDone(ctx context.Context, id string) error {
	err := s.db.Queries().ToggleTaskDone(ctx, db.ToggleTaskDoneParams{
		UpdatedAt: time.Now().UnixNano(),
		ID:        id,
	})
	if err != nil {
		return fmt.Errorf("toggle task done: %w", err)
	}
	return nil
}

// Remove deletes the task. History entries referencing it keep their
// dangling task id.
func (s *TaskStore) Remove(ctx context.Context, id string) error {
	if err := s.db.Queries().DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("remove task: %w", err)
	}
	return nil
}

// IncrementPomodoros credits one completed focus block. A missing id is a
// no-op.
func (s *TaskStore) IncrementPomodoros(ctx context.Context, id string) error {
	err := s.db.Queries().IncrementTaskPomodoros(ctx, db.IncrementTaskPomodorosParams{
		UpdatedAt: time.Now().UnixNano(),
		ID:        id,
	})
	if err != nil {
		return fmt.Errorf("increment task pomodoros: %w", err)
	}
	return nil
}

func rowToTask(row db.Task) task.Task {
	return task.Task{
		ID:        row.ID,
		Title:     row.Title,
		Pomodoros: int(row.Pomodoros),
		Done:      row.Done != 0,
		CreatedAt: time.Unix(0, row.CreatedAt),
		UpdatedAt: time.Unix(0, row.UpdatedAt),
	}
}
