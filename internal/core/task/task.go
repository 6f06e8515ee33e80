// Package task defines the task registry domain: user-defined work items
// that accumulate completed focus blocks.
package task

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by Get when a task does not exist. Mutating
	// operations never return it; a missing id is a benign UI race and is
	// treated as a no-op.
	ErrNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a task title is empty after trimming
	// whitespace.
	ErrEmptyTitle = errors.New("task title cannot be empty")
)

// Task is a user-defined work item.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Pomodoros int       `json:"pomodoros"` // completed focus blocks attributed to this task
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store defines the interface for task persistence.
//
// ToggleDone, Remove, and IncrementPomodoros are soft operations: a missing
// id is a no-op, not an error. Deleting a task never rewrites history
// entries that reference it; those references dangle and readers must
// tolerate them.
type Store interface {
	// Create persists a new task. The store trims the title, rejects an
	// empty one with ErrEmptyTitle, and populates ID, CreatedAt, and
	// UpdatedAt if unset.
	Create(ctx context.Context, t *Task) error

	// Get returns a single task by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (Task, error)

	// List returns all tasks, newest first.
	List(ctx context.Context) ([]Task, error)

	// ToggleDone flips the done flag.
	ToggleDone(ctx context.Context, id string) error

	// Remove deletes the task.
	Remove(ctx context.Context, id string) error

	// IncrementPomodoros adds one completed focus block to the task.
	IncrementPomodoros(ctx context.Context, id string) error
}
