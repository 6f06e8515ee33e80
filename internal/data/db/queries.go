package db

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries exposes one method per SQL statement, bound to a connection pool
// or a transaction.
type Queries struct {
	db DBTX
}

// New creates Queries bound to the given connection.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns Queries bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// HistoryEntry is a row of the history_entries table.
type HistoryEntry struct {
	ID            string
	Timestamp     int64 // unix nanoseconds
	Mode          string
	ActualSeconds int64
	TaskID        sql.NullString
}

// Task is a row of the tasks table.
type Task struct {
	ID        string
	Title     string
	Pomodoros int64
	Done      int64
	CreatedAt int64
	UpdatedAt int64
}

// KVRow is a row of the kv_store table.
type KVRow struct {
	Key       string
	Value     []byte
	CreatedAt int64
	UpdatedAt int64
}

// InsertHistoryEntryParams holds the column values for a new history row.
type InsertHistoryEntryParams struct {
	ID            string
	Timestamp     int64
	Mode          string
	ActualSeconds int64
	TaskID        sql.NullString
}

const insertHistoryEntry = `
INSERT INTO history_entries (id, timestamp, mode, actual_seconds, task_id)
VALUES (?, ?, ?, ?, ?)`

// InsertHistoryEntry appends one completed session.
func (q *Queries) InsertHistoryEntry(ctx context.Context, arg InsertHistoryEntryParams) error {
	_, err := q.db.ExecContext(ctx, insertHistoryEntry,
		arg.ID, arg.Timestamp, arg.Mode, arg.ActualSeconds, arg.TaskID)
	return err
}

const deleteHistoryBefore = `DELETE FROM history_entries WHERE timestamp < ?`

// DeleteHistoryBefore drops entries older than the cutoff and reports how
// many rows were removed.
func (q *Queries) DeleteHistoryBefore(ctx context.Context, cutoff int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteHistoryBefore, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listHistory = `
SELECT id, timestamp, mode, actual_seconds, task_id
FROM history_entries
ORDER BY timestamp ASC, rowid ASC`

// ListHistory returns all history entries, oldest first.
func (q *Queries) ListHistory(ctx context.Context) ([]HistoryEntry, error) {
	rows, err := q.db.QueryContext(ctx, listHistory)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistoryEntries(rows)
}

// ListHistoryRangeParams bounds a history range query: Start inclusive,
// End exclusive, both unix nanoseconds.
type ListHistoryRangeParams struct {
	Start int64
	End   int64
}

const listHistoryRange = `
SELECT id, timestamp, mode, actual_seconds, task_id
FROM history_entries
WHERE timestamp >= ? AND timestamp < ?
ORDER BY timestamp ASC, rowid ASC`

// ListHistoryRange returns entries within [Start, End), oldest first.
func (q *Queries) ListHistoryRange(ctx context.Context, arg ListHistoryRangeParams) ([]HistoryEntry, error) {
	rows, err := q.db.QueryContext(ctx, listHistoryRange, arg.Start, arg.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistoryEntries(rows)
}

func scanHistoryEntries(rows *sql.Rows) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Mode, &e.ActualSeconds, &e.TaskID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateTaskParams holds the column values for a new task row.
type CreateTaskParams struct {
	ID        string
	Title     string
	CreatedAt int64
	UpdatedAt int64
}

const createTask = `
INSERT INTO tasks (id, title, pomodoros, done, created_at, updated_at)
VALUES (?, ?, 0, 0, ?, ?)`

// CreateTask inserts a new task with zero pomodoros, not done.
func (q *Queries) CreateTask(ctx context.Context, arg CreateTaskParams) error {
	_, err := q.db.ExecContext(ctx, createTask, arg.ID, arg.Title, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const getTask = `
SELECT id, title, pomodoros, done, created_at, updated_at
FROM tasks
WHERE id = ?`

// GetTask returns one task row by id.
func (q *Queries) GetTask(ctx context.Context, id string) (Task, error) {
	var t Task
	err := q.db.QueryRowContext(ctx, getTask, id).
		Scan(&t.ID, &t.Title, &t.Pomodoros, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

const listTasks = `
SELECT id, title, pomodoros, done, created_at, updated_at
FROM tasks
ORDER BY created_at DESC, id DESC`

// ListTasks returns all tasks, newest first.
func (q *Queries) ListTasks(ctx context.Context) ([]Task, error) {
	rows, err := q.db.QueryContext(ctx, listTasks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Pomodoros, &t.Done, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ToggleTaskDoneParams identifies the task to toggle and the update time.
type ToggleTaskDoneParams struct {
	UpdatedAt int64
	ID        string
}

const toggleTaskDone = `
UPDATE tasks SET done = 1 - done, updated_at = ? WHERE id = ?`

// ToggleTaskDone flips the done flag. Zero rows affected when the id is
// missing; callers treat that as a no-op.
func (q *Queries) ToggleTaskDone(ctx context.Context, arg ToggleTaskDoneParams) error {
	_, err := q.db.ExecContext(ctx, toggleTaskDone, arg.UpdatedAt, arg.ID)
	return err
}

const deleteTask = `DELETE FROM tasks WHERE id = ?`

// DeleteTask removes a task row. History rows referencing it are untouched.
func (q *Queries) DeleteTask(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteTask, id)
	return err
}

// IncrementTaskPomodorosParams identifies the task to credit and the
// update time.
type IncrementTaskPomodorosParams struct {
	UpdatedAt int64
	ID        string
}

const incrementTaskPomodoros = `
UPDATE tasks SET pomodoros = pomodoros + 1, updated_at = ? WHERE id = ?`

// IncrementTaskPomodoros credits one completed focus block to a task.
func (q *Queries) IncrementTaskPomodoros(ctx context.Context, arg IncrementTaskPomodorosParams) error {
	_, err := q.db.ExecContext(ctx, incrementTaskPomodoros, arg.UpdatedAt, arg.ID)
	return err
}

const kvGet = `
SELECT key, value, created_at, updated_at FROM kv_store WHERE key = ?`

// KVGet returns one kv row by key.
func (q *Queries) KVGet(ctx context.Context, key string) (KVRow, error) {
	var row KVRow
	err := q.db.QueryRowContext(ctx, kvGet, key).
		Scan(&row.Key, &row.Value, &row.CreatedAt, &row.UpdatedAt)
	return row, err
}

// KVSetParams holds the column values for a kv upsert.
type KVSetParams struct {
	Key       string
	Value     []byte
	CreatedAt int64
	UpdatedAt int64
}

const kvSet = `
INSERT INTO kv_store (key, value, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// KVSet inserts or replaces a kv row, preserving created_at on update.
func (q *Queries) KVSet(ctx context.Context, arg KVSetParams) error {
	_, err := q.db.ExecContext(ctx, kvSet, arg.Key, arg.Value, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const kvDelete = `DELETE FROM kv_store WHERE key = ?`

// KVDelete removes a kv row.
func (q *Queries) KVDelete(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, kvDelete, key)
	return err
}

const kvHas = `SELECT COUNT(*) FROM kv_store WHERE key = ?`

// KVHas reports whether a key exists.
func (q *Queries) KVHas(ctx context.Context, key string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, kvHas, key).Scan(&count)
	return count, err
}
