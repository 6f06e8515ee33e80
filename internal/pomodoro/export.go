package pomodoro

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// ExportCSV writes the full session history to w, one row per entry with a
// header. The task_id column is empty when no task was attributed; a
// non-empty id may reference a since-deleted task.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.history.List(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "timestamp", "mode", "actual_seconds", "task_id"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.Timestamp.Format(time.RFC3339),
			string(e.Mode),
			strconv.Itoa(e.ActualSeconds),
			e.TaskID,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
