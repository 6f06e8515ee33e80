// Package pomodoro wires the session engine to its durable stores and the
// event bus. The service is the engine's sink: it records completions,
// credits tasks, and publishes signals, and it absorbs persistence failures
// so the tick loop never stalls.
package pomodoro

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/eventbus"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/history"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/settings"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/stats"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/task"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/timer"
)

// Service orchestrates the stores and the event bus on behalf of the
// session engine and the command surface.
type Service struct {
	history       history.Store
	tasks         task.Store
	settingsStore settings.Store
	bus           *eventbus.EventBus
	log           zerolog.Logger

	mu      sync.RWMutex
	current settings.Settings
}

var _ timer.Sink = (*Service)(nil)

// NewService creates a service over the given stores and bus.
func NewService(historyStore history.Store, taskStore task.Store, settingsStore settings.Store, bus *eventbus.EventBus, logger zerolog.Logger) *Service {
	return &Service{
		history:       historyStore,
		tasks:         taskStore,
		settingsStore: settingsStore,
		bus:           bus,
		log:           logger,
		current:       settings.Default(),
	}
}

// Init loads the persisted settings into the in-memory snapshot. A read
// failure is fail-open: the store already substituted defaults, so the
// timer keeps working on them.
func (s *Service) Init(ctx context.Context) {
	cfg, err := s.settingsStore.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("settings unreadable, falling back to defaults")
	}

	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
}

// Settings returns the current settings snapshot. This is the provider the
// session engine reads planned durations from.
func (s *Service) Settings() settings.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// UpdateSettings clamps, persists, and installs new settings. The in-memory
// snapshot is updated even when the durable write fails; the write is
// retried implicitly on the next mutation.
func (s *Service) UpdateSettings(ctx context.Context, cfg settings.Settings) (settings.Settings, error) {
	cfg.Clamp()

	err := s.settingsStore.Save(ctx, cfg)
	if err != nil {
		s.log.Warn().Err(err).Msg("settings not persisted, keeping in-memory value")
	}

	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()

	s.bus.PublishSettingsUpdated(eventbus.SettingsUpdatedPayload{})
	return cfg, err
}

// SessionEnded implements timer.Sink. Sessions with elapsed time are
// recorded; focus completions credit the selected task; a session.ended
// signal is always published. Store failures are logged and swallowed.
func (s *Service) SessionEnded(c timer.Completion) {
	ctx := context.Background()

	if c.ActualSeconds > 0 {
		entry := history.Entry{
			ID:            uuid.NewString(),
			Timestamp:     c.At,
			Mode:          c.Mode,
			ActualSeconds: c.ActualSeconds,
			TaskID:        c.TaskID,
		}
		if err := s.history.Append(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("mode", string(c.Mode)).Msg("session not recorded")
		}

		if c.Mode == timer.ModeFocus && c.TaskID != "" {
			if err := s.tasks.IncrementPomodoros(ctx, c.TaskID); err != nil {
				s.log.Warn().Err(err).Str("task", c.TaskID).Msg("pomodoro not credited")
			}
		}
	}

	s.bus.PublishSessionEnded(eventbus.SessionEndedPayload{
		Mode:          c.Mode,
		WasSkipped:    c.Skipped,
		ActualSeconds: c.ActualSeconds,
		TaskID:        c.TaskID,
	})
}

// AddTask creates a task from a title.
func (s *Service) AddTask(ctx context.Context, title string) (task.Task, error) {
	t := task.Task{Title: title}
	if err := s.tasks.Create(ctx, &t); err != nil {
		return task.Task{}, err
	}

	s.bus.PublishTaskCreated(eventbus.TaskCreatedPayload{Task: t})
	return t, nil
}

// Tasks returns all tasks, newest first.
func (s *Service) Tasks(ctx context.Context) ([]task.Task, error) {
	return s.tasks.List(ctx)
}

// Task returns one task by id.
func (s *Service) Task(ctx context.Context, id string) (task.Task, error) {
	return s.tasks.Get(ctx, id)
}

// ToggleTaskDone flips a task's done flag; missing ids are no-ops.
func (s *Service) ToggleTaskDone(ctx context.Context, id string) error {
	return s.tasks.ToggleDone(ctx, id)
}

// RemoveTask deletes a task. History entries keep their dangling reference.
func (s *Service) RemoveTask(ctx context.Context, id string) error {
	if err := s.tasks.Remove(ctx, id); err != nil {
		return err
	}

	s.bus.PublishTaskRemoved(eventbus.TaskRemovedPayload{TaskID: id})
	return nil
}

// History returns all recorded sessions, oldest first.
func (s *Service) History(ctx context.Context) ([]history.Entry, error) {
	return s.history.List(ctx)
}

// Prune runs the retention sweep and reports how many entries were dropped.
func (s *Service) Prune(ctx context.Context, now time.Time) (int64, error) {
	removed, err := s.history.Prune(ctx, now)
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		s.bus.PublishHistoryPruned(eventbus.HistoryPrunedPayload{Removed: removed})
	}
	return removed, nil
}

// Report aggregates the statistics shown by the stats command.
type Report struct {
	Today  stats.Summary
	Streak int
	Week   []stats.DayTotal
}

// Stats derives today's totals, the streak, and the weekly chart from the
// history snapshot.
func (s *Service) Stats(ctx context.Context, now time.Time) (Report, error) {
	entries, err := s.history.List(ctx)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Today:  stats.TodayFocus(entries, now),
		Streak: stats.Streak(entries, now),
		Week:   stats.WeekChart(entries, now),
	}, nil
}
