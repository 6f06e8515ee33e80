package eventbus

import (
	"github.com/Ibra084/CleanPomodoroApp/internal/core/task"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/timer"
)

// SessionStartedPayload is emitted when a countdown begins.
type SessionStartedPayload struct {
	Mode timer.Mode
}

// SessionEndedPayload is emitted after a session terminates and has been
// recorded. Consumers (sound, notifications) are fire-and-forget; the
// engine never observes their outcome.
type SessionEndedPayload struct {
	Mode          timer.Mode
	WasSkipped    bool
	ActualSeconds int
	TaskID        string
}

// SettingsUpdatedPayload is emitted after the settings singleton changes.
type SettingsUpdatedPayload struct{}

// TaskCreatedPayload is emitted when a new task is created.
type TaskCreatedPayload struct {
	Task task.Task
}

// TaskRemovedPayload is emitted when a task is deleted.
type TaskRemovedPayload struct {
	TaskID string
}

// HistoryPrunedPayload is emitted when the retention sweep drops entries.
type HistoryPrunedPayload struct {
	Removed int64
}

// PublishSessionStarted publishes a session.started event.
func (bus *EventBus) PublishSessionStarted(p SessionStartedPayload) {
	bus.send(EventSessionStarted, p)
}

// SubscribeSessionStarted registers a subscriber for session.started events.
func (bus *EventBus) SubscribeSessionStarted(fn func(SessionStartedPayload)) {
	bus.subscribe(EventSessionStarted, func(v any) {
		if p, ok := v.(SessionStartedPayload); ok {
			fn(p)
		}
	})
}

// PublishSessionEnded publishes a session.ended event.
func (bus *EventBus) PublishSessionEnded(p SessionEndedPayload) {
	bus.send(EventSessionEnded, p)
}

// SubscribeSessionEnded registers a subscriber for session.ended events.
func (bus *EventBus) SubscribeSessionEnded(fn func(SessionEndedPayload)) {
	bus.subscribe(EventSessionEnded, func(v any) {
		if p, ok := v.(SessionEndedPayload); ok {
			fn(p)
		}
	})
}

// PublishSettingsUpdated publishes a settings.updated event.
func (bus *EventBus) PublishSettingsUpdated(p SettingsUpdatedPayload) {
	bus.send(EventSettingsUpdated, p)
}

// SubscribeSettingsUpdated registers a subscriber for settings.updated events.
func (bus *EventBus) SubscribeSettingsUpdated(fn func(SettingsUpdatedPayload)) {
	bus.subscribe(EventSettingsUpdated, func(v any) {
		if p, ok := v.(SettingsUpdatedPayload); ok {
			fn(p)
		}
	})
}

// PublishTaskCreated publishes a task.created event.
func (bus *EventBus) PublishTaskCreated(p TaskCreatedPayload) {
	bus.send(EventTaskCreated, p)
}

// SubscribeTaskCreated registers a subscriber for task.created events.
func (bus *EventBus) SubscribeTaskCreated(fn func(TaskCreatedPayload)) {
	bus.subscribe(EventTaskCreated, func(v any) {
		if p, ok := v.(TaskCreatedPayload); ok {
			fn(p)
		}
	})
}

// PublishTaskRemoved publishes a task.removed event.
func (bus *EventBus) PublishTaskRemoved(p TaskRemovedPayload) {
	bus.send(EventTaskRemoved, p)
}

// SubscribeTaskRemoved registers a subscriber for task.removed events.
func (bus *EventBus) SubscribeTaskRemoved(fn func(TaskRemovedPayload)) {
	bus.subscribe(EventTaskRemoved, func(v any) {
		if p, ok := v.(TaskRemovedPayload); ok {
			fn(p)
		}
	})
}

// PublishHistoryPruned publishes a history.pruned event.
func (bus *EventBus) PublishHistoryPruned(p HistoryPrunedPayload) {
	bus.send(EventHistoryPruned, p)
}

// SubscribeHistoryPruned registers a subscriber for history.pruned events.
func (bus *EventBus) SubscribeHistoryPruned(fn func(HistoryPrunedPayload)) {
	bus.subscribe(EventHistoryPruned, func(v any) {
		if p, ok := v.(HistoryPrunedPayload); ok {
			fn(p)
		}
	})
}
