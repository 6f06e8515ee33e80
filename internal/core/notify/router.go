package notify

import (
	"fmt"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/eventbus"
	"github.com/Ibra084/CleanPomodoroApp/internal/core/settings"
)

// Router maps domain events to user-facing notifications. It consults the
// settings snapshot on every event, so toggling sound or notifications
// takes effect without re-registration.
type Router struct {
	bus      *eventbus.EventBus
	notifier Notifier
	cfg      func() settings.Settings
}

// NewRouter constructs a router for event-to-notification mappings.
func NewRouter(bus *eventbus.EventBus, notifier Notifier, cfg func() settings.Settings) *Router {
	return &Router{bus: bus, notifier: notifier, cfg: cfg}
}

// Register subscribes all supported event mappings.
func (r *Router) Register() {
	if r == nil || r.bus == nil || r.notifier == nil {
		return
	}

	r.bus.SubscribeSessionEnded(func(p eventbus.SessionEndedPayload) {
		verb := "complete"
		if p.WasSkipped {
			verb = "skipped"
		}
		r.sendf(LevelInfo, "%s session %s", p.Mode.Label(), verb)
	})

	r.bus.SubscribeSessionStarted(func(p eventbus.SessionStartedPayload) {
		r.sendf(LevelInfo, "%s session started", p.Mode.Label())
	})
}

func (r *Router) sendf(level Level, format string, args ...any) {
	cfg := r.cfg()
	if !cfg.SoundEnabled && !cfg.NotificationsEnabled {
		return
	}

	n := Notification{Level: level, Sound: cfg.SoundEnabled}
	if cfg.NotificationsEnabled {
		n.Message = fmt.Sprintf(format, args...)
	}
	r.notifier.Send(n)
}
