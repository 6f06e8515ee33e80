// Package notify delivers user-facing session signals: the sound and
// notification collaborators the session engine fires and forgets.
package notify

import (
	"fmt"
	"io"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/styles"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one user-facing signal. Message may be empty when only
// the sound cue is enabled.
type Notification struct {
	Level   Level
	Message string
	Sound   bool
}

// Notifier delivers a notification to the user. Implementations are
// best-effort: failure or unavailability never propagates back to the
// engine, matching the permission-denied policy for system notifications.
type Notifier interface {
	Send(n Notification)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Send does nothing.
func (NopNotifier) Send(Notification) {}

// BellNotifier writes a terminal bell for sound cues and a styled line for
// messages.
type BellNotifier struct {
	W io.Writer
}

// Send writes the notification to the underlying writer.
func (n BellNotifier) Send(msg Notification) {
	if n.W == nil {
		return
	}
	if msg.Sound {
		fmt.Fprint(n.W, "\a")
	}
	if msg.Message == "" {
		return
	}

	style := styles.Accent
	switch msg.Level {
	case LevelWarning:
		style = styles.Warning
	case LevelError:
		style = styles.Error
	}
	fmt.Fprintln(n.W, style.Render(msg.Message))
}
