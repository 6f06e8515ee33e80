// Package timer implements the focus/break session state machine.
package timer

import (
	"sync"
	"time"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/settings"
)

// Mode represents the kind of session being counted down.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Label returns a human-readable name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "short break"
	case ModeLongBreak:
		return "long break"
	default:
		return "focus"
	}
}

// Completion describes a terminated session, whether it expired naturally
// or was skipped early.
type Completion struct {
	Mode          Mode
	ActualSeconds int    // elapsed seconds actually completed
	TaskID        string // empty unless Mode is focus and a task was selected
	Skipped       bool
	At            time.Time
}

// Sink receives every session completion. The engine fires it after the
// transition to the next mode has been decided and never waits on it for
// anything; recording and signalling are the sink's concern.
type Sink interface {
	SessionEnded(c Completion)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Completion)

// SessionEnded calls f.
func (f SinkFunc) SessionEnded(c Completion) { f(c) }

// State is a point-in-time snapshot of the engine.
type State struct {
	Mode             Mode
	RemainingSeconds int
	Running          bool

	// CompletedFocusBlocks counts focus completions since the engine was
	// created. It is deliberately never reset after a long break; the next
	// long break is decided by modulo against the configured interval.
	CompletedFocusBlocks int
}

// Engine owns the session state: current mode, remaining seconds, and the
// running flag. It reads durations from a settings snapshot provider and
// reports completions to a Sink. It never touches storage itself.
type Engine struct {
	mu   sync.Mutex
	cfg  func() settings.Settings
	sink Sink
	now  func() time.Time

	mode        Mode
	remaining   int
	running     bool
	focusBlocks int
	taskID      string
}

// NewEngine creates an engine in focus mode, stopped, with the full focus
// duration on the clock.
func NewEngine(cfg func() settings.Settings, sink Sink) *Engine {
	e := &Engine{
		cfg:  cfg,
		sink: sink,
		now:  time.Now,
		mode: ModeFocus,
	}
	e.remaining = plannedSeconds(ModeFocus, cfg())
	return e
}

// Start resumes the countdown. No-op if already running.
func (e *Engine) Start() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()
}

// Pause freezes the countdown without recording anything. No-op if already
// paused.
func (e *Engine) Pause() {
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
}

// Reset stops the countdown and restores the full planned duration for the
// current mode under the current settings. History is not touched.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
	e.remaining = plannedSeconds(e.mode, e.cfg())
}

// ResetTo stops the countdown and switches to the given mode with its full
// planned duration.
func (e *Engine) ResetTo(mode Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
	e.mode = mode
	e.remaining = plannedSeconds(mode, e.cfg())
}

// SelectTask attributes subsequent focus completions to the given task.
func (e *Engine) SelectTask(id string) {
	e.mu.Lock()
	e.taskID = id
	e.mu.Unlock()
}

// ClearTask removes the task attribution.
func (e *Engine) ClearTask() {
	e.SelectTask("")
}

// Snapshot returns a copy of the current state for presentation.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Mode:                 e.mode,
		RemainingSeconds:     e.remaining,
		Running:              e.running,
		CompletedFocusBlocks: e.focusBlocks,
	}
}

// Tick advances the countdown by one second. When the countdown crosses
// zero the session is finalized exactly once and the engine moves to the
// next mode. Ticks while paused are ignored.
func (e *Engine) Tick() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.remaining--
	var done *Completion
	if e.remaining <= 0 {
		e.remaining = 0
		done = e.expireLocked(false)
	}
	e.mu.Unlock()
	e.report(done)
}

// Skip terminates the current session immediately, recording whatever time
// has elapsed, and moves to the next mode stopped.
func (e *Engine) Skip() {
	e.mu.Lock()
	e.running = false
	done := e.expireLocked(true)
	e.mu.Unlock()
	e.report(done)
}

// expireLocked finalizes the current session and installs the next mode.
// Callers hold e.mu. The returned completion is delivered to the sink after
// the lock is released so a sink may safely call back into the engine.
func (e *Engine) expireLocked(skipped bool) *Completion {
	cfg := e.cfg()
	planned := plannedSeconds(e.mode, cfg)
	actual := planned - e.remaining
	if actual < 0 {
		actual = 0
	}

	done := &Completion{
		Mode:          e.mode,
		ActualSeconds: actual,
		Skipped:       skipped,
		At:            e.now(),
	}
	if e.mode == ModeFocus {
		done.TaskID = e.taskID
	}

	next := ModeFocus
	if e.mode == ModeFocus {
		e.focusBlocks++
		// Interval is re-clamped at read time; stored settings may predate
		// the current ranges.
		if e.focusBlocks%settings.ClampInterval(cfg.LongBreakInterval) == 0 {
			next = ModeLongBreak
		} else {
			next = ModeShortBreak
		}
	}

	e.mode = next
	e.remaining = plannedSeconds(next, cfg)
	e.running = cfg.AutoStartNext && !skipped

	return done
}

func (e *Engine) report(done *Completion) {
	if done == nil || e.sink == nil {
		return
	}
	e.sink.SessionEnded(*done)
}

func plannedSeconds(mode Mode, cfg settings.Settings) int {
	switch mode {
	case ModeShortBreak:
		return cfg.ShortBreakMinutes * 60
	case ModeLongBreak:
		return cfg.LongBreakMinutes * 60
	default:
		return cfg.FocusMinutes * 60
	}
}
