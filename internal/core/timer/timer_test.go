package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/settings"
)

// quickSettings keeps planned durations tiny so tests can tick to expiry.
func quickSettings() settings.Settings {
	cfg := settings.Default()
	cfg.FocusMinutes = 1
	cfg.ShortBreakMinutes = 1
	cfg.LongBreakMinutes = 5
	cfg.LongBreakInterval = 4
	return cfg
}

func staticSettings(cfg settings.Settings) func() settings.Settings {
	return func() settings.Settings { return cfg }
}

// collector records every completion the engine reports.
type collector struct {
	done []Completion
}

func (c *collector) SessionEnded(done Completion) {
	c.done = append(c.done, done)
}

// tickUntilExpiry drains the current session. The final tick triggers the
// mode transition, so afterwards the engine is already in the next mode.
func tickUntilExpiry(t *testing.T, e *Engine) {
	t.Helper()
	remaining := e.Snapshot().RemainingSeconds
	require.Positive(t, remaining)
	for i := 0; i < remaining; i++ {
		e.Tick()
	}
}

func TestEngine_InitialState(t *testing.T) {
	e := NewEngine(staticSettings(quickSettings()), nil)

	st := e.Snapshot()
	assert.Equal(t, ModeFocus, st.Mode)
	assert.Equal(t, 60, st.RemainingSeconds)
	assert.False(t, st.Running)
	assert.Zero(t, st.CompletedFocusBlocks)
}

func TestEngine_TickIgnoredWhilePaused(t *testing.T) {
	e := NewEngine(staticSettings(quickSettings()), nil)

	e.Tick()
	e.Tick()

	assert.Equal(t, 60, e.Snapshot().RemainingSeconds)
}

func TestEngine_TickCountsDown(t *testing.T) {
	e := NewEngine(staticSettings(quickSettings()), nil)
	e.Start()

	prev := e.Snapshot().RemainingSeconds
	for i := 0; i < 10; i++ {
		e.Tick()
		cur := e.Snapshot().RemainingSeconds
		assert.Equal(t, prev-1, cur)
		prev = cur
	}
}

func TestEngine_PauseFreezesRemaining(t *testing.T) {
	e := NewEngine(staticSettings(quickSettings()), nil)
	e.Start()
	e.Tick()
	e.Tick()
	e.Pause()

	st := e.Snapshot()
	e.Tick()
	assert.Equal(t, st.RemainingSeconds, e.Snapshot().RemainingSeconds)
}

func TestEngine_ExpiryReportsOnce(t *testing.T) {
	sink := &collector{}
	e := NewEngine(staticSettings(quickSettings()), sink)
	e.Start()

	tickUntilExpiry(t, e)

	require.Len(t, sink.done, 1)
	done := sink.done[0]
	assert.Equal(t, ModeFocus, done.Mode)
	assert.Equal(t, 60, done.ActualSeconds)
	assert.False(t, done.Skipped)

	// Engine moved to the short break with the full duration on the clock.
	st := e.Snapshot()
	assert.Equal(t, ModeShortBreak, st.Mode)
	assert.Equal(t, 60, st.RemainingSeconds)
	assert.Equal(t, 1, st.CompletedFocusBlocks)
}

func TestEngine_AutoStartNext(t *testing.T) {
	cfg := quickSettings()
	cfg.AutoStartNext = true
	e := NewEngine(staticSettings(cfg), nil)
	e.Start()

	tickUntilExpiry(t, e)
	assert.True(t, e.Snapshot().Running)

	cfg.AutoStartNext = false
	e2 := NewEngine(staticSettings(cfg), nil)
	e2.Start()
	tickUntilExpiry(t, e2)
	assert.False(t, e2.Snapshot().Running)
}

func TestEngine_BreakCycle(t *testing.T) {
	sink := &collector{}
	e := NewEngine(staticSettings(quickSettings()), sink)

	var breaks []Mode
	for i := 0; i < 4; i++ {
		require.Equal(t, ModeFocus, e.Snapshot().Mode)
		e.Start()
		tickUntilExpiry(t, e)
		breaks = append(breaks, e.Snapshot().Mode)

		e.Start()
		tickUntilExpiry(t, e)
	}

	assert.Equal(t, []Mode{ModeShortBreak, ModeShortBreak, ModeShortBreak, ModeLongBreak}, breaks)
	assert.Equal(t, 4, e.Snapshot().CompletedFocusBlocks)
}

func TestEngine_CounterSurvivesLongBreak(t *testing.T) {
	e := NewEngine(staticSettings(quickSettings()), nil)

	// Run five full focus blocks: the fourth earns the long break, and the
	// count keeps accumulating through it.
	for i := 0; i < 5; i++ {
		e.Start()
		tickUntilExpiry(t, e)
		e.Start()
		tickUntilExpiry(t, e)
	}

	st := e.Snapshot()
	assert.Equal(t, 5, st.CompletedFocusBlocks)

	// Three more blocks reach 8, a multiple of the interval, so the long
	// break recurs without any reset in between.
	for i := 0; i < 2; i++ {
		e.Start()
		tickUntilExpiry(t, e)
		e.Start()
		tickUntilExpiry(t, e)
	}
	e.Start()
	tickUntilExpiry(t, e)

	assert.Equal(t, 8, e.Snapshot().CompletedFocusBlocks)
	assert.Equal(t, ModeLongBreak, e.Snapshot().Mode)
}

func TestEngine_SkipRecordsElapsed(t *testing.T) {
	sink := &collector{}
	e := NewEngine(staticSettings(quickSettings()), sink)
	e.Start()
	for i := 0; i < 10; i++ {
		e.Tick()
	}

	e.Skip()

	require.Len(t, sink.done, 1)
	done := sink.done[0]
	assert.Equal(t, 10, done.ActualSeconds)
	assert.True(t, done.Skipped)

	// Skip never auto-starts the next session, regardless of settings.
	assert.False(t, e.Snapshot().Running)
	assert.Equal(t, ModeShortBreak, e.Snapshot().Mode)
}

func TestEngine_SkipImmediately(t *testing.T) {
	sink := &collector{}
	e := NewEngine(staticSettings(quickSettings()), sink)

	e.Skip()

	require.Len(t, sink.done, 1)
	assert.Zero(t, sink.done[0].ActualSeconds)
	assert.True(t, sink.done[0].Skipped)
}

func TestEngine_SkipCountsTowardLongBreak(t *testing.T) {
	e := NewEngine(staticSettings(quickSettings()), nil)

	// Skipped focus blocks still advance the long-break counter.
	for i := 0; i < 3; i++ {
		e.Skip() // focus
		e.Skip() // break
	}
	e.Skip() // fourth focus

	assert.Equal(t, ModeLongBreak, e.Snapshot().Mode)
	assert.Equal(t, 4, e.Snapshot().CompletedFocusBlocks)
}

func TestEngine_TaskAttribution(t *testing.T) {
	sink := &collector{}
	e := NewEngine(staticSettings(quickSettings()), sink)
	e.SelectTask("abc123")

	e.Start()
	tickUntilExpiry(t, e) // focus
	e.Start()
	tickUntilExpiry(t, e) // short break

	require.Len(t, sink.done, 2)
	assert.Equal(t, "abc123", sink.done[0].TaskID)
	assert.Empty(t, sink.done[1].TaskID, "breaks are never attributed to a task")
}

func TestEngine_ClearTask(t *testing.T) {
	sink := &collector{}
	e := NewEngine(staticSettings(quickSettings()), sink)
	e.SelectTask("abc123")
	e.ClearTask()

	e.Skip()

	require.Len(t, sink.done, 1)
	assert.Empty(t, sink.done[0].TaskID)
}

func TestEngine_Reset(t *testing.T) {
	e := NewEngine(staticSettings(quickSettings()), nil)
	e.Start()
	for i := 0; i < 15; i++ {
		e.Tick()
	}

	e.Reset()

	st := e.Snapshot()
	assert.False(t, st.Running)
	assert.Equal(t, ModeFocus, st.Mode)
	assert.Equal(t, 60, st.RemainingSeconds)
}

func TestEngine_ResetTo(t *testing.T) {
	e := NewEngine(staticSettings(quickSettings()), nil)
	e.ResetTo(ModeLongBreak)

	st := e.Snapshot()
	assert.Equal(t, ModeLongBreak, st.Mode)
	assert.Equal(t, 300, st.RemainingSeconds)
	assert.False(t, st.Running)
}

func TestEngine_SettingsChangeAppliesToNextSession(t *testing.T) {
	cfg := quickSettings()
	e := NewEngine(func() settings.Settings { return cfg }, nil)
	e.Start()
	e.Tick()

	// A mid-session change does not touch the running countdown...
	cfg.FocusMinutes = 2
	assert.Equal(t, 59, e.Snapshot().RemainingSeconds)

	// ...but the next session of that mode picks it up.
	for e.Snapshot().Mode == ModeFocus {
		e.Tick()
	}
	e.Skip() // short break -> focus
	assert.Equal(t, 120, e.Snapshot().RemainingSeconds)
}

func TestEngine_CompletionTimestamp(t *testing.T) {
	sink := &collector{}
	e := NewEngine(staticSettings(quickSettings()), sink)
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
	e.now = func() time.Time { return at }

	e.Skip()

	require.Len(t, sink.done, 1)
	assert.True(t, sink.done[0].At.Equal(at))
}

func TestEngine_SinkMayCallBack(t *testing.T) {
	var e *Engine
	var seen []State
	e = NewEngine(staticSettings(quickSettings()), SinkFunc(func(Completion) {
		// Completion is delivered outside the lock, so the sink can read the
		// engine without deadlocking.
		seen = append(seen, e.Snapshot())
	}))

	e.Skip()

	require.Len(t, seen, 1)
	assert.Equal(t, ModeShortBreak, seen[0].Mode)
}

func TestMode_Label(t *testing.T) {
	assert.Equal(t, "focus", ModeFocus.Label())
	assert.Equal(t, "short break", ModeShortBreak.Label())
	assert.Equal(t, "long break", ModeLongBreak.Label())
}
