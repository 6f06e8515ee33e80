// Package settings defines the durable timer configuration and its clamping rules.
package settings

import "context"

// Clamp ranges for the numeric settings fields. Values outside these ranges
// are never persisted; they are pulled back into range on every write and
// again after every read.
const (
	MinFocusMinutes = 1
	MaxFocusMinutes = 180

	MinShortBreakMinutes = 1
	MaxShortBreakMinutes = 60

	MinLongBreakMinutes = 5
	MaxLongBreakMinutes = 90

	MinLongBreakInterval = 2
	MaxLongBreakInterval = 12
)

// Settings is the user-facing timer configuration singleton.
type Settings struct {
	FocusMinutes         int  `json:"focus_minutes" yaml:"focus_minutes"`
	ShortBreakMinutes    int  `json:"short_break_minutes" yaml:"short_break_minutes"`
	LongBreakMinutes     int  `json:"long_break_minutes" yaml:"long_break_minutes"`
	LongBreakInterval    int  `json:"long_break_interval" yaml:"long_break_interval"`
	AutoStartNext        bool `json:"auto_start_next" yaml:"auto_start_next"`
	SoundEnabled         bool `json:"sound_enabled" yaml:"sound_enabled"`
	NotificationsEnabled bool `json:"notifications_enabled" yaml:"notifications_enabled"`
}

// Default returns the stock pomodoro configuration.
func Default() Settings {
	return Settings{
		FocusMinutes:         25,
		ShortBreakMinutes:    5,
		LongBreakMinutes:     15,
		LongBreakInterval:    4,
		AutoStartNext:        false,
		SoundEnabled:         true,
		NotificationsEnabled: true,
	}
}

// Clamp pulls every numeric field back into its allowed range.
// Clamping an already-valid value is a no-op.
func (s *Settings) Clamp() {
	s.FocusMinutes = clamp(s.FocusMinutes, MinFocusMinutes, MaxFocusMinutes)
	s.ShortBreakMinutes = clamp(s.ShortBreakMinutes, MinShortBreakMinutes, MaxShortBreakMinutes)
	s.LongBreakMinutes = clamp(s.LongBreakMinutes, MinLongBreakMinutes, MaxLongBreakMinutes)
	s.LongBreakInterval = ClampInterval(s.LongBreakInterval)
}

// ClampInterval clamps a long-break interval into its allowed range.
// The session engine re-applies this at read time as a guard against
// stored values that predate the current ranges.
func ClampInterval(n int) int {
	return clamp(n, MinLongBreakInterval, MaxLongBreakInterval)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Store persists the settings singleton.
type Store interface {
	// Load returns the persisted settings. Implementations fall back to
	// Default values when nothing is stored or the stored record is
	// unreadable; a non-nil error reports the failure without invalidating
	// the returned value.
	Load(ctx context.Context) (Settings, error)

	// Save clamps and persists the settings.
	Save(ctx context.Context, s Settings) error
}
