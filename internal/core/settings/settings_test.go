package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 25, cfg.FocusMinutes)
	assert.Equal(t, 5, cfg.ShortBreakMinutes)
	assert.Equal(t, 15, cfg.LongBreakMinutes)
	assert.Equal(t, 4, cfg.LongBreakInterval)
	assert.False(t, cfg.AutoStartNext)
	assert.True(t, cfg.SoundEnabled)
	assert.True(t, cfg.NotificationsEnabled)
}

func TestClamp_BelowMinimum(t *testing.T) {
	cfg := Settings{
		FocusMinutes:      0,
		ShortBreakMinutes: -5,
		LongBreakMinutes:  1,
		LongBreakInterval: 1,
	}
	cfg.Clamp()

	assert.Equal(t, MinFocusMinutes, cfg.FocusMinutes)
	assert.Equal(t, MinShortBreakMinutes, cfg.ShortBreakMinutes)
	assert.Equal(t, MinLongBreakMinutes, cfg.LongBreakMinutes)
	assert.Equal(t, MinLongBreakInterval, cfg.LongBreakInterval)
}

func TestClamp_AboveMaximum(t *testing.T) {
	cfg := Settings{
		FocusMinutes:      500,
		ShortBreakMinutes: 200,
		LongBreakMinutes:  999,
		LongBreakInterval: 50,
	}
	cfg.Clamp()

	assert.Equal(t, MaxFocusMinutes, cfg.FocusMinutes)
	assert.Equal(t, MaxShortBreakMinutes, cfg.ShortBreakMinutes)
	assert.Equal(t, MaxLongBreakMinutes, cfg.LongBreakMinutes)
	assert.Equal(t, MaxLongBreakInterval, cfg.LongBreakInterval)
}

func TestClamp_ValidIsIdempotent(t *testing.T) {
	cfg := Default()
	cfg.Clamp()
	assert.Equal(t, Default(), cfg)

	again := cfg
	again.Clamp()
	assert.Equal(t, cfg, again)
}

func TestClampInterval(t *testing.T) {
	assert.Equal(t, MinLongBreakInterval, ClampInterval(0))
	assert.Equal(t, MinLongBreakInterval, ClampInterval(1))
	assert.Equal(t, 4, ClampInterval(4))
	assert.Equal(t, MaxLongBreakInterval, ClampInterval(100))
}
