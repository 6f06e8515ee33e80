package timer

import (
	"context"
	"time"
)

// Run drives the engine's countdown off a wall-clock ticker until the
// context is cancelled. The tick is nominal, not real-time: a delayed tick
// is not compensated for. onTick, if non-nil, receives a state snapshot
// after every tick for presentation.
func Run(ctx context.Context, e *Engine, interval time.Duration, onTick func(State)) {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Tick()
			if onTick != nil {
				onTick(e.Snapshot())
			}
		}
	}
}
