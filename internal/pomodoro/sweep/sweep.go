// Package sweep runs the background history retention sweep.
package sweep

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Pruner removes expired history entries relative to now.
type Pruner interface {
	Prune(ctx context.Context, now time.Time) (int64, error)
}

// Start periodically prunes history entries older than the retention
// window. It blocks until the context is cancelled. The sweep is redundant
// with the prune that runs on every append; it exists so an idle process
// still ages out old entries.
func Start(ctx context.Context, store Pruner, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := store.Prune(ctx, time.Now()); err != nil {
				log.Debug().Err(err).Msg("history sweep failed")
			}
		}
	}
}
