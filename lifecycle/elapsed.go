package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/menulens/menulens-go/types"
)

// overtimeAfterSeconds is where the indicator flips from normal to overtime.
const overtimeAfterSeconds = 60

// FormatElapsed renders whole seconds as "41s" or "2m 5s".
func FormatElapsed(seconds int) string {
	minutes := seconds / 60
	if minutes == 0 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds%60)
}

// PhaseFor maps elapsed seconds to the visual phase.
func PhaseFor(seconds int) types.VisualPhase {
	if seconds <= overtimeAfterSeconds {
		return types.PhaseNormal
	}
	return types.PhaseOvertime
}

func elapsedSeconds(now, startedAt time.Time) int {
	seconds := int(now.Sub(startedAt) / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}

// runReporter emits an elapsed-time event on every tick while the operation
// is still running. The operation context stops it on every terminal
// transition, so no orphaned ticks outlive a cancellation or completion.
func (c *Controller) runReporter(ctx context.Context, token string) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.emitMu.Lock()
			c.mu.Lock()
			if c.token != token || c.startedAt.IsZero() {
				c.mu.Unlock()
				c.emitMu.Unlock()
				return
			}
			ev := c.eventLocked()
			c.mu.Unlock()
			c.emit(ev)
			c.emitMu.Unlock()
		}
	}
}
