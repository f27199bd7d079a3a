package gfx

import (
	"fmt"
	"time"

	"github.com/thomasahle/trainbox"
)

// drawStats holds per-frame metrics. Only logged in debug mode.
type drawStats struct {
	drawTime  time.Duration
	visited   int
	drawCalls int
}

func (s *Stage) debugLog(stats drawStats) {
	if !s.debug {
		return
	}
	trainbox.Logger().Debug("frame",
		"draw", stats.drawTime,
		"layers", stats.visited,
		"draw_calls", stats.drawCalls)
}

// debugCheckDisposed panics when a disposed layer is used in a tree operation.
func debugCheckDisposed(l *Layer, op string) {
	if l.disposed {
		panic(fmt.Sprintf("trainbox debug: %s on disposed layer %q", op, l.Name))
	}
}
