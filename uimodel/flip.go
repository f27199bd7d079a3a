package uimodel

import (
	"math"

	"github.com/thomasahle/trainbox/gfx"
)

// FlipComponent swaps each pair of consecutive trains. The first train of a
// pair parks at the right end until the second arrives; the two then trade
// places and leave in reverse order.
type FlipComponent struct {
	track
	held *Train
}

var _ Component = (*FlipComponent)(nil)

// NewFlipComponent creates a flipping segment.
func NewFlipComponent() *FlipComponent {
	return &FlipComponent{track: newTrack("flip", 2*TrainWidth+2*TrainGap, gfx.ColorFromARGB(0xffac4f7c))}
}

func (f *FlipComponent) parkX() float64 {
	return f.width - TrainWidth
}

func (f *FlipComponent) TakeTrain(t *Train) {
	if f.held == nil {
		f.held = t
		f.front.Add(t.Layer())
		t.SetX(f.parkX())
		return
	}
	held := f.held
	f.held = nil
	entry := t.X()
	f.enqueue(t, held.X())
	f.trains = append(f.trains, held)
	held.SetX(entry)
}

// LeftBlock reports the parked train as the obstacle. While a flipped pair is
// still leaving the parking spot is taken, so the entry is blocked.
func (f *FlipComponent) LeftBlock() float64 {
	if f.held != nil {
		return f.held.X()
	}
	if len(f.trains) > 0 {
		return math.Min(0, f.track.LeftBlock())
	}
	return math.Inf(1)
}

func (f *FlipComponent) Carriages() []*Train {
	out := f.track.Carriages()
	if f.held != nil {
		out = append(out, f.held)
	}
	return out
}

// Held returns the parked train, or nil.
func (f *FlipComponent) Held() *Train {
	return f.held
}
