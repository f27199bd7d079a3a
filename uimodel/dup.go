package uimodel

import (
	"math"

	"github.com/thomasahle/trainbox/gfx"
)

// DupComponent lets every train through followed by a copy of itself.
type DupComponent struct {
	track
	pending []*Train
}

var _ Component = (*DupComponent)(nil)

// NewDupComponent creates a duplicating segment.
func NewDupComponent() *DupComponent {
	return &DupComponent{track: newTrack("dup", 2*TrainWidth+2*TrainGap, gfx.ColorFromARGB(0xff4f7cac))}
}

func (d *DupComponent) TakeTrain(t *Train) {
	d.track.TakeTrain(t)
	d.pending = append(d.pending, t.Copy())
}

// LeftBlock blocks the entry while a copy is waiting to be released.
func (d *DupComponent) LeftBlock() float64 {
	if len(d.pending) > 0 {
		return math.Min(0, d.track.LeftBlock())
	}
	return d.track.LeftBlock()
}

func (d *DupComponent) Update(delta float64) {
	d.track.Update(delta)
	if d.paused || len(d.pending) == 0 {
		return
	}
	if d.track.LeftBlock() < TrainWidth+TrainGap {
		return
	}
	c := d.pending[0]
	d.pending[0] = nil
	d.pending = d.pending[1:]
	d.enqueue(c, 0)
	d.fireTrainCreated(c)
}
