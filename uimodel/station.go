package uimodel

import (
	"github.com/tanema/gween/ease"

	"github.com/thomasahle/trainbox"
	"github.com/thomasahle/trainbox/gfx"
)

// slideSeconds is how long a waiting train takes to move up one place.
const slideSeconds = 0.25

// Station feeds waiting trains into its taker, one at a time, whenever the
// taker has room for another train.
type Station struct {
	waiting []*Train
	taker   TrainTaker
	paused  bool
	layer   *gfx.Layer
	slides  map[*Train]*gfx.TweenGroup
}

// NewStation creates a station holding trains in line order: trains[0]
// leaves first.
func NewStation(trains []*Train) *Station {
	s := &Station{
		layer:  gfx.NewGroupLayer("station"),
		slides: make(map[*Train]*gfx.TweenGroup),
	}
	for i, t := range trains {
		s.layer.Add(t.Layer())
		s.waiting = append(s.waiting, t)
		t.SetX(queueX(i))
	}
	return s
}

// Layer holds the waiting trains, right-aligned at x = 0.
func (s *Station) Layer() *gfx.Layer { return s.layer }

// SetTrainTaker sets where departing trains go.
func (s *Station) SetTrainTaker(t TrainTaker) { s.taker = t }

// SetPaused stops or resumes departures.
func (s *Station) SetPaused(paused bool) { s.paused = paused }

// Waiting returns the number of trains still in the station.
func (s *Station) Waiting() int { return len(s.waiting) }

// Update slides waiting trains forward and dispatches the next train when
// the taker has room for it.
func (s *Station) Update(delta float64) {
	if s.paused {
		return
	}
	for t, tw := range s.slides {
		tw.Update(float32(delta))
		if tw.Done {
			delete(s.slides, t)
		}
	}
	if s.taker == nil || len(s.waiting) == 0 {
		return
	}
	if s.taker.LeftBlock() < TrainWidth+TrainGap {
		return
	}
	t := s.waiting[0]
	s.waiting[0] = nil
	s.waiting = s.waiting[1:]
	delete(s.slides, t)
	t.SetX(0)
	trainbox.Logger().Debug("train departs", "train", t.String(), "waiting", len(s.waiting))
	s.taker.TakeTrain(t)
	s.moveUp()
}

// moveUp tweens every waiting train to its place in the queue.
func (s *Station) moveUp() {
	for i, t := range s.waiting {
		l := t.Layer()
		s.slides[t] = gfx.TweenPosition(l, queueX(i), l.Y, slideSeconds, ease.OutQuad)
	}
}

// queueX is the x of the i-th waiting train; the queue ends at x = 0.
func queueX(i int) float64 {
	return -float64(i+1) * (TrainWidth + TrainGap)
}
