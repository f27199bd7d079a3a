package uimodel

import (
	"math"

	"github.com/thomasahle/trainbox"
)

// Terminal is the end of the line. Arriving trains are recorded, removed from
// display and reported to the listener as destroyed.
type Terminal struct {
	arrived  []int
	listener TrainsChangedListener
}

var _ TrainTaker = (*Terminal)(nil)

// NewTerminal creates an empty terminal.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// SetTrainsChangedListener sets the listener told about arrivals.
func (t *Terminal) SetTrainsChangedListener(l TrainsChangedListener) {
	t.listener = l
}

func (t *Terminal) TakeTrain(train *Train) {
	t.arrived = append(t.arrived, train.Cargo())
	trainbox.Logger().Debug("train arrived", "train", train.String(), "arrived", len(t.arrived))
	train.Layer().Dispose()
	if t.listener != nil {
		t.listener.OnTrainDestroyed(train)
	}
}

// LeftBlock is always +Inf: the terminal never fills up.
func (t *Terminal) LeftBlock() float64 {
	return math.Inf(1)
}

// Arrived returns the cargo of every arrived train in arrival order.
func (t *Terminal) Arrived() []int {
	out := make([]int, len(t.arrived))
	copy(out, t.arrived)
	return out
}
