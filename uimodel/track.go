package uimodel

import (
	"math"

	"github.com/thomasahle/trainbox"
	"github.com/thomasahle/trainbox/gfx"
)

// track is the moving part shared by leaf components: a queue of trains
// travelling left to right. trains[0] is the front-most train.
type track struct {
	component
	name   string
	width  float64
	speed  float64
	trains []*Train
	bg     *gfx.CanvasImage
}

func newTrack(name string, width float64, fill gfx.Color) track {
	tr := track{
		component: newComponent(name),
		name:      name,
		width:     width,
		speed:     DefaultSpeed,
		bg:        gfx.NewCanvasImage(int(math.Ceil(width)), int(ComponentHeight)),
	}
	tr.bg.SetFillColor(fill).FillRect(0, 0, width, ComponentHeight).
		SetFillColor(gfx.ColorFromARGB(0xff5a4632)).
		FillRect(0, ComponentHeight/2+TrainHeight/2, width, 3)
	tr.back.Add(tr.bg.NewLayer(name + "/bg"))
	return tr
}

func (tr *track) Size() gfx.Dimension {
	return gfx.Dimension{Width: tr.width, Height: ComponentHeight}
}

// SetSpeed sets the travel speed in pixels per second.
func (tr *track) SetSpeed(speed float64) { tr.speed = speed }

func (tr *track) Carriages() []*Train {
	out := make([]*Train, len(tr.trains))
	copy(out, tr.trains)
	return out
}

func (tr *track) TakeTrain(t *Train) {
	tr.enqueue(t, t.X())
}

func (tr *track) LeftBlock() float64 {
	if len(tr.trains) == 0 {
		return math.Inf(1)
	}
	return tr.trains[len(tr.trains)-1].X()
}

func (tr *track) Update(delta float64) {
	tr.move(delta, math.Inf(1))
}

// enqueue appends t behind the last train and shows it on the front layer.
func (tr *track) enqueue(t *Train, x float64) {
	tr.front.Add(t.Layer())
	t.SetX(x)
	tr.trains = append(tr.trains, t)
}

// move advances every train by speed*delta. The front train may not pass
// frontLimit, the taker's left block, or the right edge when there is no
// taker. Trains whose left edge crosses the right edge are handed over.
func (tr *track) move(delta, frontLimit float64) {
	if tr.paused {
		return
	}
	step := tr.speed * delta
	for i, t := range tr.trains {
		var limit float64
		if i == 0 {
			limit = frontLimit
			if tr.taker == nil {
				limit = math.Min(limit, tr.width-TrainWidth)
			} else {
				limit = math.Min(limit, tr.width+tr.taker.LeftBlock()-TrainGap-TrainWidth)
			}
		} else {
			limit = tr.trains[i-1].X() - TrainGap - TrainWidth
		}
		if x := math.Min(t.X()+step, limit); x > t.X() {
			t.SetX(x)
		}
	}
	for len(tr.trains) > 0 && tr.taker != nil {
		// A train handed in past its exit still waits for room in the taker.
		if limit := tr.width + tr.taker.LeftBlock() - TrainGap - TrainWidth; tr.trains[0].X() > limit {
			tr.pullBack(limit)
		}
		if tr.trains[0].X() < tr.width {
			break
		}
		t := tr.trains[0]
		tr.trains[0] = nil
		tr.trains = tr.trains[1:]
		t.SetX(t.X() - tr.width)
		trainbox.Logger().Debug("passing train down", "from", tr.name, "train", t.String())
		tr.taker.TakeTrain(t)
	}
}

// pullBack moves the front train back to x and keeps the trains behind it
// spaced.
func (tr *track) pullBack(x float64) {
	for _, t := range tr.trains {
		if t.X() <= x {
			return
		}
		t.SetX(x)
		x -= TrainGap + TrainWidth
	}
}
