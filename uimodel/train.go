package uimodel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/thomasahle/trainbox/gfx"
)

const (
	TrainWidth      = 40.0
	TrainHeight     = 24.0
	TrainGap        = 4.0
	ComponentHeight = 60.0
	DefaultSpeed    = 80.0 // px per second
)

// cargoPalette colors trains by cargo, cycling when cargo exceeds its length.
var cargoPalette = []color.RGBA{
	colornames.Crimson,
	colornames.Royalblue,
	colornames.Gold,
	colornames.Seagreen,
	colornames.Darkorange,
	colornames.Mediumpurple,
	colornames.Teal,
	colornames.Hotpink,
}

// CargoColor returns the display color for a cargo value.
func CargoColor(cargo int) gfx.Color {
	i := cargo % len(cargoPalette)
	if i < 0 {
		i += len(cargoPalette)
	}
	return gfx.ColorFromRGBA(cargoPalette[i])
}

var trainImages = map[int]*ebiten.Image{}

func trainImage(cargo int) *ebiten.Image {
	if img, ok := trainImages[cargo]; ok {
		return img
	}
	body := CargoColor(cargo)
	rim := gfx.Color{R: body.R * 0.6, G: body.G * 0.6, B: body.B * 0.6, A: 1}
	canvas := gfx.NewCanvasImage(int(TrainWidth), int(TrainHeight))
	canvas.SetFillColor(rim).FillRect(0, 0, TrainWidth, TrainHeight).
		SetFillColor(body).FillRect(2, 2, TrainWidth-4, TrainHeight-4)
	trainImages[cargo] = canvas.Image()
	return canvas.Image()
}

var trainIDCounter uint32

// Train is a single carriage carrying one cargo value.
type Train struct {
	id    uint32
	cargo int
	x     float64
	layer *gfx.Layer
}

// NewTrain creates a train carrying cargo, positioned at x = 0.
func NewTrain(cargo int) *Train {
	trainIDCounter++
	t := &Train{id: trainIDCounter, cargo: cargo}
	t.layer = gfx.NewImageLayer(fmt.Sprintf("train/%d", t.id), trainImage(cargo))
	return t
}

// ID returns the train's process-unique id.
func (t *Train) ID() uint32 { return t.id }

// Cargo returns the cargo value.
func (t *Train) Cargo() int { return t.cargo }

// X returns the local x of the train's left edge within its component.
func (t *Train) X() float64 { return t.x }

// SetX moves the train within its component.
func (t *Train) SetX(x float64) {
	t.x = x
	t.layer.SetTranslation(x, (ComponentHeight-TrainHeight)/2)
}

// Layer returns the train's image layer.
func (t *Train) Layer() *gfx.Layer { return t.layer }

// Copy returns a new train with the same cargo.
func (t *Train) Copy() *Train {
	return NewTrain(t.cargo)
}

func (t *Train) String() string {
	return fmt.Sprintf("train#%d(%d)", t.id, t.cargo)
}
