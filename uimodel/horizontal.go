package uimodel

import (
	"fmt"
	"slices"

	"github.com/thomasahle/trainbox"
	"github.com/thomasahle/trainbox/gfx"
)

const backgroundSize = 1000

// HorizontalComponent lays its children out left to right and chains them so
// that each child hands trains to the next. The last child hands trains to the
// composite's own taker.
//
// Children always alternate with identity segments: the first and last child
// are identities and every component added sits between two of them. Padding
// identities are at even indices, components at odd ones.
type HorizontalComponent struct {
	composite
	padding float64
	bg      *gfx.CanvasImage
}

var _ Composite = (*HorizontalComponent)(nil)

// NewHorizontalComponent creates a horizontal composite holding a single
// identity segment padding pixels wide.
func NewHorizontalComponent(padding float64) *HorizontalComponent {
	h := &HorizontalComponent{
		composite: composite{component: newComponent("horizontal")},
		padding:   padding,
		bg:        gfx.NewCanvasImage(backgroundSize, backgroundSize),
	}
	h.back.Add(h.bg.NewLayer("horizontal/bg"))
	h.insert(NewIdentityComponent(padding), 0)
	return h
}

// Padding returns the width of the identity segments between children.
func (h *HorizontalComponent) Padding() float64 {
	return h.padding
}

// Add appends comp followed by a new identity segment.
func (h *HorizontalComponent) Add(comp Component) {
	h.insert(comp, len(h.children))
	h.insert(NewIdentityComponent(h.padding), len(h.children))
}

// InsertChildAt accepts points over an identity segment, which for the player
// are the gaps between real components. child is inserted before that
// identity, preceded by a new identity. Points over a nested composite are
// translated into its space and handled there.
//
// Trains already on the track keep their components.
func (h *HorizontalComponent) InsertChildAt(child Component, pos gfx.Point) bool {
	for p, c := range h.children {
		cp, size := c.Position(), c.Size()
		if !(gfx.Rect{X: cp.X, Y: cp.Y, Width: size.Width, Height: size.Height}).Contains(pos.X, pos.Y) {
			continue
		}
		switch c := c.(type) {
		case Composite:
			return c.InsertChildAt(child, pos.Sub(cp))
		case *IdentityComponent:
			if !isGap(p) {
				// An identity the track asked for, not padding.
				return false
			}
			trainbox.Logger().Debug("inserting component", "position", p)
			h.insert(child, p)
			h.insert(NewIdentityComponent(h.padding), p)
			return true
		}
		return false
	}
	return false
}

// insert places comp at index pos, rewires the train-taker chain around it,
// shifts the following children right and repaints the background.
func (h *HorizontalComponent) insert(comp Component, pos int) {
	if pos < 0 || pos > len(h.children) {
		panic(fmt.Sprintf("trainbox: insert position %d out of range [0, %d]", pos, len(h.children)))
	}

	if pos > 0 {
		h.children[pos-1].SetTrainTaker(comp)
	}
	if pos < len(h.children) {
		comp.SetTrainTaker(h.children[pos])
	} else {
		comp.SetTrainTaker(h.Taker())
	}

	w := comp.Size().Width
	for _, c := range h.children[pos:] {
		c.SetPosition(c.Position().Add(gfx.Point{X: w}))
	}

	h.back.Add(comp.BackLayer())
	h.front.Add(comp.FrontLayer())
	if pos > 0 {
		prev := h.children[pos-1]
		comp.SetPosition(gfx.Point{X: prev.Position().X + prev.Size().Width})
	} else {
		comp.SetPosition(gfx.Point{})
	}

	h.children = slices.Insert(h.children, pos, comp)
	comp.OnAdded(h)
	h.install(comp)

	h.updateBackground()
}

// isGap reports whether index i holds a padding identity.
func isGap(i int) bool {
	return i%2 == 0
}

func (h *HorizontalComponent) updateBackground() {
	size := h.Size()
	h.bg.Clear().
		SetFillColor(gfx.ColorFromARGB(0xaa00ff00)).
		FillRect(0, 0, size.Width, size.Height)
}

// Size is the sum of the children's widths by the tallest child.
func (h *HorizontalComponent) Size() gfx.Dimension {
	var size gfx.Dimension
	for _, c := range h.children {
		cs := c.Size()
		size.Width += cs.Width
		size.Height = max(size.Height, cs.Height)
	}
	return size
}

// SetTrainTaker also rewires the last child, which hands trains out of the
// composite.
func (h *HorizontalComponent) SetTrainTaker(t TrainTaker) {
	h.component.SetTrainTaker(t)
	h.children[len(h.children)-1].SetTrainTaker(t)
}

// TakeTrain passes t to the first child.
func (h *HorizontalComponent) TakeTrain(t *Train) {
	trainbox.Logger().Debug("passing train down", "from", "horizontal", "train", t.String())
	h.children[0].TakeTrain(t)
}

func (h *HorizontalComponent) LeftBlock() float64 {
	return h.children[0].LeftBlock()
}
