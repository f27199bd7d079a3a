package uimodel

import "github.com/thomasahle/trainbox/gfx"

// TrainTaker accepts trains leaving a component.
type TrainTaker interface {
	// TakeTrain hands t over. t.X() is already in the taker's local space.
	TakeTrain(t *Train)
	// LeftBlock returns the local x of the left edge of the nearest obstacle
	// a new train would run into, or +Inf when the taker is empty.
	LeftBlock() float64
}

// TrainsChangedListener is told about trains appearing and disappearing.
type TrainsChangedListener interface {
	OnTrainCreated(t *Train)
	OnTrainDestroyed(t *Train)
}

// Component is a segment of track.
type Component interface {
	TrainTaker

	Update(delta float64)
	SetPaused(paused bool)
	Paused() bool

	SetTrainTaker(t TrainTaker)
	Taker() TrainTaker
	SetTrainsChangedListener(l TrainsChangedListener)

	// Carriages returns every train currently on the component.
	Carriages() []*Train

	Position() gfx.Point
	SetPosition(p gfx.Point)
	Size() gfx.Dimension
	BackLayer() *gfx.Layer
	FrontLayer() *gfx.Layer

	OnAdded(parent Composite)
	Parent() Composite
}

// Composite is a component with children.
type Composite interface {
	Component
	// Children returns a copy of the child list.
	Children() []Component
	// InsertChildAt inserts child at a point in the composite's local space.
	// It reports whether the point was accepted.
	InsertChildAt(child Component, pos gfx.Point) bool
}

// component holds the state shared by every Component implementation.
type component struct {
	paused   bool
	taker    TrainTaker
	listener TrainsChangedListener
	position gfx.Point
	parent   Composite

	back  *gfx.Layer
	front *gfx.Layer
}

func newComponent(name string) component {
	return component{
		back:  gfx.NewGroupLayer(name + "/back"),
		front: gfx.NewGroupLayer(name + "/front"),
	}
}

func (c *component) SetPaused(paused bool) { c.paused = paused }

func (c *component) Paused() bool { return c.paused }

func (c *component) SetTrainTaker(t TrainTaker) { c.taker = t }

func (c *component) Taker() TrainTaker { return c.taker }

func (c *component) SetTrainsChangedListener(l TrainsChangedListener) { c.listener = l }

func (c *component) Position() gfx.Point { return c.position }

// SetPosition moves both layers; they are positioned relative to the
// parent's layers.
func (c *component) SetPosition(p gfx.Point) {
	c.position = p
	c.back.SetTranslation(p.X, p.Y)
	c.front.SetTranslation(p.X, p.Y)
}

func (c *component) BackLayer() *gfx.Layer { return c.back }

func (c *component) FrontLayer() *gfx.Layer { return c.front }

func (c *component) OnAdded(parent Composite) { c.parent = parent }

func (c *component) Parent() Composite { return c.parent }

func (c *component) fireTrainCreated(t *Train) {
	if c.listener != nil {
		c.listener.OnTrainCreated(t)
	}
}

func (c *component) fireTrainDestroyed(t *Train) {
	if c.listener != nil {
		c.listener.OnTrainDestroyed(t)
	}
}
