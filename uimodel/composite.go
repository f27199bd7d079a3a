package uimodel

import "slices"

// composite implements the child bookkeeping shared by composites: carriage
// collection, reverse-order updates, pause propagation and re-firing of
// child train events.
type composite struct {
	component
	children []Component
}

func (c *composite) Children() []Component {
	return slices.Clone(c.children)
}

func (c *composite) Carriages() []*Train {
	var carriages []*Train
	for _, child := range c.children {
		carriages = append(carriages, child.Carriages()...)
	}
	return carriages
}

// Update updates children from last to first so that trains leaving a
// component free room before the component behind it moves.
func (c *composite) Update(delta float64) {
	for i := len(c.children) - 1; i >= 0; i-- {
		c.children[i].Update(delta)
	}
}

// install propagates the pause state to child and subscribes to its train
// events.
func (c *composite) install(child Component) {
	child.SetPaused(c.Paused())
	child.SetTrainsChangedListener(c)
}

func (c *composite) OnTrainCreated(t *Train) { c.fireTrainCreated(t) }

func (c *composite) OnTrainDestroyed(t *Train) { c.fireTrainDestroyed(t) }

func (c *composite) SetPaused(paused bool) {
	c.component.SetPaused(paused)
	for _, child := range c.children {
		child.SetPaused(paused)
	}
}
