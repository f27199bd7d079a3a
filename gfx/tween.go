package gfx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two float64 fields of a Layer. Call Update each
// frame; the group writes values back and marks the layer dirty. A group
// whose target is disposed stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Layer
	Done   bool
}

// Update advances the tweens by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition animates layer.X and layer.Y to (toX, toY).
func TweenPosition(layer *Layer, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: layer}
	g.tweens[0] = gween.New(float32(layer.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(layer.Y), float32(toY), duration, fn)
	g.fields[0] = &layer.X
	g.fields[1] = &layer.Y
	return g
}

// TweenAlpha animates layer.Alpha to the target value.
func TweenAlpha(layer *Layer, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: layer}
	g.tweens[0] = gween.New(float32(layer.Alpha), float32(to), duration, fn)
	g.fields[0] = &layer.Alpha
	return g
}
