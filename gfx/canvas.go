package gfx

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// CanvasImage is a persistent offscreen image that can be painted with
// filled rectangles and shown through an image layer.
type CanvasImage struct {
	image *ebiten.Image
	w, h  int
	fill  Color
}

// NewCanvasImage creates a transparent canvas of the given size.
func NewCanvasImage(w, h int) *CanvasImage {
	return &CanvasImage{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
		fill:  ColorWhite,
	}
}

// Image returns the underlying image.
func (c *CanvasImage) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *CanvasImage) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *CanvasImage) Height() int {
	return c.h
}

// FillColor returns the color used by FillRect.
func (c *CanvasImage) FillColor() Color {
	return c.fill
}

// SetFillColor sets the color used by subsequent FillRect calls.
func (c *CanvasImage) SetFillColor(col Color) *CanvasImage {
	c.fill = col
	return c
}

// FillRect fills the rectangle with the current fill color. The rectangle is
// clipped to the canvas; an empty intersection is a no-op.
func (c *CanvasImage) FillRect(x, y, w, h float64) *CanvasImage {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(c.image.Bounds())
	if r.Empty() {
		return c
	}
	c.image.SubImage(r).(*ebiten.Image).Fill(c.fill.RGBA())
	return c
}

// Clear resets the canvas to transparent black.
func (c *CanvasImage) Clear() *CanvasImage {
	c.image.Clear()
	return c
}

// NewLayer creates an image layer showing this canvas.
func (c *CanvasImage) NewLayer(name string) *Layer {
	return NewImageLayer(name, c.image)
}
