// Package gfx is a small retained-mode layer tree for [Ebitengine].
//
// A [Stage] owns a root group [Layer]. Group layers hold children; image
// layers draw an *ebiten.Image at their world transform. Children inherit
// their parent's translation, scale and alpha. Layers are not safe for
// concurrent use; all mutation happens on the game goroutine.
//
// [Ebitengine]: https://ebitengine.org
package gfx

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromARGB converts a packed 0xAARRGGBB value into a Color.
func ColorFromARGB(argb uint32) Color {
	return Color{
		R: float64(argb>>16&0xff) / 255,
		G: float64(argb>>8&0xff) / 255,
		B: float64(argb&0xff) / 255,
		A: float64(argb>>24&0xff) / 255,
	}
}

// ColorFromRGBA converts a standard library color into a Color.
func ColorFromRGBA(c color.RGBA) Color {
	if c.A == 0 {
		return Color{}
	}
	a := float64(c.A)
	return Color{
		R: float64(c.R) / a,
		G: float64(c.G) / a,
		B: float64(c.B) / a,
		A: a / 255,
	}
}

// RGBA returns the premultiplied 8-bit form used by ebiten.Image.Fill.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is a position in layer coordinates. Y grows downward.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dimension is a width and height pair.
type Dimension struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle. The right and
// bottom edges are exclusive so that adjacent rectangles never both contain
// a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// LayerType distinguishes rendering behavior for a Layer.
type LayerType uint8

const (
	LayerTypeGroup LayerType = iota // holds children, draws nothing itself
	LayerTypeImage                  // draws an image
)
