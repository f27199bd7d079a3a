package gfx

import (
	"image/color"
	"testing"
)

func TestColorFromARGB(t *testing.T) {
	c := ColorFromARGB(0xaa00ff00)
	if !approxEqual(c.A, 0xaa/255.0) || c.R != 0 || c.G != 1 || c.B != 0 {
		t.Errorf("ColorFromARGB = %+v", c)
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	got := Color{1, 1, 1, 0.5}.RGBA()
	want := color.RGBA{127, 127, 127, 127}
	if got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
}

func TestColorFromRGBARoundTrip(t *testing.T) {
	c := ColorFromRGBA(color.RGBA{255, 0, 0, 255})
	if c != (Color{1, 0, 0, 1}) {
		t.Errorf("ColorFromRGBA = %+v", c)
	}
	if ColorFromRGBA(color.RGBA{}) != (Color{}) {
		t.Error("transparent should map to zero Color")
	}
}

func TestRectContainsExclusiveRightEdge(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(0, 0) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(10, 5) {
		t.Error("right edge should be outside")
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}.Add(Point{1, 1}).Sub(Point{2, 0})
	if p != (Point{2, 5}) {
		t.Errorf("p = %v, want {2 5}", p)
	}
}
