package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewFPSLayer creates an image layer showing the current FPS and TPS,
// refreshed about twice a second. Add it last so it draws on top.
func NewFPSLayer() *Layer {
	img := ebiten.NewImage(100, 32)
	layer := NewImageLayer("fps", img)

	var sinceRefresh float64
	layer.OnUpdate = func(dt float64) {
		sinceRefresh += dt
		if sinceRefresh < 0.5 {
			return
		}
		sinceRefresh = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return layer
}
