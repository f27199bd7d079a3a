package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thomasahle/trainbox"
	"github.com/thomasahle/trainbox/gfx"
)

// Director runs the current scene and draws the stage. It implements
// ebiten.Game.
type Director struct {
	stage         *gfx.Stage
	scene         Scene
	width, height int
	quit          bool

	// OnUpdate, when set, runs after the scene each frame.
	OnUpdate func(delta float64)
}

var _ ebiten.Game = (*Director)(nil)

// NewDirector creates a director drawing stage at a fixed logical size.
func NewDirector(stage *gfx.Stage, width, height int) *Director {
	return &Director{stage: stage, width: width, height: height}
}

// Stage returns the stage drawn by the director.
func (d *Director) Stage() *gfx.Stage {
	return d.stage
}

// Scene returns the current scene, or nil.
func (d *Director) Scene() Scene {
	return d.scene
}

// SetScene detaches the current scene and attaches s. s may be nil.
func (d *Director) SetScene(s Scene) {
	if d.scene != nil {
		d.scene.OnDetach()
	}
	d.scene = s
	if s != nil {
		s.OnAttach()
	}
	trainbox.Logger().Info("scene changed", "scene", fmt.Sprintf("%T", s))
}

// Quit makes the next Update end the game loop.
func (d *Director) Quit() {
	d.quit = true
}

// Update advances the scene by one tick.
func (d *Director) Update() error {
	if d.quit {
		return ebiten.Termination
	}
	delta := 1 / float64(ebiten.TPS())
	if d.scene != nil {
		d.scene.Update(delta)
	}
	if d.OnUpdate != nil {
		d.OnUpdate(delta)
	}
	d.stage.Update(delta)
	return nil
}

// Draw draws the stage.
func (d *Director) Draw(screen *ebiten.Image) {
	d.stage.Draw(screen)
}

// Layout keeps the logical screen size fixed.
func (d *Director) Layout(int, int) (int, int) {
	return d.width, d.height
}
