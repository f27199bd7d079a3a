package gfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Stage owns the root layer and draws the tree to the screen.
type Stage struct {
	root  *Layer
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	screenshotQueue []string
	frame           uint64
	op              ebiten.DrawImageOptions
}

// NewStage creates a stage with an empty root group layer.
func NewStage() *Stage {
	return &Stage{
		root:          NewGroupLayer("root"),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the stage's root layer.
func (s *Stage) Root() *Layer {
	return s.root
}

// SetDebugMode enables per-frame stats at debug level and disposed-layer
// checks on tree operations.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recent SetDebugMode so layer operations, which
// have no Stage pointer, can check it.
var globalDebug bool

// Update runs OnUpdate hooks with dt seconds and refreshes world transforms.
func (s *Stage) Update(dt float64) {
	runUpdateHooks(s.root, dt)
	updateWorldTransform(s.root, identityTransform, 1, false)
}

func runUpdateHooks(l *Layer, dt float64) {
	if l.OnUpdate != nil {
		l.OnUpdate(dt)
	}
	for _, child := range l.children {
		runUpdateHooks(child, dt)
	}
}

// Draw draws every visible image layer in tree order, then saves queued
// screenshots of the result.
func (s *Stage) Draw(screen *ebiten.Image) {
	s.frame++
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}

	var stats drawStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.draw(screen, s.root, identityTransform, 1, false, &stats)

	if s.debug {
		stats.drawTime = time.Since(t0)
		s.debugLog(stats)
	}
	s.flushScreenshots(screen)
}

func (s *Stage) draw(target *ebiten.Image, l *Layer, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool, stats *drawStats) {
	if !l.Visible {
		return
	}
	stats.visited++

	recompute := l.transformDirty || parentRecomputed
	if recompute {
		l.worldTransform = multiplyAffine(parentTransform, localTransform(l))
		l.worldAlpha = parentAlpha * l.Alpha
		l.transformDirty = false
	}

	if l.Type == LayerTypeImage && l.image != nil && l.worldAlpha > 0 {
		m := l.worldTransform
		s.op.GeoM.Reset()
		s.op.GeoM.SetElement(0, 0, m[0])
		s.op.GeoM.SetElement(1, 0, m[1])
		s.op.GeoM.SetElement(0, 1, m[2])
		s.op.GeoM.SetElement(1, 1, m[3])
		s.op.GeoM.SetElement(0, 2, m[4])
		s.op.GeoM.SetElement(1, 2, m[5])
		s.op.ColorScale.Reset()
		s.op.ColorScale.ScaleAlpha(float32(l.worldAlpha))
		target.DrawImage(l.image, &s.op)
		stats.drawCalls++
	}

	for _, child := range l.children {
		s.draw(target, child, l.worldTransform, l.worldAlpha, recompute, stats)
	}
}
