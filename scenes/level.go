package scenes

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/thomasahle/trainbox"
	"github.com/thomasahle/trainbox/gfx"
	"github.com/thomasahle/trainbox/level"
	"github.com/thomasahle/trainbox/model"
	"github.com/thomasahle/trainbox/store"
	"github.com/thomasahle/trainbox/uimodel"
)

const (
	trackY      = 40.0
	fadeSeconds = 0.4
)

// ErrNoGap is returned by Insert when the point is not over a gap between
// components.
var ErrNoGap = errors.New("no gap at point")

// Saver persists snapshots. *store.Store implements it.
type Saver interface {
	SaveSnapshot(ctx context.Context, snap store.Snapshot) (store.Snapshot, error)
}

// LevelScene plays one level: a station feeding the level's trains into the
// track, and a terminal collecting them.
type LevelScene struct {
	stage *gfx.Stage
	lvl   *level.Level
	key   string

	root     *uimodel.HorizontalComponent
	station  *uimodel.Station
	terminal *uimodel.Terminal
	layer    *gfx.Layer

	listener uimodel.TrainsChangedListener
	saver    Saver
	script   *Script
	tweens   []*gfx.TweenGroup
	paused   bool
	live     int
	created  int

	// OnQuit is called by the script's quit step.
	OnQuit func()
}

var (
	_ Scene                         = (*LevelScene)(nil)
	_ uimodel.TrainsChangedListener = (*LevelScene)(nil)
)

// NewLevelScene builds the track of lvl. key identifies the level in saved
// snapshots.
func NewLevelScene(stage *gfx.Stage, key string, lvl *level.Level) (*LevelScene, error) {
	comp, err := uimodel.FromModel(lvl.Track, lvl.Padding)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.Name, err)
	}
	root, ok := comp.(*uimodel.HorizontalComponent)
	if !ok {
		return nil, fmt.Errorf("level %q: track root is %T, want a sequence", lvl.Name, comp)
	}

	s := &LevelScene{
		stage:    stage,
		lvl:      lvl,
		key:      key,
		root:     root,
		station:  uimodel.NewStation(uimodel.TrainsFromCargos(lvl.Cargos)),
		terminal: uimodel.NewTerminal(),
		layer:    gfx.NewGroupLayer("level"),
		live:     len(lvl.Cargos),
	}
	s.station.SetTrainTaker(root)
	root.SetTrainTaker(s.terminal)
	root.SetTrainsChangedListener(s)
	s.terminal.SetTrainsChangedListener(s)

	s.layer.Add(root.BackLayer())
	s.layer.Add(s.station.Layer())
	s.layer.Add(root.FrontLayer())
	s.layer.SetTranslation(float64(len(lvl.Cargos))*(uimodel.TrainWidth+uimodel.TrainGap)+lvl.Padding, trackY)
	return s, nil
}

// SetListener sets a listener that receives every train event after the
// scene has counted it.
func (s *LevelScene) SetListener(l uimodel.TrainsChangedListener) { s.listener = l }

// SetSaver enables Save.
func (s *LevelScene) SetSaver(saver Saver) { s.saver = saver }

// SetScript attaches a script, stepped once per Update.
func (s *LevelScene) SetScript(script *Script) { s.script = script }

// Level returns the level being played.
func (s *LevelScene) Level() *level.Level { return s.lvl }

// Root returns the top-level component of the track.
func (s *LevelScene) Root() *uimodel.HorizontalComponent { return s.root }

// OnAttach adds the scene's layer to the stage and fades it in.
func (s *LevelScene) OnAttach() {
	s.stage.Root().Add(s.layer)
	s.layer.SetAlpha(0)
	s.tweens = append(s.tweens, gfx.TweenAlpha(s.layer, 1, fadeSeconds, ease.OutQuad))
	trainbox.Logger().Info("level attached", "level", s.lvl.Name, "trains", len(s.lvl.Cargos))
}

// OnDetach removes the scene's layer from the stage.
func (s *LevelScene) OnDetach() {
	s.layer.RemoveFromParent()
	s.tweens = s.tweens[:0]
}

// Update steps the script, tweens, track and station.
func (s *LevelScene) Update(delta float64) {
	if s.script != nil {
		s.script.step(s)
	}
	s.updateTweens(delta)
	s.root.Update(delta)
	s.station.Update(delta)
}

func (s *LevelScene) updateTweens(delta float64) {
	n := 0
	for _, tw := range s.tweens {
		tw.Update(float32(delta))
		if !tw.Done {
			s.tweens[n] = tw
			n++
		}
	}
	clear(s.tweens[n:])
	s.tweens = s.tweens[:n]
}

// SetPaused stops or resumes every train.
func (s *LevelScene) SetPaused(paused bool) {
	s.paused = paused
	s.root.SetPaused(paused)
	s.station.SetPaused(paused)
}

// Paused reports whether the scene is paused.
func (s *LevelScene) Paused() bool { return s.paused }

// Insert builds a component of kind and inserts it into the gap under p,
// given in track coordinates.
func (s *LevelScene) Insert(kind model.Kind, p gfx.Point) error {
	comp, err := s.build(kind)
	if err != nil {
		return err
	}
	if !s.root.InsertChildAt(comp, p) {
		return fmt.Errorf("insert %s at (%v, %v): %w", kind, p.X, p.Y, ErrNoGap)
	}
	return nil
}

// Add appends a component of kind to the end of the track.
func (s *LevelScene) Add(kind model.Kind) error {
	comp, err := s.build(kind)
	if err != nil {
		return err
	}
	s.root.Add(comp)
	return nil
}

func (s *LevelScene) build(kind model.Kind) (uimodel.Component, error) {
	m, err := model.New(kind)
	if err != nil {
		return nil, err
	}
	return uimodel.FromModel(m, s.lvl.Padding)
}

// Track returns the current track as a model.
func (s *LevelScene) Track() (model.Component, error) {
	return uimodel.ToModel(s.root)
}

// Arrived returns the cargo of every train that reached the terminal.
func (s *LevelScene) Arrived() []int { return s.terminal.Arrived() }

// Live returns the number of trains in the station or on the track.
func (s *LevelScene) Live() int { return s.live }

// Created returns the number of trains created by components.
func (s *LevelScene) Created() int { return s.created }

// Save stores the current track and arrivals through the saver.
func (s *LevelScene) Save(ctx context.Context) (store.Snapshot, error) {
	if s.saver == nil {
		return store.Snapshot{}, fmt.Errorf("saving is not configured")
	}
	track, err := s.Track()
	if err != nil {
		return store.Snapshot{}, err
	}
	data, err := level.Encode(track)
	if err != nil {
		return store.Snapshot{}, err
	}
	snap, err := s.saver.SaveSnapshot(ctx, store.Snapshot{
		Level:   s.key,
		Track:   data,
		Arrived: s.Arrived(),
	})
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	trainbox.Logger().Info("snapshot saved", "level", s.key, "id", snap.ID)
	return snap, nil
}

func (s *LevelScene) OnTrainCreated(t *uimodel.Train) {
	s.live++
	s.created++
	if s.listener != nil {
		s.listener.OnTrainCreated(t)
	}
}

func (s *LevelScene) OnTrainDestroyed(t *uimodel.Train) {
	s.live--
	if s.listener != nil {
		s.listener.OnTrainDestroyed(t)
	}
}
