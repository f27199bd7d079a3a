package scenes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thomasahle/trainbox"
	"github.com/thomasahle/trainbox/gfx"
	"github.com/thomasahle/trainbox/model"
)

// scriptStep is a single action of a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Kind   string  `json:"kind,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences track edits, pauses, saves and screenshots across frames
// of a LevelScene. One step runs per frame; wait steps skip frames.
//
//	{"steps": [
//		{"action": "pause"},
//		{"action": "insert", "kind": "flip", "x": 5, "y": 0},
//		{"action": "resume"},
//		{"action": "wait", "frames": 120},
//		{"action": "screenshot", "label": "after-flip"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var knownActions = map[string]bool{
	"insert": true, "add": true, "pause": true, "resume": true,
	"wait": true, "screenshot": true, "save": true, "quit": true,
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (r *Script) Done() bool {
	return r.done
}

// step runs at most one step. Failed steps are logged and skipped.
func (r *Script) step(s *LevelScene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "insert":
		err = s.Insert(model.Kind(st.Kind), gfx.Point{X: st.X, Y: st.Y})
	case "add":
		err = s.Add(model.Kind(st.Kind))
	case "pause":
		s.SetPaused(true)
	case "resume":
		s.SetPaused(false)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		s.stage.Screenshot(s.key + "-" + st.Label)
	case "save":
		_, err = s.Save(context.Background())
	case "quit":
		if s.OnQuit != nil {
			s.OnQuit()
		}
	}
	if err != nil {
		trainbox.Logger().Warn("script step failed", "step", r.cursor-1, "action", st.Action, "err", err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
