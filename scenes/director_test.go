package scenes

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thomasahle/trainbox/gfx"
)

type fakeScene struct {
	name string
	log  *[]string
	dt   float64
}

func (f *fakeScene) Update(delta float64) { f.dt = delta; *f.log = append(*f.log, f.name+".update") }
func (f *fakeScene) OnAttach()            { *f.log = append(*f.log, f.name+".attach") }
func (f *fakeScene) OnDetach()            { *f.log = append(*f.log, f.name+".detach") }

func TestDirectorSetSceneDetachesOld(t *testing.T) {
	var log []string
	d := NewDirector(gfx.NewStage(), 320, 240)
	a := &fakeScene{name: "a", log: &log}
	b := &fakeScene{name: "b", log: &log}

	d.SetScene(a)
	d.SetScene(b)

	want := []string{"a.attach", "a.detach", "b.attach"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if d.Scene() != b {
		t.Error("current scene should be b")
	}
}

func TestDirectorUpdate(t *testing.T) {
	var log []string
	d := NewDirector(gfx.NewStage(), 320, 240)
	s := &fakeScene{name: "s", log: &log}
	d.SetScene(s)

	hooked := 0.0
	d.OnUpdate = func(delta float64) { hooked = delta }

	if err := d.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := 1 / float64(ebiten.TPS())
	if s.dt != want {
		t.Errorf("scene delta = %v, want %v", s.dt, want)
	}
	if hooked != want {
		t.Errorf("hook delta = %v, want %v", hooked, want)
	}
}

func TestDirectorUpdateWithoutScene(t *testing.T) {
	d := NewDirector(gfx.NewStage(), 320, 240)
	if err := d.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestDirectorQuit(t *testing.T) {
	d := NewDirector(gfx.NewStage(), 320, 240)
	d.Quit()
	if err := d.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Quit = %v, want ebiten.Termination", err)
	}
}

func TestDirectorLayout(t *testing.T) {
	d := NewDirector(gfx.NewStage(), 320, 240)
	w, h := d.Layout(1920, 1080)
	if w != 320 || h != 240 {
		t.Errorf("Layout = %d,%d, want 320,240", w, h)
	}
}
