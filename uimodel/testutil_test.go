package uimodel

import "github.com/thomasahle/trainbox/gfx"

// recorder counts train events.
type recorder struct {
	created   []*Train
	destroyed []*Train
}

func (r *recorder) OnTrainCreated(t *Train)   { r.created = append(r.created, t) }
func (r *recorder) OnTrainDestroyed(t *Train) { r.destroyed = append(r.destroyed, t) }

// fakeComponent records Update calls into a shared log.
type fakeComponent struct {
	component
	name  string
	width float64
	log   *[]string
}

func newFake(name string, width float64, log *[]string) *fakeComponent {
	return &fakeComponent{component: newComponent(name), name: name, width: width, log: log}
}

func (f *fakeComponent) TakeTrain(*Train)    {}
func (f *fakeComponent) LeftBlock() float64  { return 0 }
func (f *fakeComponent) Carriages() []*Train { return nil }
func (f *fakeComponent) Size() gfx.Dimension { return gfx.Dimension{Width: f.width, Height: 10} }
func (f *fakeComponent) Update(float64)      { *f.log = append(*f.log, f.name) }

// runLine wires station -> root -> terminal and steps until the line is idle
// or maxSteps is reached.
func runLine(root Component, cargos []int, maxSteps int) (*Terminal, *Station) {
	station := NewStation(TrainsFromCargos(cargos))
	terminal := NewTerminal()
	station.SetTrainTaker(root)
	root.SetTrainTaker(terminal)
	for i := 0; i < maxSteps; i++ {
		root.Update(0.05)
		station.Update(0.05)
	}
	return terminal, station
}

func cargosOf(trains []*Train) []int {
	out := make([]int, len(trains))
	for i, t := range trains {
		out[i] = t.Cargo()
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
