package uimodel

import (
	"math"
	"testing"

	"github.com/thomasahle/trainbox/gfx"
)

const padding = 20.0

func TestNewHorizontalHasIdentity(t *testing.T) {
	h := NewHorizontalComponent(padding)
	children := h.Children()
	if len(children) != 1 {
		t.Fatalf("len(children) = %d, want 1", len(children))
	}
	if _, ok := children[0].(*IdentityComponent); !ok {
		t.Errorf("child 0 = %T, want *IdentityComponent", children[0])
	}
	if got := h.Size(); got != (gfx.Dimension{Width: padding, Height: ComponentHeight}) {
		t.Errorf("Size = %+v", got)
	}
	if !math.IsInf(h.LeftBlock(), 1) {
		t.Errorf("LeftBlock = %v, want +Inf", h.LeftBlock())
	}
}

func TestChildrenIsACopy(t *testing.T) {
	h := NewHorizontalComponent(padding)
	children := h.Children()
	children[0] = nil
	if h.Children()[0] == nil {
		t.Error("mutating Children() result should not affect the composite")
	}
}

func TestAddInterleavesIdentities(t *testing.T) {
	h := NewHorizontalComponent(padding)
	dup := NewDupComponent()
	h.Add(dup)

	children := h.Children()
	if len(children) != 3 {
		t.Fatalf("len(children) = %d, want 3", len(children))
	}
	if children[1] != dup {
		t.Error("dup should be the middle child")
	}
	if _, ok := children[2].(*IdentityComponent); !ok {
		t.Errorf("child 2 = %T, want identity", children[2])
	}

	wantX := []float64{0, padding, padding + dup.Size().Width}
	for i, c := range children {
		if c.Position().X != wantX[i] || c.Position().Y != 0 {
			t.Errorf("child %d position = %+v, want x=%v", i, c.Position(), wantX[i])
		}
		if c.Parent() != Composite(h) {
			t.Errorf("child %d parent not set", i)
		}
	}
	if got := h.Size().Width; got != 2*padding+dup.Size().Width {
		t.Errorf("width = %v", got)
	}
}

func TestTrainTakerChain(t *testing.T) {
	h := NewHorizontalComponent(padding)
	h.Add(NewDupComponent())
	term := NewTerminal()
	h.SetTrainTaker(term)

	children := h.Children()
	for i := 0; i < len(children)-1; i++ {
		if children[i].Taker() != TrainTaker(children[i+1]) {
			t.Errorf("child %d should hand trains to child %d", i, i+1)
		}
	}
	if children[len(children)-1].Taker() != TrainTaker(term) {
		t.Error("last child should hand trains to the composite's taker")
	}

	h.Add(NewFlipComponent())
	children = h.Children()
	if children[len(children)-1].Taker() != TrainTaker(term) {
		t.Error("appended tail should inherit the composite's taker")
	}
	if children[2].Taker() != children[3] {
		t.Error("old tail should now hand trains to the new component")
	}
}

func TestInsertChildAtIdentity(t *testing.T) {
	h := NewHorizontalComponent(padding)
	dup := NewDupComponent()
	h.Add(dup)
	first := h.Children()[0]

	flip := NewFlipComponent()
	if !h.InsertChildAt(flip, gfx.Point{X: 5, Y: 0}) {
		t.Fatal("insert over the first identity should succeed")
	}

	children := h.Children()
	if len(children) != 5 {
		t.Fatalf("len(children) = %d, want 5", len(children))
	}
	if _, ok := children[0].(*IdentityComponent); !ok || children[0] == first {
		t.Error("child 0 should be a new identity")
	}
	if children[1] != flip || children[2] != first || children[3] != dup {
		t.Error("expected [new identity, flip, old identity, dup, identity]")
	}
	wantX := []float64{0, 20, 108, 128, 216}
	for i, c := range children {
		if c.Position().X != wantX[i] {
			t.Errorf("child %d x = %v, want %v", i, c.Position().X, wantX[i])
		}
	}
	if children[0].Taker() != flip || flip.Taker() != first {
		t.Error("taker chain not spliced around the inserted component")
	}
}

func TestInsertChildAtRejectsNonIdentity(t *testing.T) {
	h := NewHorizontalComponent(padding)
	h.Add(NewDupComponent())

	if h.InsertChildAt(NewFlipComponent(), gfx.Point{X: padding + 1}) {
		t.Error("insert over a dup should fail")
	}
	if h.InsertChildAt(NewFlipComponent(), gfx.Point{X: 10000}) {
		t.Error("insert past the end should fail")
	}
	if h.InsertChildAt(NewFlipComponent(), gfx.Point{X: -1}) {
		t.Error("insert before the start should fail")
	}
	if len(h.Children()) != 3 {
		t.Error("failed inserts should not change the children")
	}
}

func TestInsertChildAtRejectsAddedIdentity(t *testing.T) {
	h := NewHorizontalComponent(padding)
	h.Add(NewIdentityComponent(padding))

	// x inside the second child, the identity added as a component.
	if h.InsertChildAt(NewFlipComponent(), gfx.Point{X: padding + 1}) {
		t.Error("insert over an added identity should fail")
	}
	if !h.InsertChildAt(NewFlipComponent(), gfx.Point{X: 2*padding + 1}) {
		t.Error("insert over the trailing padding should succeed")
	}
	for i, c := range h.Children() {
		if _, ok := c.(*IdentityComponent); isGap(i) && !ok {
			t.Errorf("child %d = %T, want padding identity", i, c)
		}
	}
}

func TestInsertChildAtOutsideHeight(t *testing.T) {
	h := NewHorizontalComponent(padding)
	if h.InsertChildAt(NewFlipComponent(), gfx.Point{X: 5, Y: ComponentHeight}) {
		t.Error("insert below the track should fail")
	}
}

func TestInsertChildAtRecursesIntoComposite(t *testing.T) {
	outer := NewHorizontalComponent(padding)
	inner := NewHorizontalComponent(padding)
	inner.Add(NewDupComponent())
	outer.Add(inner)

	flip := NewFlipComponent()
	if !outer.InsertChildAt(flip, gfx.Point{X: padding + 5}) {
		t.Fatal("insert into nested composite should succeed")
	}
	if len(inner.Children()) != 5 {
		t.Errorf("inner children = %d, want 5", len(inner.Children()))
	}
	if inner.Children()[1] != flip {
		t.Error("flip should land in the inner composite")
	}
	if len(outer.Children()) != 3 {
		t.Errorf("outer children = %d, want 3", len(outer.Children()))
	}
}

func TestInsertAddsLayers(t *testing.T) {
	h := NewHorizontalComponent(padding)
	dup := NewDupComponent()
	h.Add(dup)
	if dup.BackLayer().Parent != h.BackLayer() {
		t.Error("back layer should be under the composite's back layer")
	}
	if dup.FrontLayer().Parent != h.FrontLayer() {
		t.Error("front layer should be under the composite's front layer")
	}
	if x := dup.FrontLayer().Translation().X; x != padding {
		t.Errorf("front layer x = %v, want %v", x, padding)
	}
}

func TestInsertOutOfRangePanics(t *testing.T) {
	h := NewHorizontalComponent(padding)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	h.insert(NewDupComponent(), 5)
}

func TestPausedPropagates(t *testing.T) {
	h := NewHorizontalComponent(padding)
	h.Add(NewDupComponent())
	h.SetPaused(true)
	for i, c := range h.Children() {
		if !c.Paused() {
			t.Errorf("child %d should be paused", i)
		}
	}
	h.Add(NewFlipComponent())
	for i, c := range h.Children() {
		if !c.Paused() {
			t.Errorf("child %d should inherit pause on install", i)
		}
	}
	h.SetPaused(false)
	for i, c := range h.Children() {
		if c.Paused() {
			t.Errorf("child %d should be resumed", i)
		}
	}
}

func TestUpdateRunsChildrenInReverse(t *testing.T) {
	var log []string
	h := NewHorizontalComponent(padding)
	h.Add(newFake("a", 10, &log))
	h.Add(newFake("b", 10, &log))

	h.Update(0.1)
	want := []string{"b", "a"}
	if len(log) != 2 || log[0] != want[0] || log[1] != want[1] {
		t.Errorf("update order = %v, want %v", log, want)
	}
}

func TestTakeTrainGoesToFirstChild(t *testing.T) {
	h := NewHorizontalComponent(padding)
	h.Add(NewDupComponent())
	train := NewTrain(3)
	h.TakeTrain(train)

	first := h.Children()[0]
	if c := first.Carriages(); len(c) != 1 || c[0] != train {
		t.Error("train should be on the first child")
	}
	if h.LeftBlock() != first.LeftBlock() {
		t.Error("LeftBlock should come from the first child")
	}
	if c := h.Carriages(); len(c) != 1 || c[0] != train {
		t.Errorf("Carriages = %v", c)
	}
}
