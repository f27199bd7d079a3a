package gfx

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	if got := multiplyAffine(identityTransform, m); got != m {
		t.Errorf("I*m = %v, want %v", got, m)
	}
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, -6}
	inv := invertAffine(m)
	got := multiplyAffine(m, inv)
	for i := range got {
		if !approxEqual(got[i], identityTransform[i]) {
			t.Fatalf("m*inv = %v, want identity", got)
		}
	}
}

func TestInvertAffineSingular(t *testing.T) {
	if got := invertAffine([6]float64{0, 0, 0, 0, 1, 1}); got != identityTransform {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestWorldTransformNested(t *testing.T) {
	root := NewGroupLayer("root")
	a := NewGroupLayer("a")
	b := NewImageLayer("b", nil)
	root.Add(a)
	a.Add(b)
	a.SetTranslation(100, 50)
	a.SetScale(2, 2)
	b.SetTranslation(10, 5)

	updateWorldTransform(root, identityTransform, 1, false)

	wx, wy := b.LocalToWorld(0, 0)
	if !approxEqual(wx, 120) || !approxEqual(wy, 60) {
		t.Errorf("LocalToWorld = (%v, %v), want (120, 60)", wx, wy)
	}
	lx, ly := b.WorldToLocal(120, 60)
	if !approxEqual(lx, 0) || !approxEqual(ly, 0) {
		t.Errorf("WorldToLocal = (%v, %v), want (0, 0)", lx, ly)
	}
}

func TestWorldAlphaInherited(t *testing.T) {
	root := NewGroupLayer("root")
	child := NewImageLayer("c", nil)
	root.Add(child)
	root.SetAlpha(0.5)
	child.SetAlpha(0.5)

	updateWorldTransform(root, identityTransform, 1, false)
	if !approxEqual(child.worldAlpha, 0.25) {
		t.Errorf("worldAlpha = %v, want 0.25", child.worldAlpha)
	}
}

func TestParentMoveRecomputesChild(t *testing.T) {
	root := NewGroupLayer("root")
	child := NewImageLayer("c", nil)
	root.Add(child)
	updateWorldTransform(root, identityTransform, 1, false)

	root.SetTranslation(7, 0)
	updateWorldTransform(root, identityTransform, 1, false)
	if wx, _ := child.LocalToWorld(0, 0); !approxEqual(wx, 7) {
		t.Errorf("child world x = %v, want 7", wx)
	}
}
