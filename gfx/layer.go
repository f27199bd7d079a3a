package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// layerIDCounter is a plain counter; layers live on the game goroutine.
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// Layer is the element of the layer tree. A single struct serves both group
// and image layers.
type Layer struct {
	ID   uint32
	Name string
	Type LayerType

	Parent   *Layer
	children []*Layer

	X, Y   float64
	ScaleX float64
	ScaleY float64
	Alpha  float64

	Visible bool

	// OnUpdate, when set, is called once per Stage.Update with the frame
	// delta in seconds.
	OnUpdate func(dt float64)

	image *ebiten.Image

	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	disposed bool
}

func layerDefaults(l *Layer) {
	l.ID = nextLayerID()
	l.ScaleX = 1
	l.ScaleY = 1
	l.Alpha = 1
	l.Visible = true
	l.transformDirty = true
}

// NewGroupLayer creates a layer that only holds children.
func NewGroupLayer(name string) *Layer {
	l := &Layer{Name: name, Type: LayerTypeGroup}
	layerDefaults(l)
	return l
}

// NewImageLayer creates a layer that draws img. img may be nil and set later
// with SetImage.
func NewImageLayer(name string, img *ebiten.Image) *Layer {
	l := &Layer{Name: name, Type: LayerTypeImage, image: img}
	layerDefaults(l)
	return l
}

// SetImage replaces the image drawn by an image layer.
func (l *Layer) SetImage(img *ebiten.Image) {
	l.image = img
}

// Image returns the layer's image, or nil.
func (l *Layer) Image() *ebiten.Image {
	return l.image
}

// Add appends child to this layer's children. A child that already has a
// parent is removed from it first. Panics if child is nil or an ancestor of l.
func (l *Layer) Add(child *Layer) {
	l.AddAt(child, -1)
}

// AddAt inserts child at index; a negative index appends.
func (l *Layer) AddAt(child *Layer, index int) {
	if child == nil {
		panic("trainbox: cannot add nil layer")
	}
	if globalDebug {
		debugCheckDisposed(l, "AddAt (parent)")
		debugCheckDisposed(child, "AddAt (child)")
	}
	if isAncestor(child, l) {
		panic("trainbox: adding layer would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 {
		index = len(l.children)
	}
	if index > len(l.children) {
		panic("trainbox: layer index out of range")
	}
	child.Parent = l
	l.children = append(l.children, nil)
	copy(l.children[index+1:], l.children[index:])
	l.children[index] = child
	markSubtreeDirty(child)
}

// Remove detaches child from this layer. Panics if child.Parent != l.
func (l *Layer) Remove(child *Layer) {
	if child.Parent != l {
		panic("trainbox: layer's parent is not this layer")
	}
	l.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches l from its parent. No-op without a parent.
func (l *Layer) RemoveFromParent() {
	if l.Parent == nil {
		return
	}
	l.Parent.Remove(l)
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (l *Layer) Children() []*Layer {
	return l.children
}

// NumChildren returns the number of children.
func (l *Layer) NumChildren() int {
	return len(l.children)
}

// Dispose detaches l and releases it and all descendants. A disposed layer
// must not be reused.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.RemoveFromParent()
	l.dispose()
}

func (l *Layer) dispose() {
	l.disposed = true
	l.ID = 0
	for _, child := range l.children {
		child.Parent = nil
		child.dispose()
	}
	l.children = nil
	l.image = nil
	l.OnUpdate = nil
}

// IsDisposed reports whether Dispose has been called.
func (l *Layer) IsDisposed() bool {
	return l.disposed
}

func isAncestor(candidate, layer *Layer) bool {
	for p := layer; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child without clearing child.Parent.
func (l *Layer) removeChildByPtr(child *Layer) {
	for i, c := range l.children {
		if c == child {
			copy(l.children[i:], l.children[i+1:])
			l.children[len(l.children)-1] = nil
			l.children = l.children[:len(l.children)-1]
			return
		}
	}
}

func markSubtreeDirty(l *Layer) {
	l.transformDirty = true
	for _, child := range l.children {
		markSubtreeDirty(child)
	}
}
