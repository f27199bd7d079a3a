// Package model describes a track as plain data, independent of rendering.
package model

import "fmt"

// Kind names a component type. Kinds are used in level files and snapshots.
type Kind string

const (
	KindIdentity Kind = "identity"
	KindDup      Kind = "dup"
	KindFlip     Kind = "flip"
	KindSequence Kind = "sequence"
)

// Component is a node of the track model.
type Component interface {
	Kind() Kind
	Accept(v Visitor) error
}

// Visitor is implemented by consumers that turn a model into something else.
type Visitor interface {
	VisitIdentity(c *Identity) error
	VisitDup(c *Dup) error
	VisitFlip(c *Flip) error
	VisitSequence(c *Sequence) error
}

// Identity passes trains through.
type Identity struct{}

func (*Identity) Kind() Kind               { return KindIdentity }
func (c *Identity) Accept(v Visitor) error { return v.VisitIdentity(c) }

// Dup duplicates every train.
type Dup struct{}

func (*Dup) Kind() Kind               { return KindDup }
func (c *Dup) Accept(v Visitor) error { return v.VisitDup(c) }

// Flip swaps consecutive pairs of trains.
type Flip struct{}

func (*Flip) Kind() Kind               { return KindFlip }
func (c *Flip) Accept(v Visitor) error { return v.VisitFlip(c) }

// Sequence runs trains through its children left to right.
type Sequence struct {
	Children []Component
}

func (*Sequence) Kind() Kind               { return KindSequence }
func (c *Sequence) Accept(v Visitor) error { return v.VisitSequence(c) }

// New returns an empty component of the given kind.
func New(kind Kind) (Component, error) {
	switch kind {
	case KindIdentity:
		return &Identity{}, nil
	case KindDup:
		return &Dup{}, nil
	case KindFlip:
		return &Flip{}, nil
	case KindSequence:
		return &Sequence{}, nil
	default:
		return nil, fmt.Errorf("unknown component kind %q", kind)
	}
}

// Count returns the number of non-sequence components in the tree rooted at c.
func Count(c Component) int {
	if s, ok := c.(*Sequence); ok {
		n := 0
		for _, child := range s.Children {
			n += Count(child)
		}
		return n
	}
	return 1
}
