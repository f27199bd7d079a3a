package uimodel

import (
	"fmt"

	"github.com/thomasahle/trainbox/model"
)

// FromModel builds the UI component tree for a track model. Sequences become
// HorizontalComponents whose identity segments are padding pixels wide.
func FromModel(c model.Component, padding float64) (Component, error) {
	b := &builder{padding: padding}
	if err := c.Accept(b); err != nil {
		return nil, fmt.Errorf("build %s: %w", c.Kind(), err)
	}
	return b.result, nil
}

// builder is the model.Visitor behind FromModel.
type builder struct {
	padding float64
	result  Component
}

func (b *builder) VisitIdentity(*model.Identity) error {
	b.result = NewIdentityComponent(b.padding)
	return nil
}

func (b *builder) VisitDup(*model.Dup) error {
	b.result = NewDupComponent()
	return nil
}

func (b *builder) VisitFlip(*model.Flip) error {
	b.result = NewFlipComponent()
	return nil
}

func (b *builder) VisitSequence(s *model.Sequence) error {
	h := NewHorizontalComponent(b.padding)
	for i, child := range s.Children {
		if child == nil {
			return fmt.Errorf("sequence child %d is nil", i)
		}
		if err := child.Accept(b); err != nil {
			return err
		}
		h.Add(b.result)
	}
	b.result = h
	return nil
}

// ToModel converts a UI component tree back into a track model. The padding
// identities a horizontal component places between its children are dropped;
// identities added as components are kept.
func ToModel(c Component) (model.Component, error) {
	switch c := c.(type) {
	case *HorizontalComponent:
		seq := &model.Sequence{}
		for i, child := range c.children {
			if isGap(i) {
				continue
			}
			m, err := ToModel(child)
			if err != nil {
				return nil, err
			}
			seq.Children = append(seq.Children, m)
		}
		return seq, nil
	case *IdentityComponent:
		return &model.Identity{}, nil
	case *DupComponent:
		return &model.Dup{}, nil
	case *FlipComponent:
		return &model.Flip{}, nil
	default:
		return nil, fmt.Errorf("no model for component %T", c)
	}
}

// TrainsFromCargos returns one singleton train per cargo, in the same order:
// trains[0] is first in line.
func TrainsFromCargos(cargos []int) []*Train {
	trains := make([]*Train, 0, len(cargos))
	for _, cargo := range cargos {
		trains = append(trains, NewTrain(cargo))
	}
	return trains
}
