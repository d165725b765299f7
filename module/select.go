package module

import (
	"fmt"

	"github.com/coherentfield/noisegraph/core"
)

const (
	defaultSelectLowerBound = -1.0
	defaultSelectUpperBound = 1.0
	defaultSelectEdgeFalloff = 0.0
)

// Select is a ternary combiner: it outputs child0 or child1 depending on
// whether child2 (the control) falls inside [lowerBound, upperBound], with
// an optional smoothed transition zone of edgeFalloff around each bound.
type Select struct {
	slots
	lowerBound, upperBound, edgeFalloff float64
}

// NewSelect creates a Select combiner with bounds [-1, 1] and no falloff.
func NewSelect() *Select {
	return &Select{
		slots:      newSlots(3),
		lowerBound: defaultSelectLowerBound,
		upperBound: defaultSelectUpperBound,
		edgeFalloff: defaultSelectEdgeFalloff,
	}
}

func (s *Select) SetSourceModule(slot int, child Module) { s.bindSlot(slot, child) }

// SetControlModule binds the control child (slot 2).
func (s *Select) SetControlModule(child Module) { s.bindSlot(2, child) }

func (s *Select) LowerBound() float64  { return s.lowerBound }
func (s *Select) UpperBound() float64  { return s.upperBound }
func (s *Select) EdgeFalloff() float64 { return s.edgeFalloff }

// SetBounds sets the selection range. It fails with core.ErrInvalidParam
// if lower is not strictly less than upper. Re-clamps the edge falloff so
// the two transition curves do not overlap.
func (s *Select) SetBounds(lower, upper float64) error {
	if lower >= upper {
		return fmt.Errorf("%w: lower bound %v must be less than upper bound %v", core.ErrInvalidParam, lower, upper)
	}
	s.lowerBound, s.upperBound = lower, upper
	s.SetEdgeFalloff(s.edgeFalloff)
	return nil
}

// SetEdgeFalloff sets the width of the smoothed transition zone around
// each bound, clamped to half the bound range so the two zones never
// overlap.
func (s *Select) SetEdgeFalloff(edgeFalloff float64) {
	boundSize := s.upperBound - s.lowerBound
	if edgeFalloff > boundSize/2 {
		edgeFalloff = boundSize / 2
	}
	s.edgeFalloff = edgeFalloff
}

func (s *Select) Value(x, y, z float64) float64 {
	control := s.at(2).Value(x, y, z)

	if s.edgeFalloff <= 0.0 {
		if control < s.lowerBound || control > s.upperBound {
			return s.at(0).Value(x, y, z)
		}
		return s.at(1).Value(x, y, z)
	}

	switch {
	case control < s.lowerBound-s.edgeFalloff:
		return s.at(0).Value(x, y, z)
	case control < s.lowerBound+s.edgeFalloff:
		lowerCurve := s.lowerBound - s.edgeFalloff
		upperCurve := s.lowerBound + s.edgeFalloff
		alpha := core.SCurve3((control - lowerCurve) / (upperCurve - lowerCurve))
		return core.LinearInterp(s.at(0).Value(x, y, z), s.at(1).Value(x, y, z), alpha)
	case control < s.upperBound-s.edgeFalloff:
		return s.at(1).Value(x, y, z)
	case control < s.upperBound+s.edgeFalloff:
		lowerCurve := s.upperBound - s.edgeFalloff
		upperCurve := s.upperBound + s.edgeFalloff
		alpha := core.SCurve3((control - lowerCurve) / (upperCurve - lowerCurve))
		return core.LinearInterp(s.at(1).Value(x, y, z), s.at(0).Value(x, y, z), alpha)
	default:
		return s.at(0).Value(x, y, z)
	}
}

var _ Module = (*Select)(nil)
