package module

import (
	"fmt"

	"github.com/coherentfield/noisegraph/core"
)

// Module is the contract shared by every noise-graph operator: a fixed
// number of child slots and a pure function from a 3D point to a value.
//
// Value is contract-enforced, not error-returning: calling it on a module
// with an unbound required child slot (or, for Curve, fewer than four
// control points) is a programming error. It panics rather than returning
// a zero value, so a misconfigured graph fails loudly at the first
// evaluation instead of silently producing garbage.
type Module interface {
	// Arity reports the fixed number of child slots this module's kind
	// has. It never changes for a given kind.
	Arity() int

	// Value evaluates the module at the given point.
	Value(x, y, z float64) float64

	// Bind sets child slot i to reference child, replacing whatever was
	// there. It fails with core.ErrInvalidParam if slot is out of range.
	// Binding does not transfer ownership: the caller must keep child
	// alive for as long as this module may be evaluated, and must not
	// mutate child concurrently with evaluation.
	Bind(slot int, child Module) error

	// Child returns the module bound to slot. It fails with
	// core.ErrMissingSource if the slot is unbound, or
	// core.ErrInvalidParam if slot is out of range.
	Child(slot int) (Module, error)
}

// slots is the shared child-slot storage embedded by every module kind. It
// implements Arity, Bind, and Child once so that each generator/modifier/
// combiner/transformer only has to implement Value and its own parameters.
type slots struct {
	children []Module
}

func newSlots(arity int) slots {
	return slots{children: make([]Module, arity)}
}

func (s *slots) Arity() int {
	return len(s.children)
}

func (s *slots) Bind(slot int, child Module) error {
	if slot < 0 || slot >= len(s.children) {
		return fmt.Errorf("%w: slot %d out of range [0, %d)", core.ErrInvalidParam, slot, len(s.children))
	}
	s.children[slot] = child
	return nil
}

func (s *slots) Child(slot int) (Module, error) {
	if slot < 0 || slot >= len(s.children) {
		return nil, fmt.Errorf("%w: slot %d out of range [0, %d)", core.ErrInvalidParam, slot, len(s.children))
	}
	c := s.children[slot]
	if c == nil {
		return nil, fmt.Errorf("%w: slot %d", core.ErrMissingSource, slot)
	}
	return c, nil
}

// at returns the module bound to slot without validation, for use on the
// hot Value path. A nil return (unbound slot) is the programming-error
// contract described on Module.Value; calling Value on it panics with a
// nil-pointer dereference, which is the intended fail-fast behavior.
func (s *slots) at(slot int) Module {
	return s.children[slot]
}

// bindSlot is a helper for named convenience setters (SetSourceModule,
// SetControlModule, ...) that target a fixed, compile-time-known slot
// index. The index is always in range for the calling type's arity, so
// the error from Bind can never fire; bindSlot discards it rather than
// making every convenience setter propagate an error that can't occur.
func (s *slots) bindSlot(slot int, child Module) {
	_ = s.Bind(slot, child)
}
