package module

import "math"

const defaultExponentExponent = 1.0

// Exponent is a unary modifier that maps its child's output onto an
// exponential curve: normalize to [0,1], raise to a power, rescale back to
// [-1,1].
type Exponent struct {
	slots
	exponent float64
}

// NewExponent creates an Exponent modifier with exponent 1 (identity).
func NewExponent() *Exponent {
	return &Exponent{slots: newSlots(1), exponent: defaultExponentExponent}
}

// SetSourceModule binds the child module (slot 0).
func (e *Exponent) SetSourceModule(child Module) { e.bindSlot(0, child) }

func (e *Exponent) ExponentValue() float64     { return e.exponent }
func (e *Exponent) SetExponent(exponent float64) { e.exponent = exponent }

func (e *Exponent) Value(x, y, z float64) float64 {
	value := e.at(0).Value(x, y, z)
	normalized := (value + 1.0) / 2.0
	// math.Abs is redundant for normalized in [0, 1] (child output in
	// [-1, 1]) but is kept for children whose output strays outside that
	// range, matching the source's explicit fabs before pow.
	exponentiated := math.Pow(math.Abs(normalized), e.exponent)
	return exponentiated*2.0 - 1.0
}

var _ Module = (*Exponent)(nil)
