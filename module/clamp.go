package module

import (
	"fmt"

	"github.com/coherentfield/noisegraph/core"
)

const (
	defaultClampLowerBound = -1.0
	defaultClampUpperBound = 1.0
)

// Clamp is a unary modifier that clamps its child's output to [lower, upper].
type Clamp struct {
	slots
	lower, upper float64
}

// NewClamp creates a Clamp modifier with the default bounds [-1, 1].
func NewClamp() *Clamp {
	return &Clamp{slots: newSlots(1), lower: defaultClampLowerBound, upper: defaultClampUpperBound}
}

// SetSourceModule binds the child module (slot 0).
func (c *Clamp) SetSourceModule(child Module) { c.bindSlot(0, child) }

func (c *Clamp) LowerBound() float64 { return c.lower }
func (c *Clamp) UpperBound() float64 { return c.upper }

// SetBounds sets the clamping range. It fails with core.ErrInvalidParam if
// lower > upper.
func (c *Clamp) SetBounds(lower, upper float64) error {
	if lower > upper {
		return fmt.Errorf("%w: lower bound %v exceeds upper bound %v", core.ErrInvalidParam, lower, upper)
	}
	c.lower, c.upper = lower, upper
	return nil
}

func (c *Clamp) Value(x, y, z float64) float64 {
	return core.Clamp(c.at(0).Value(x, y, z), c.lower, c.upper)
}

var _ Module = (*Clamp)(nil)
