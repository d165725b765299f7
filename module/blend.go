package module

import "github.com/coherentfield/noisegraph/core"

// Blend is a ternary combiner: linearly blends child0 and child1 using
// child2 as control, mapped from [-1, 1] into a [0, 1] blend factor.
type Blend struct{ slots }

// NewBlend creates a Blend combiner.
func NewBlend() *Blend { return &Blend{slots: newSlots(3)} }

func (b *Blend) SetSourceModule(slot int, child Module) { b.bindSlot(slot, child) }

// SetControlModule binds the control child (slot 2).
func (b *Blend) SetControlModule(child Module) { b.bindSlot(2, child) }

func (b *Blend) Value(x, y, z float64) float64 {
	v0 := b.at(0).Value(x, y, z)
	v1 := b.at(1).Value(x, y, z)
	alpha := (b.at(2).Value(x, y, z) + 1.0) / 2.0
	return core.LinearInterp(v0, v1, alpha)
}

var _ Module = (*Blend)(nil)
