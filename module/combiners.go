package module

import "math"

// Add is a binary combiner: child0 + child1.
type Add struct{ slots }

// NewAdd creates an Add combiner.
func NewAdd() *Add { return &Add{slots: newSlots(2)} }

func (a *Add) SetSourceModule(slot int, child Module) { a.bindSlot(slot, child) }

func (a *Add) Value(x, y, z float64) float64 {
	return a.at(0).Value(x, y, z) + a.at(1).Value(x, y, z)
}

var _ Module = (*Add)(nil)

// Multiply is a binary combiner: child0 * child1.
type Multiply struct{ slots }

// NewMultiply creates a Multiply combiner.
func NewMultiply() *Multiply { return &Multiply{slots: newSlots(2)} }

func (m *Multiply) SetSourceModule(slot int, child Module) { m.bindSlot(slot, child) }

func (m *Multiply) Value(x, y, z float64) float64 {
	return m.at(0).Value(x, y, z) * m.at(1).Value(x, y, z)
}

var _ Module = (*Multiply)(nil)

// Max is a binary combiner: the larger of its two children's outputs.
type Max struct{ slots }

// NewMax creates a Max combiner.
func NewMax() *Max { return &Max{slots: newSlots(2)} }

func (mx *Max) SetSourceModule(slot int, child Module) { mx.bindSlot(slot, child) }

func (mx *Max) Value(x, y, z float64) float64 {
	return math.Max(mx.at(0).Value(x, y, z), mx.at(1).Value(x, y, z))
}

var _ Module = (*Max)(nil)

// Min is a binary combiner: the smaller of its two children's outputs.
type Min struct{ slots }

// NewMin creates a Min combiner.
func NewMin() *Min { return &Min{slots: newSlots(2)} }

func (mn *Min) SetSourceModule(slot int, child Module) { mn.bindSlot(slot, child) }

func (mn *Min) Value(x, y, z float64) float64 {
	return math.Min(mn.at(0).Value(x, y, z), mn.at(1).Value(x, y, z))
}

var _ Module = (*Min)(nil)

// Power is a binary combiner: child1 raised to the power of child0. The
// argument order is reversed from what the name suggests: slot 0 is the
// exponent, slot 1 is the base.
type Power struct{ slots }

// NewPower creates a Power combiner.
func NewPower() *Power { return &Power{slots: newSlots(2)} }

func (p *Power) SetSourceModule(slot int, child Module) { p.bindSlot(slot, child) }

func (p *Power) Value(x, y, z float64) float64 {
	exponent := p.at(0).Value(x, y, z)
	base := p.at(1).Value(x, y, z)
	return math.Pow(base, exponent)
}

var _ Module = (*Power)(nil)
