package module

// Invert is a unary modifier that negates its child's output.
type Invert struct {
	slots
}

// NewInvert creates an Invert modifier.
func NewInvert() *Invert {
	return &Invert{slots: newSlots(1)}
}

// SetSourceModule binds the child module (slot 0).
func (n *Invert) SetSourceModule(child Module) { n.bindSlot(0, child) }

func (n *Invert) Value(x, y, z float64) float64 {
	return -n.at(0).Value(x, y, z)
}

var _ Module = (*Invert)(nil)
