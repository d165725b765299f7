package module

// Const is a zero-arity generator that returns the same value everywhere.
type Const struct {
	slots
	value float64
}

// NewConst creates a Const module defaulting to a value of 0.
func NewConst() *Const {
	return &Const{slots: newSlots(0)}
}

// SetValue sets the constant value returned by Value.
func (c *Const) SetValue(value float64) {
	c.value = value
}

// ConstValue returns the value set by SetValue.
func (c *Const) ConstValue() float64 {
	return c.value
}

func (c *Const) Value(x, y, z float64) float64 {
	return c.value
}

var _ Module = (*Const)(nil)
