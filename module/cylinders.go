package module

import "math"

// defaultCylindersFrequency is the spacing-controlling frequency a new
// Cylinders generator starts with.
const defaultCylindersFrequency = 1.0

// Cylinders is a zero-arity generator that outputs concentric cylinders
// centered on the origin and running along the y-axis. The first cylinder
// has radius 1; each subsequent one is one unit larger.
type Cylinders struct {
	slots
	frequency float64
}

// NewCylinders creates a Cylinders generator with the default frequency.
func NewCylinders() *Cylinders {
	return &Cylinders{slots: newSlots(0), frequency: defaultCylindersFrequency}
}

// Frequency returns the spacing-controlling frequency.
func (c *Cylinders) Frequency() float64 {
	return c.frequency
}

// SetFrequency sets the spacing-controlling frequency. Higher values bring
// the cylinders closer together.
func (c *Cylinders) SetFrequency(frequency float64) {
	c.frequency = frequency
}

func (c *Cylinders) Value(x, y, z float64) float64 {
	x *= c.frequency
	z *= c.frequency

	distFromCenter := math.Sqrt(x*x + z*z)
	distFromSmaller := distFromCenter - math.Floor(distFromCenter)
	distFromLarger := 1.0 - distFromSmaller
	nearest := math.Min(distFromSmaller, distFromLarger)
	return 1.0 - nearest*4.0
}

var _ Module = (*Cylinders)(nil)
