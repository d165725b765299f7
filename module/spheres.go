package module

import "math"

// defaultSpheresFrequency is the spacing-controlling frequency a new
// Spheres generator starts with.
const defaultSpheresFrequency = 1.0

// Spheres is a zero-arity generator that outputs concentric spheres
// centered on the origin, like the layers of an onion. The first sphere
// has radius 1; each subsequent one is one unit larger.
type Spheres struct {
	slots
	frequency float64
}

// NewSpheres creates a Spheres generator with the default frequency.
func NewSpheres() *Spheres {
	return &Spheres{slots: newSlots(0), frequency: defaultSpheresFrequency}
}

// Frequency returns the spacing-controlling frequency.
func (s *Spheres) Frequency() float64 {
	return s.frequency
}

// SetFrequency sets the spacing-controlling frequency. Higher values bring
// the spheres closer together.
func (s *Spheres) SetFrequency(frequency float64) {
	s.frequency = frequency
}

func (s *Spheres) Value(x, y, z float64) float64 {
	x *= s.frequency
	y *= s.frequency
	z *= s.frequency

	distFromCenter := math.Sqrt(x*x + y*y + z*z)
	distFromSmaller := distFromCenter - math.Floor(distFromCenter)
	distFromLarger := 1.0 - distFromSmaller
	nearest := math.Min(distFromSmaller, distFromLarger)
	return 1.0 - nearest*4.0
}

var _ Module = (*Spheres)(nil)
