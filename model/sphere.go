package model

import "github.com/coherentfield/noisegraph/module"

// Sphere models the surface of a unit sphere centered on the origin. It
// adapts a Module's Cartesian Value to geographic (latitude, longitude)
// sampling, which is useful for seamless planetary textures and height
// maps.
type Sphere struct {
	source module.Module
}

// NewSphere creates a Sphere wrapping source. source must not be nil.
func NewSphere(source module.Module) *Sphere {
	return &Sphere{source: source}
}

// SetModule replaces the wrapped module.
func (s *Sphere) SetModule(source module.Module) { s.source = source }

// Module returns the wrapped module.
func (s *Sphere) Module() module.Module { return s.source }

// Value returns the wrapped module's output at the given latitude and
// longitude, in degrees. Use a negative latitude for the southern
// hemisphere and a negative longitude for the western hemisphere.
func (s *Sphere) Value(lat, lon float64) float64 {
	x, y, z := LatLonToXYZ(lat, lon)
	return s.source.Value(x, y, z)
}
