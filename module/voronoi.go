package module

import (
	"math"

	"github.com/coherentfield/noisegraph/primitives"
)

const (
	defaultVoronoiDisplacement = 1.0
	defaultVoronoiFrequency    = 1.0
	defaultVoronoiSeed         = 0
)

// sqrt3 is the distance normalizer applied to Voronoi's distance-mode
// output, matching the reference implementation's constant.
const sqrt3 = 1.7320508075688772935

// Voronoi is a zero-arity generator that scatters one pseudo-random seed
// point per unit cell and outputs, by default, a pseudo-random scalar
// assigned to the cell containing the nearest seed point to the input (a
// "cracked mud" pattern); optionally it also adds the scaled Euclidean
// distance to that seed point (distance*sqrt3 - 1) to that scalar.
type Voronoi struct {
	slots
	displacement   float64
	enableDistance bool
	frequency      float64
	seed           int32
}

// NewVoronoi creates a Voronoi generator with displacement 1, frequency 1,
// distance mode disabled, and seed 0.
func NewVoronoi() *Voronoi {
	return &Voronoi{
		slots:        newSlots(0),
		displacement: defaultVoronoiDisplacement,
		frequency:    defaultVoronoiFrequency,
		seed:         defaultVoronoiSeed,
	}
}

func (v *Voronoi) Displacement() float64   { return v.displacement }
func (v *Voronoi) EnableDistance() bool    { return v.enableDistance }
func (v *Voronoi) Frequency() float64      { return v.frequency }
func (v *Voronoi) Seed() int32             { return v.seed }

func (v *Voronoi) SetDisplacement(displacement float64) { v.displacement = displacement }
func (v *Voronoi) SetEnableDistance(enable bool)        { v.enableDistance = enable }
func (v *Voronoi) SetFrequency(frequency float64)       { v.frequency = frequency }
func (v *Voronoi) SetSeed(seed int32)                   { v.seed = seed }

// voronoiFloor replicates the source's x>0?int(x):int(x)-1 cell-origin
// convention, which is mathematical floor for every value except zero and
// exact negative integers, where it returns one less than the true floor.
// This is preserved deliberately, not fixed.
func voronoiFloor(v float64) int32 {
	if v > 0.0 {
		return int32(v)
	}
	return int32(v) - 1
}

func (v *Voronoi) Value(x, y, z float64) float64 {
	x *= v.frequency
	y *= v.frequency
	z *= v.frequency

	xInt := voronoiFloor(x)
	yInt := voronoiFloor(y)
	zInt := voronoiFloor(z)

	minDist := math.MaxFloat64
	var xCandidate, yCandidate, zCandidate float64

	for zCur := zInt - 2; zCur <= zInt+2; zCur++ {
		for yCur := yInt - 2; yCur <= yInt+2; yCur++ {
			for xCur := xInt - 2; xCur <= xInt+2; xCur++ {
				xPos := float64(xCur) + primitives.ValueNoise3D(xCur, yCur, zCur, v.seed)
				yPos := float64(yCur) + primitives.ValueNoise3D(xCur, yCur, zCur, v.seed+1)
				zPos := float64(zCur) + primitives.ValueNoise3D(xCur, yCur, zCur, v.seed+2)

				xDist := xPos - x
				yDist := yPos - y
				zDist := zPos - z
				dist := xDist*xDist + yDist*yDist + zDist*zDist

				if dist < minDist {
					minDist = dist
					xCandidate, yCandidate, zCandidate = xPos, yPos, zPos
				}
			}
		}
	}

	value := 0.0
	if v.enableDistance {
		xDist := xCandidate - x
		yDist := yCandidate - y
		zDist := zCandidate - z
		value = math.Sqrt(xDist*xDist+yDist*yDist+zDist*zDist)*sqrt3 - 1.0
	}

	// The displacement hash always uses seed 0, regardless of the module's
	// own seed. Preserved for bit-compatibility, not corrected.
	return value + v.displacement*primitives.ValueNoise3D(
		int32(math.Floor(xCandidate)),
		int32(math.Floor(yCandidate)),
		int32(math.Floor(zCandidate)),
		0,
	)
}

var _ Module = (*Voronoi)(nil)
