package primitives

import "math"

// gradientTableSize is the number of entries in gradientTable. The lattice
// hash in GradientNoise3D masks its index to exactly this many values.
const gradientTableSize = 256

// goldenAngle is the angle (in radians) used to distribute gradientTable's
// vectors evenly around the unit sphere, one step per table entry.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// gradientTable holds gradientTableSize unit-length vectors, indexed by the
// hashed lattice coordinate produced by GradientNoise3D.
//
// The vectors are laid out on a Fibonacci sphere: entry i sits at
// z = 1 - (2i+1)/gradientTableSize, with the remaining two coordinates swept
// around the z-axis by i*goldenAngle. This produces a fixed, reproducible,
// near-uniform distribution of directions computed the same way on every
// platform, which is what the hash lattice needs. GradientNoise3D does not
// depend on any particular vector assignment, only that the assignment is
// stable and well distributed.
var gradientTable [gradientTableSize][3]float64

func init() {
	for i := 0; i < gradientTableSize; i++ {
		z := 1 - (2*float64(i)+1)/float64(gradientTableSize)
		r := math.Sqrt(math.Max(0, 1-z*z))
		theta := float64(i) * goldenAngle
		gradientTable[i][0] = r * math.Cos(theta)
		gradientTable[i][1] = r * math.Sin(theta)
		gradientTable[i][2] = z
	}
}
