package primitives

import "github.com/coherentfield/noisegraph/core"

// Lattice-hash constants. These control how integer coordinates and a seed
// are mixed into a table index or an integer-noise value. They must stay
// prime relative to one another and to the table sizes they feed; changing
// them changes every noise value the engine produces.
const (
	xNoiseGen    = 1619
	yNoiseGen    = 31337
	zNoiseGen    = 6971
	seedNoiseGen = 1013
	shiftNoiseGen = 8
)

// IntValueNoise3D generates a deterministic integer-noise value in
// [0, 2147483647] from a lattice coordinate and seed.
func IntValueNoise3D(x, y, z, seed int32) int32 {
	n := (xNoiseGen*x + yNoiseGen*y + zNoiseGen*z + seedNoiseGen*seed) & 0x7fffffff
	n = (n >> 13) ^ n
	return (n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff
}

// ValueNoise3D generates a deterministic value-noise value in [-1, 1] from
// a lattice coordinate and seed.
func ValueNoise3D(x, y, z, seed int32) float64 {
	return 1.0 - float64(IntValueNoise3D(x, y, z, seed))/1073741824.0
}

// GradientNoise3D computes the dot product of a gradient vector - selected
// by hashing the lattice coordinate (ix, iy, iz) and seed - with the
// displacement from that lattice point to the floating-point point
// (fx, fy, fz).
//
// fx-ix, fy-iy, and fz-iz must each have magnitude <= 1; callers pass the
// fractional offset from one corner of the surrounding unit cube.
func GradientNoise3D(fx, fy, fz float64, ix, iy, iz, seed int32) float64 {
	vectorIndex := uint32(xNoiseGen)*uint32(ix) +
		uint32(yNoiseGen)*uint32(iy) +
		uint32(zNoiseGen)*uint32(iz) +
		uint32(seedNoiseGen)*uint32(seed)
	vectorIndex = (vectorIndex ^ (vectorIndex >> shiftNoiseGen)) & 0xff

	g := gradientTable[vectorIndex]

	xvPoint := fx - float64(ix)
	yvPoint := fy - float64(iy)
	zvPoint := fz - float64(iz)

	return (g[0]*xvPoint + g[1]*yvPoint + g[2]*zvPoint) * 2.12
}

// ValueCoherentNoise3D generates a smoothly-varying value-noise value at a
// floating-point point by trilinearly interpolating ValueNoise3D across the
// surrounding unit lattice cube, under the given smoothing quality.
func ValueCoherentNoise3D(x, y, z float64, seed int32, quality core.NoiseQuality) float64 {
	x0, x1, xs := cubeAxis(x, quality)
	y0, y1, ys := cubeAxis(y, quality)
	z0, z1, zs := cubeAxis(z, quality)

	n0 := ValueNoise3D(x0, y0, z0, seed)
	n1 := ValueNoise3D(x1, y0, z0, seed)
	ix0 := core.LinearInterp(n0, n1, xs)

	n0 = ValueNoise3D(x0, y1, z0, seed)
	n1 = ValueNoise3D(x1, y1, z0, seed)
	ix1 := core.LinearInterp(n0, n1, xs)
	iy0 := core.LinearInterp(ix0, ix1, ys)

	n0 = ValueNoise3D(x0, y0, z1, seed)
	n1 = ValueNoise3D(x1, y0, z1, seed)
	ix2 := core.LinearInterp(n0, n1, xs)

	n0 = ValueNoise3D(x0, y1, z1, seed)
	n1 = ValueNoise3D(x1, y1, z1, seed)
	ix3 := core.LinearInterp(n0, n1, xs)
	iy1 := core.LinearInterp(ix2, ix3, ys)

	return core.LinearInterp(iy0, iy1, zs)
}

// GradientCoherentNoise3D generates a smoothly-varying gradient-noise value
// at a floating-point point by trilinearly interpolating GradientNoise3D
// across the surrounding unit lattice cube, under the given smoothing
// quality. This is the primitive behind every fractal generator.
func GradientCoherentNoise3D(x, y, z float64, seed int32, quality core.NoiseQuality) float64 {
	x0, x1, xs := cubeAxis(x, quality)
	y0, y1, ys := cubeAxis(y, quality)
	z0, z1, zs := cubeAxis(z, quality)

	n0 := GradientNoise3D(x, y, z, x0, y0, z0, seed)
	n1 := GradientNoise3D(x, y, z, x1, y0, z0, seed)
	ix0 := core.LinearInterp(n0, n1, xs)

	n0 = GradientNoise3D(x, y, z, x0, y1, z0, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z0, seed)
	ix1 := core.LinearInterp(n0, n1, xs)
	iy0 := core.LinearInterp(ix0, ix1, ys)

	n0 = GradientNoise3D(x, y, z, x0, y0, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y0, z1, seed)
	ix2 := core.LinearInterp(n0, n1, xs)

	n0 = GradientNoise3D(x, y, z, x0, y1, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z1, seed)
	ix3 := core.LinearInterp(n0, n1, xs)
	iy1 := core.LinearInterp(ix2, ix3, ys)

	return core.LinearInterp(iy0, iy1, zs)
}

// cubeAxis floors a coordinate to its surrounding lattice cell along one
// axis and smooths the fractional offset under quality. It returns the
// lower and upper lattice coordinates and the smoothed interpolant.
func cubeAxis(v float64, quality core.NoiseQuality) (lo, hi int32, smoothed float64) {
	lo = fastFloor(v)
	hi = lo + 1
	smoothed = quality.Smooth(v - float64(lo))
	return lo, hi, smoothed
}

// fastFloor floors v and casts the result to int32. Callers are expected to
// have already folded v through core.MakeInt32Range so the cast is safe and
// platform-independent.
func fastFloor(v float64) int32 {
	i := int32(v)
	if v < float64(i) {
		return i - 1
	}
	return i
}
