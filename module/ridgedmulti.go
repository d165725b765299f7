package module

import (
	"fmt"
	"math"

	"github.com/coherentfield/noisegraph/core"
	"github.com/coherentfield/noisegraph/primitives"
)

// RidgedMulti is a zero-arity fractal generator whose per-octave signal is
// squared and inverted to produce sharp ridges, with octave amplitude
// controlled by feedback (clamped to [0, 1]) rather than a fixed
// persistence. Spectral weights are precomputed from the lacunarity.
type RidgedMulti struct {
	slots
	frequency       float64
	lacunarity      float64
	quality         core.NoiseQuality
	octaveCount     int
	seed            int32
	spectralWeights [maxOctaveCount]float64
}

// NewRidgedMulti creates a RidgedMulti generator with the same
// frequency/lacunarity/octave-count/quality/seed defaults as Perlin.
// It has no persistence parameter.
func NewRidgedMulti() *RidgedMulti {
	r := &RidgedMulti{
		slots:       newSlots(0),
		frequency:   defaultFractalFrequency,
		lacunarity:  defaultFractalLacunarity,
		quality:     core.Std,
		octaveCount: defaultFractalOctaveCount,
		seed:        defaultFractalSeed,
	}
	r.calcSpectralWeights()
	return r
}

func (r *RidgedMulti) Frequency() float64              { return r.frequency }
func (r *RidgedMulti) Lacunarity() float64             { return r.lacunarity }
func (r *RidgedMulti) NoiseQuality() core.NoiseQuality { return r.quality }
func (r *RidgedMulti) OctaveCount() int                { return r.octaveCount }
func (r *RidgedMulti) Seed() int32                     { return r.seed }

func (r *RidgedMulti) SetFrequency(frequency float64)            { r.frequency = frequency }
func (r *RidgedMulti) SetNoiseQuality(quality core.NoiseQuality) { r.quality = quality }
func (r *RidgedMulti) SetSeed(seed int32)                        { r.seed = seed }

// SetLacunarity sets the frequency multiplier between octaves and
// recomputes the spectral weight table, since the weights depend on it.
func (r *RidgedMulti) SetLacunarity(lacunarity float64) {
	r.lacunarity = lacunarity
	r.calcSpectralWeights()
}

// SetOctaveCount sets the number of summed noise layers. Unlike Perlin and
// Billow, the source places no lower bound on this value; only the upper
// bound is enforced.
func (r *RidgedMulti) SetOctaveCount(octaveCount int) error {
	if octaveCount > maxOctaveCount {
		return fmt.Errorf("%w: octave count %d exceeds %d", core.ErrInvalidParam, octaveCount, maxOctaveCount)
	}
	r.octaveCount = octaveCount
	return nil
}

// calcSpectralWeights precomputes w[o] = lacunarity^(-o) for every octave
// slot up to maxOctaveCount, regardless of the current octave count.
func (r *RidgedMulti) calcSpectralWeights() {
	frequency := 1.0
	for i := 0; i < maxOctaveCount; i++ {
		r.spectralWeights[i] = math.Pow(frequency, -1.0)
		frequency *= r.lacunarity
	}
}

func (r *RidgedMulti) Value(x, y, z float64) float64 {
	x *= r.frequency
	y *= r.frequency
	z *= r.frequency

	var value, weight float64 = 0, 1
	const offset, gain = 1.0, 2.0

	for o := 0; o < r.octaveCount; o++ {
		nx := core.MakeInt32Range(x)
		ny := core.MakeInt32Range(y)
		nz := core.MakeInt32Range(z)

		seed := int32(uint32(r.seed+int32(o)) & 0x7fffffff)
		signal := primitives.GradientCoherentNoise3D(nx, ny, nz, seed, r.quality)
		signal = math.Abs(signal)
		signal = offset - signal
		signal *= signal
		signal *= weight

		weight = core.Clamp(signal*gain, 0.0, 1.0)

		value += signal * r.spectralWeights[o]

		x *= r.lacunarity
		y *= r.lacunarity
		z *= r.lacunarity
	}

	return value*1.25 - 1.0
}

var _ Module = (*RidgedMulti)(nil)
