package module

import (
	"fmt"

	"github.com/coherentfield/noisegraph/core"
	"github.com/coherentfield/noisegraph/primitives"
)

// maxOctaveCount bounds the octave count accepted by Perlin, Billow, and
// RidgedMulti. Above this, per-octave cost dominates with vanishing visual
// return.
const maxOctaveCount = 30

const (
	defaultFractalFrequency    = 1.0
	defaultFractalLacunarity   = 2.0
	defaultFractalOctaveCount  = 6
	defaultFractalPersistence  = 0.5
	defaultFractalSeed         = 0
)

// Perlin is a zero-arity fractal generator that sums several octaves of
// gradient-coherent noise at increasing frequency and decreasing amplitude.
type Perlin struct {
	slots
	frequency    float64
	lacunarity   float64
	quality      core.NoiseQuality
	octaveCount  int
	persistence  float64
	seed         int32
}

// NewPerlin creates a Perlin generator with libnoise's standard defaults:
// frequency 1, lacunarity 2, 6 octaves, persistence 0.5, Std quality, seed 0.
func NewPerlin() *Perlin {
	return &Perlin{
		slots:       newSlots(0),
		frequency:   defaultFractalFrequency,
		lacunarity:  defaultFractalLacunarity,
		quality:     core.Std,
		octaveCount: defaultFractalOctaveCount,
		persistence: defaultFractalPersistence,
		seed:        defaultFractalSeed,
	}
}

func (p *Perlin) Frequency() float64         { return p.frequency }
func (p *Perlin) Lacunarity() float64        { return p.lacunarity }
func (p *Perlin) NoiseQuality() core.NoiseQuality { return p.quality }
func (p *Perlin) OctaveCount() int           { return p.octaveCount }
func (p *Perlin) Persistence() float64       { return p.persistence }
func (p *Perlin) Seed() int32                { return p.seed }

func (p *Perlin) SetFrequency(frequency float64)       { p.frequency = frequency }
func (p *Perlin) SetLacunarity(lacunarity float64)     { p.lacunarity = lacunarity }
func (p *Perlin) SetNoiseQuality(quality core.NoiseQuality) { p.quality = quality }
func (p *Perlin) SetPersistence(persistence float64)   { p.persistence = persistence }
func (p *Perlin) SetSeed(seed int32)                   { p.seed = seed }

// SetOctaveCount sets the number of summed noise layers. It fails with
// core.ErrInvalidParam outside [1, maxOctaveCount].
func (p *Perlin) SetOctaveCount(octaveCount int) error {
	if octaveCount < 1 || octaveCount > maxOctaveCount {
		return fmt.Errorf("%w: octave count %d outside [1, %d]", core.ErrInvalidParam, octaveCount, maxOctaveCount)
	}
	p.octaveCount = octaveCount
	return nil
}

func (p *Perlin) Value(x, y, z float64) float64 {
	var value, curPersistence float64 = 0, 1

	x *= p.frequency
	y *= p.frequency
	z *= p.frequency

	for o := 0; o < p.octaveCount; o++ {
		nx := core.MakeInt32Range(x)
		ny := core.MakeInt32Range(y)
		nz := core.MakeInt32Range(z)

		// The &0xffffffff seed mask is a no-op on an already 32-bit-wrapping
		// int32 and is omitted here; RidgedMulti's narrower 0x7fffffff mask
		// is not a no-op and is applied explicitly there.
		seed := p.seed + int32(o)
		signal := primitives.GradientCoherentNoise3D(nx, ny, nz, seed, p.quality)
		value += signal * curPersistence

		x *= p.lacunarity
		y *= p.lacunarity
		z *= p.lacunarity
		curPersistence *= p.persistence
	}

	return value
}

var _ Module = (*Perlin)(nil)
