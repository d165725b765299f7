package module

import (
	"fmt"
	"math"

	"github.com/coherentfield/noisegraph/core"
	"github.com/coherentfield/noisegraph/primitives"
)

// Billow is a zero-arity fractal generator, nearly identical to Perlin but
// with each octave folded through an absolute-value step before summing,
// which produces rounded "billowy" shapes instead of smooth waves.
type Billow struct {
	slots
	frequency   float64
	lacunarity  float64
	quality     core.NoiseQuality
	octaveCount int
	persistence float64
	seed        int32
}

// NewBillow creates a Billow generator with the same defaults as Perlin.
func NewBillow() *Billow {
	return &Billow{
		slots:       newSlots(0),
		frequency:   defaultFractalFrequency,
		lacunarity:  defaultFractalLacunarity,
		quality:     core.Std,
		octaveCount: defaultFractalOctaveCount,
		persistence: defaultFractalPersistence,
		seed:        defaultFractalSeed,
	}
}

func (b *Billow) Frequency() float64              { return b.frequency }
func (b *Billow) Lacunarity() float64             { return b.lacunarity }
func (b *Billow) NoiseQuality() core.NoiseQuality { return b.quality }
func (b *Billow) OctaveCount() int                { return b.octaveCount }
func (b *Billow) Persistence() float64            { return b.persistence }
func (b *Billow) Seed() int32                     { return b.seed }

func (b *Billow) SetFrequency(frequency float64)           { b.frequency = frequency }
func (b *Billow) SetLacunarity(lacunarity float64)         { b.lacunarity = lacunarity }
func (b *Billow) SetNoiseQuality(quality core.NoiseQuality) { b.quality = quality }
func (b *Billow) SetPersistence(persistence float64)       { b.persistence = persistence }
func (b *Billow) SetSeed(seed int32)                       { b.seed = seed }

// SetOctaveCount sets the number of summed noise layers. It fails with
// core.ErrInvalidParam outside [1, maxOctaveCount].
func (b *Billow) SetOctaveCount(octaveCount int) error {
	if octaveCount < 1 || octaveCount > maxOctaveCount {
		return fmt.Errorf("%w: octave count %d outside [1, %d]", core.ErrInvalidParam, octaveCount, maxOctaveCount)
	}
	b.octaveCount = octaveCount
	return nil
}

func (b *Billow) Value(x, y, z float64) float64 {
	var value, curPersistence float64 = 0, 1

	x *= b.frequency
	y *= b.frequency
	z *= b.frequency

	for o := 0; o < b.octaveCount; o++ {
		nx := core.MakeInt32Range(x)
		ny := core.MakeInt32Range(y)
		nz := core.MakeInt32Range(z)

		seed := b.seed + int32(o)
		signal := primitives.GradientCoherentNoise3D(nx, ny, nz, seed, b.quality)
		signal = 2.0*math.Abs(signal) - 1.0
		value += signal * curPersistence

		x *= b.lacunarity
		y *= b.lacunarity
		z *= b.lacunarity
		curPersistence *= b.persistence
	}

	return value + 0.5
}

var _ Module = (*Billow)(nil)
