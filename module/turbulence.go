package module

const (
	defaultTurbulenceFrequency = defaultFractalFrequency
	defaultTurbulencePower     = 1.0
	defaultTurbulenceRoughness = 3
	defaultTurbulenceSeed      = defaultFractalSeed
)

// Turbulence is a unary transformer that randomly displaces the input
// coordinates using three internal Perlin noise modules (one per axis)
// before evaluating its child at the displaced point.
//
// Suggested starting point: match the frequency to the child module and
// set the power to the reciprocal of that frequency.
type Turbulence struct {
	slots
	power                         float64
	xDistort, yDistort, zDistort *Perlin
}

// NewTurbulence creates a Turbulence transformer with the default
// frequency, power, roughness, and seed.
func NewTurbulence() *Turbulence {
	t := &Turbulence{
		slots:    newSlots(1),
		power:    defaultTurbulencePower,
		xDistort: NewPerlin(),
		yDistort: NewPerlin(),
		zDistort: NewPerlin(),
	}
	t.SetSeed(defaultTurbulenceSeed)
	t.SetFrequency(defaultTurbulenceFrequency)
	_ = t.SetRoughness(defaultTurbulenceRoughness)
	return t
}

// SetSourceModule binds the child module (slot 0).
func (t *Turbulence) SetSourceModule(child Module) { t.bindSlot(0, child) }

func (t *Turbulence) Frequency() float64 { return t.xDistort.Frequency() }
func (t *Turbulence) Power() float64     { return t.power }
func (t *Turbulence) Roughness() int     { return t.xDistort.OctaveCount() }
func (t *Turbulence) Seed() int32        { return t.xDistort.Seed() }

// SetFrequency sets the frequency of all three internal Perlin modules.
func (t *Turbulence) SetFrequency(frequency float64) {
	t.xDistort.SetFrequency(frequency)
	t.yDistort.SetFrequency(frequency)
	t.zDistort.SetFrequency(frequency)
}

// SetPower sets the scaling factor applied to the displacement amount.
func (t *Turbulence) SetPower(power float64) { t.power = power }

// SetRoughness sets the octave count of all three internal Perlin modules.
func (t *Turbulence) SetRoughness(roughness int) error {
	if err := t.xDistort.SetOctaveCount(roughness); err != nil {
		return err
	}
	if err := t.yDistort.SetOctaveCount(roughness); err != nil {
		return err
	}
	return t.zDistort.SetOctaveCount(roughness)
}

// SetSeed sets the seed of the internal Perlin modules. The three modules
// use offset seeds: x uses seed, y uses seed+1, z uses seed+2.
func (t *Turbulence) SetSeed(seed int32) {
	t.xDistort.SetSeed(seed)
	t.yDistort.SetSeed(seed + 1)
	t.zDistort.SetSeed(seed + 2)
}

func (t *Turbulence) Value(x, y, z float64) float64 {
	x0 := x + 12414.0/65536.0
	y0 := y + 65124.0/65536.0
	z0 := z + 31337.0/65536.0
	x1 := x + 26519.0/65536.0
	y1 := y + 18128.0/65536.0
	z1 := z + 60493.0/65536.0
	x2 := x + 53820.0/65536.0
	y2 := y + 11213.0/65536.0
	z2 := z + 44845.0/65536.0

	xDistort := x + t.xDistort.Value(x0, y0, z0)*t.power
	yDistort := y + t.yDistort.Value(x1, y1, z1)*t.power
	zDistort := z + t.zDistort.Value(x2, y2, z2)*t.power

	return t.at(0).Value(xDistort, yDistort, zDistort)
}

var _ Module = (*Turbulence)(nil)
