package module

import (
	"math"
	"testing"
)

func TestConstValue(t *testing.T) {
	t.Parallel()

	c := NewConst()
	if got := c.Value(1, 2, 3); got != 0 {
		t.Errorf("default Value() = %v, want 0", got)
	}

	c.SetValue(4.5)
	for _, p := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-5, 10, 100}} {
		if got := c.Value(p[0], p[1], p[2]); got != 4.5 {
			t.Errorf("Value(%v) = %v, want 4.5", p, got)
		}
	}
	if got := c.ConstValue(); got != 4.5 {
		t.Errorf("ConstValue() = %v, want 4.5", got)
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	t.Parallel()

	c := NewCheckerboard()
	origin := c.Value(0, 0, 0)
	neighbor := c.Value(1, 0, 0)
	if origin == neighbor {
		t.Errorf("Value(0,0,0) == Value(1,0,0) == %v, want adjacent cells to differ", origin)
	}
	if origin != 1.0 && origin != -1.0 {
		t.Errorf("Value(0,0,0) = %v, want +-1", origin)
	}

	diag := c.Value(1, 1, 0)
	if diag != origin {
		t.Errorf("Value(1,1,0) = %v, want same parity as origin (%v)", diag, origin)
	}
}

func TestCylindersFrequency(t *testing.T) {
	t.Parallel()

	c := NewCylinders()
	if got := c.Frequency(); got != defaultCylindersFrequency {
		t.Errorf("Frequency() = %v, want %v", got, defaultCylindersFrequency)
	}

	onSurface := c.Value(1, 5, 0)
	if math.Abs(onSurface-1.0) > 1e-9 {
		t.Errorf("Value(1,5,0) on the first cylinder's surface = %v, want 1", onSurface)
	}

	c.SetFrequency(2.0)
	if got := c.Frequency(); got != 2.0 {
		t.Errorf("Frequency() after SetFrequency(2) = %v, want 2", got)
	}
}

func TestSpheresFrequency(t *testing.T) {
	t.Parallel()

	s := NewSpheres()
	onSurface := s.Value(1, 0, 0)
	if math.Abs(onSurface-1.0) > 1e-9 {
		t.Errorf("Value(1,0,0) on the first sphere's surface = %v, want 1", onSurface)
	}

	s.SetFrequency(0.5)
	if got := s.Frequency(); got != 0.5 {
		t.Errorf("Frequency() after SetFrequency(0.5) = %v, want 0.5", got)
	}
}

func TestVoronoiFloorQuirk(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want int32
	}{
		{2.5, 2},
		{2.0, 2},
		{-2.0, -3}, // the preserved quirk: floor(-2.0) is -2, not -3
		{-2.5, -3},
		{0.0, -1}, // zero is not > 0, so it also takes the int(x)-1 branch
	}
	for _, c := range cases {
		if got := voronoiFloor(c.in); got != c.want {
			t.Errorf("voronoiFloor(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestVoronoiIsDeterministic(t *testing.T) {
	t.Parallel()

	v := NewVoronoi()
	a := v.Value(1.3, 2.7, -0.5)
	b := v.Value(1.3, 2.7, -0.5)
	if a != b {
		t.Errorf("Value() is not deterministic: %v != %v", a, b)
	}
}

func TestVoronoiDistanceModeNotBelowMinusOne(t *testing.T) {
	t.Parallel()

	// With zero displacement the output is distance*sqrt3 - 1, and the
	// distance is never negative.
	v := NewVoronoi()
	v.SetEnableDistance(true)
	v.SetDisplacement(0)
	for _, p := range [][3]float64{{0, 0, 0}, {3.3, -1.2, 5.5}, {-10, 10, -10}} {
		got := v.Value(p[0], p[1], p[2])
		if got < -1.0-1e-9 {
			t.Errorf("Value(%v) in distance mode = %v, want >= -1", p, got)
		}
	}
}

func TestPerlinValueIsDeterministic(t *testing.T) {
	t.Parallel()

	p := NewPerlin()
	a := p.Value(1.1, 2.2, 3.3)
	b := p.Value(1.1, 2.2, 3.3)
	if a != b {
		t.Errorf("Value() is not deterministic: %v != %v", a, b)
	}
}

func TestPerlinOctaveCountValidation(t *testing.T) {
	t.Parallel()

	p := NewPerlin()
	if err := p.SetOctaveCount(0); err == nil {
		t.Error("SetOctaveCount(0) succeeded, want an error")
	}
	if err := p.SetOctaveCount(maxOctaveCount + 1); err == nil {
		t.Error("SetOctaveCount(maxOctaveCount+1) succeeded, want an error")
	}
	if err := p.SetOctaveCount(1); err != nil {
		t.Errorf("SetOctaveCount(1) returned error: %v", err)
	}
	if got := p.OctaveCount(); got != 1 {
		t.Errorf("OctaveCount() = %d, want 1", got)
	}
}

func TestBillowStaysNearUnitRange(t *testing.T) {
	t.Parallel()

	b := NewBillow()
	for x := 0.0; x < 5.0; x += 0.37 {
		got := b.Value(x, x*2, x*3)
		if got < -1.5 || got > 1.5 {
			t.Errorf("Value(%v,...) = %v, want roughly within [-1.5, 1.5]", x, got)
		}
	}
}

func TestBillowOctaveCountValidation(t *testing.T) {
	t.Parallel()

	b := NewBillow()
	if err := b.SetOctaveCount(0); err == nil {
		t.Error("SetOctaveCount(0) succeeded, want an error")
	}
}

func TestRidgedMultiOctaveCountHasNoLowerBound(t *testing.T) {
	t.Parallel()

	r := NewRidgedMulti()
	if err := r.SetOctaveCount(0); err != nil {
		t.Errorf("SetOctaveCount(0) returned error %v, want nil (no lower bound on RidgedMulti)", err)
	}
	if got := r.OctaveCount(); got != 0 {
		t.Errorf("OctaveCount() = %d, want 0", got)
	}
	if err := r.SetOctaveCount(maxOctaveCount + 1); err == nil {
		t.Error("SetOctaveCount(maxOctaveCount+1) succeeded, want an error")
	}
}

func TestRidgedMultiZeroOctavesIsConstant(t *testing.T) {
	t.Parallel()

	r := NewRidgedMulti()
	_ = r.SetOctaveCount(0)
	// With no octaves summed, value is 0*1.25 - 1.0.
	if got := r.Value(1, 2, 3); got != -1.0 {
		t.Errorf("Value() with 0 octaves = %v, want -1", got)
	}
}

func TestRidgedMultiSetLacunarityRecomputesWeights(t *testing.T) {
	t.Parallel()

	r := NewRidgedMulti()
	before := r.spectralWeights[1]
	r.SetLacunarity(3.0)
	after := r.spectralWeights[1]
	if before == after {
		t.Error("spectralWeights did not change after SetLacunarity")
	}
}
