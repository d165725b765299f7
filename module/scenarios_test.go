package module

import (
	"math"
	"testing"
)

// These mirror the end-to-end numeric scenarios every module kind must
// satisfy when seeded to 0 with Std quality (the default for every
// generator here).

func TestScenarioConstValue(t *testing.T) {
	t.Parallel()

	c := NewConst()
	c.SetValue(0.7)
	if got := c.Value(5, 5, 5); got != 0.7 {
		t.Errorf("Const(0.7).Value(5,5,5) = %v, want 0.7 exact", got)
	}
}

func TestScenarioCheckerboardOnEvenCell(t *testing.T) {
	t.Parallel()

	cb := NewCheckerboard()
	if got := cb.Value(0.5, 0.5, 0.5); got != 1.0 {
		t.Errorf("Checkerboard().Value(0.5,0.5,0.5) = %v, want +1.0", got)
	}
}

func TestScenarioCheckerboardOnOddCell(t *testing.T) {
	t.Parallel()

	cb := NewCheckerboard()
	if got := cb.Value(1.5, 0.5, 0.5); got != -1.0 {
		t.Errorf("Checkerboard().Value(1.5,0.5,0.5) = %v, want -1.0", got)
	}
}

func TestScenarioCylindersOnFirstRingSurface(t *testing.T) {
	t.Parallel()

	c := NewCylinders()
	c.SetFrequency(1.0)
	if got := c.Value(1.0, 0, 0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Cylinders(freq=1).Value(1,0,0) = %v, want 1.0", got)
	}
}

func TestScenarioSpheresEquidistantBetweenCenterAndFirstShell(t *testing.T) {
	t.Parallel()

	s := NewSpheres()
	s.SetFrequency(1.0)
	if got := s.Value(0.5, 0, 0); math.Abs(got-(-1.0)) > 1e-9 {
		t.Errorf("Spheres(freq=1).Value(0.5,0,0) = %v, want -1.0", got)
	}
}

func TestScenarioPerlinDefaultIsFiniteAndDeterministic(t *testing.T) {
	t.Parallel()

	p := NewPerlin()
	a := p.Value(0, 0, 0)
	b := p.Value(0, 0, 0)
	if math.IsNaN(a) || math.IsInf(a, 0) {
		t.Fatalf("Perlin(default).Value(0,0,0) = %v, want finite", a)
	}
	if a != b {
		t.Errorf("Perlin(default).Value(0,0,0) is not reproducible: %v != %v", a, b)
	}
}

func TestScenarioAddOfTwoConsts(t *testing.T) {
	t.Parallel()

	add := NewAdd()
	add.SetSourceModule(0, constAt(0.3))
	add.SetSourceModule(1, constAt(0.4))
	if got := add.Value(0, 0, 0); got != 0.7 {
		t.Errorf("Add(Const(0.3), Const(0.4)).Value(0,0,0) = %v, want 0.7 exact", got)
	}
}

func TestScenarioBlendAtZeroControlIsMidpoint(t *testing.T) {
	t.Parallel()

	b := NewBlend()
	b.SetSourceModule(0, constAt(-1.0))
	b.SetSourceModule(1, constAt(1.0))
	b.SetControlModule(constAt(0.0))
	if got := b.Value(0, 0, 0); got != 0.0 {
		t.Errorf("Blend(Const(-1), Const(1), Const(0)).Value(0,0,0) = %v, want 0.0", got)
	}
}
