package model

import (
	"math"
	"testing"

	"github.com/coherentfield/noisegraph/module"
)

func TestLatLonToXYZ(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		lat, lon float64
		wantX    float64
		wantY    float64
		wantZ    float64
	}{
		{"equator_prime_meridian", 0, 0, 1, 0, 0},
		{"north_pole", 90, 0, 0, 1, 0},
		{"south_pole", -90, 0, 0, -1, 0},
		{"equator_east_90", 0, 90, 0, 0, 1},
		{"equator_west_90", 0, -90, 0, 0, -1},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			x, y, z := LatLonToXYZ(c.lat, c.lon)
			if !closeEnough(x, c.wantX) || !closeEnough(y, c.wantY) || !closeEnough(z, c.wantZ) {
				t.Errorf("LatLonToXYZ(%v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					c.lat, c.lon, x, y, z, c.wantX, c.wantY, c.wantZ)
			}
		})
	}
}

func TestLatLonToXYZStaysOnUnitSphere(t *testing.T) {
	t.Parallel()

	for lat := -90.0; lat <= 90.0; lat += 15.0 {
		for lon := -180.0; lon <= 180.0; lon += 20.0 {
			x, y, z := LatLonToXYZ(lat, lon)
			if r := math.Sqrt(x*x + y*y + z*z); !closeEnough(r, 1.0) {
				t.Fatalf("LatLonToXYZ(%v, %v) has radius %v, want 1", lat, lon, r)
			}
		}
	}
}

func TestSphereValueDelegatesThroughLatLonToXYZ(t *testing.T) {
	t.Parallel()

	c := module.NewConst()
	c.SetValue(0.5)

	sphere := NewSphere(c)
	if got := sphere.Value(10, 20); got != 0.5 {
		t.Errorf("Sphere.Value() = %v, want 0.5", got)
	}
}

func TestSphereValueMatchesDirectModuleCall(t *testing.T) {
	t.Parallel()

	p := module.NewPerlin()
	sphere := NewSphere(p)

	lat, lon := 37.5, -122.0
	x, y, z := LatLonToXYZ(lat, lon)

	got := sphere.Value(lat, lon)
	want := p.Value(x, y, z)
	if got != want {
		t.Errorf("Sphere.Value(%v, %v) = %v, want %v", lat, lon, got, want)
	}
}

func TestSphereSetModule(t *testing.T) {
	t.Parallel()

	c1 := module.NewConst()
	c1.SetValue(1.0)
	c2 := module.NewConst()
	c2.SetValue(2.0)

	sphere := NewSphere(c1)
	if got := sphere.Value(0, 0); got != 1.0 {
		t.Fatalf("Value() = %v, want 1.0", got)
	}

	sphere.SetModule(c2)
	if got := sphere.Value(0, 0); got != 2.0 {
		t.Fatalf("Value() after SetModule = %v, want 2.0", got)
	}
	if sphere.Module() != module.Module(c2) {
		t.Errorf("Module() did not return the module set by SetModule")
	}
}

func closeEnough(a, b float64) bool {
	const epsilon = 1e-9
	return math.Abs(a-b) < epsilon
}
