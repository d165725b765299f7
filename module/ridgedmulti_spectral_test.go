package module

import (
	"math"
	"math/cmplx"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/coherentfield/noisegraph/internal/testutil"
)

// TestRidgedMultiSpectrumIsNotFlat runs an FFT over a 1D sweep of
// RidgedMulti output and checks that its spectrum is shaped rather than
// flat. RidgedMulti's spectral weights fall off with lacunarity per
// octave, so low-frequency bins should carry more energy than
// high-frequency ones.
func TestRidgedMultiSpectrumIsNotFlat(t *testing.T) {
	t.Parallel()

	const fftSize = 256
	r := NewRidgedMulti()

	samples := make([]float64, fftSize)
	for i := range samples {
		samples[i] = r.Value(float64(i)*0.05, 0, 0)
	}
	testutil.RequireFinite(t, samples)

	padded := make([]complex128, fftSize)
	for i, v := range samples {
		padded[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		t.Fatalf("algofft.NewPlan64: %v", err)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		t.Fatalf("plan.Forward: %v", err)
	}

	half := fftSize / 2
	var lowEnergy, highEnergy float64
	for i := 1; i < half/4; i++ {
		lowEnergy += cmplx.Abs(spectrum[i])
	}
	for i := half / 2; i < half; i++ {
		highEnergy += cmplx.Abs(spectrum[i])
	}

	if lowEnergy <= highEnergy {
		t.Errorf("low-frequency energy %v is not greater than high-frequency energy %v; spectrum looks flat", lowEnergy, highEnergy)
	}
	if math.IsNaN(lowEnergy) || math.IsNaN(highEnergy) {
		t.Fatal("spectral energy is NaN")
	}
}
