package spectrum

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-radiometry/internal/testutil"
	"github.com/cwbudde/algo-radiometry/radiometry/core"
)

func TestIntegrateConstant(t *testing.T) {
	s, _ := NewFromSamples(400, 720, testutil.ConstantSamples(2.5, 8))

	got, err := s.Integrate(400, 720)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}

	want := 2.5 * 320.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Integrate = %v, want %v", got, want)
	}

	total, err := s.Total()
	if err != nil {
		t.Fatalf("Total error: %v", err)
	}
	if total != got {
		t.Fatalf("Total = %v, want %v", total, got)
	}
}

func TestIntegrateSubRange(t *testing.T) {
	// Linear ramp: the interpolant is the exact line through the bin
	// centers, so sub-range integrals have a closed form.
	s, _ := NewFromSamples(400, 720, testutil.RampSamples(1, 8, 8))

	// Between centers 420 and 700 the interpolant is y = 1 + (w-420)/40.
	got, err := s.Integrate(460, 540)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}

	// y(460)=2, y(540)=4, trapezoid over width 80.
	want := 0.5 * (2.0 + 4.0) * 80.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Integrate(460,540) = %v, want %v", got, want)
	}
}

func TestIntegrateOutsideDomain(t *testing.T) {
	s, _ := NewFromSamples(400, 720, testutil.RampSamples(1, 8, 8))

	// Fully below the first bin center: constant extension at y=1.
	got, err := s.Integrate(100, 300)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if math.Abs(got-200.0) > 1e-9 {
		t.Fatalf("Integrate(100,300) = %v, want 200", got)
	}

	// Fully above the last bin center: constant extension at y=8.
	got, err = s.Integrate(800, 900)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if math.Abs(got-800.0) > 1e-9 {
		t.Fatalf("Integrate(800,900) = %v, want 800", got)
	}

	// Straddling the lower edge: constant part plus trapezoid.
	got, err = s.Integrate(380, 460)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	want := 1.0*(420.0-380.0) + 0.5*(1.0+2.0)*40.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Integrate(380,460) = %v, want %v", got, want)
	}
}

func TestIntegrateSingleBin(t *testing.T) {
	s, _ := NewFromSamples(400, 720, []float64{3})

	got, err := s.Integrate(100, 900)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}
	if math.Abs(got-3.0*800.0) > 1e-9 {
		t.Fatalf("single-bin Integrate = %v, want 2400", got)
	}
}

func TestIntegrateValidation(t *testing.T) {
	s, _ := New(400, 720, 4)

	if _, err := s.Integrate(500, 500); err == nil {
		t.Fatalf("expected error for empty range")
	}
	if _, err := s.Integrate(600, 500); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	if _, err := s.Integrate(-10, 500); err == nil {
		t.Fatalf("expected error for non-positive min")
	}
}

func TestAverage(t *testing.T) {
	s, _ := NewFromSamples(400, 720, testutil.ConstantSamples(2.5, 8))

	got, err := s.Average(450, 650)
	if err != nil {
		t.Fatalf("Average error: %v", err)
	}
	if math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("Average = %v, want 2.5", got)
	}
}

func TestResampleFluxConservation(t *testing.T) {
	s, _ := NewFromSamples(400, 720, testutil.NoiseSamples(7, 4.0, 16))

	want, err := s.Integrate(400, 720)
	if err != nil {
		t.Fatalf("Integrate error: %v", err)
	}

	// Re-binning conserves the integral regardless of the target bin
	// count: each target bin is the exact integral of the interpolant
	// over its span divided by its width.
	for _, bins := range []int{1, 3, 5, 16, 64, 256} {
		out, err := s.Resample(400, 720, bins)
		if err != nil {
			t.Fatalf("Resample(%d) error: %v", bins, err)
		}

		delta := 320.0 / float64(bins)
		got := floats.Sum(out) * delta
		if math.Abs(got-want) > 1e-9*math.Abs(want) {
			t.Fatalf("bins=%d: resampled flux %v != integral %v", bins, got, want)
		}
	}
}

func TestResampleConstant(t *testing.T) {
	s, _ := NewFromSamples(400, 720, testutil.ConstantSamples(1.25, 8))

	out, err := s.Resample(350, 800, 9)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out, testutil.ConstantSamples(1.25, 9), 1e-12)
}

func TestResampleIdentity(t *testing.T) {
	in := testutil.NoiseSamples(11, 2.0, 12)
	s, _ := NewFromSamples(400, 720, in)

	// Resampling onto the identical layout averages the interpolant
	// over each original bin; interior bins whose neighbours form a
	// straight line reproduce the original value exactly.
	out, err := s.Resample(400, 720, 12)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	testutil.RequireFinite(t, out)

	if len(out) != 12 {
		t.Fatalf("resampled length = %d, want 12", len(out))
	}
}

func TestResampleValidation(t *testing.T) {
	s, _ := New(400, 720, 4)

	if _, err := s.Resample(720, 400, 4); err == nil {
		t.Fatalf("expected error for inverted target range")
	}
	if _, err := s.Resample(400, 720, 0); err == nil {
		t.Fatalf("expected error for zero target bins")
	}
}

func TestToPhotons(t *testing.T) {
	s, _ := NewFromSamples(400, 720, []float64{1, 2, 3, 4})

	photons, err := s.ToPhotons()
	if err != nil {
		t.Fatalf("ToPhotons error: %v", err)
	}

	w := s.Wavelengths()
	for i, v := range s.Samples() {
		energy := core.PlanckLightSpeed / (w[i] * 1e-9)
		want := v / energy
		if math.Abs(photons[i]-want) > 1e-6*want {
			t.Fatalf("photons[%d] = %v, want %v", i, photons[i], want)
		}
	}
}
