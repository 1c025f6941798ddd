package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-radiometry/internal/testutil"
)

func newArithSpectrum(t *testing.T) *Spectrum {
	t.Helper()
	s, err := NewFromSamples(400, 720, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewFromSamples error: %v", err)
	}
	return s
}

func TestScalarArithmetic(t *testing.T) {
	s := newArithSpectrum(t)
	s.AddScalar(1)
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{2, 3, 4, 5}, 1e-12)

	s.SubScalar(2)
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{0, 1, 2, 3}, 1e-12)

	s.MulScalar(3)
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{0, 3, 6, 9}, 1e-12)

	s.DivScalar(3)
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{0, 1, 2, 3}, 1e-12)
}

func TestArrayArithmetic(t *testing.T) {
	s := newArithSpectrum(t)
	s.AddArray([]float64{10, 20, 30, 40})
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{11, 22, 33, 44}, 1e-12)

	s.SubArray([]float64{1, 2, 3, 4})
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{10, 20, 30, 40}, 1e-12)

	s.MulArray([]float64{2, 2, 0.5, 0.5})
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{20, 40, 15, 20}, 1e-12)

	s.DivArray([]float64{10, 10, 5, 4})
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{2, 4, 3, 5}, 1e-12)
}

func TestMADScalar(t *testing.T) {
	s := newArithSpectrum(t)
	s.MADScalar(2, []float64{1, 1, 1, 1})
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{3, 4, 5, 6}, 1e-12)
}

func TestMADArray(t *testing.T) {
	s := newArithSpectrum(t)
	s.MADArray([]float64{1, 2, 3, 4}, []float64{2, 2, 2, 2})
	testutil.RequireSliceNearlyEqual(t, s.Samples(), []float64{3, 6, 9, 12}, 1e-12)
}
