package spectrum

import "github.com/cwbudde/algo-vecmath"

// In-place arithmetic kernels over the sample buffer.
//
// These are the hot-path primitives used by spectral combination code
// inside sampling inner loops: none of them allocates, and none of
// them validates. Matching operand lengths are the caller's
// responsibility; mismatches panic, as in the underlying vector
// kernels.

// AddScalar adds v to every sample.
func (s *Spectrum) AddScalar(v float64) {
	for i := range s.samples {
		s.samples[i] += v
	}
}

// SubScalar subtracts v from every sample.
func (s *Spectrum) SubScalar(v float64) {
	for i := range s.samples {
		s.samples[i] -= v
	}
}

// MulScalar multiplies every sample by v.
func (s *Spectrum) MulScalar(v float64) {
	vecmath.ScaleBlock(s.samples, s.samples, v)
}

// DivScalar divides every sample by v.
func (s *Spectrum) DivScalar(v float64) {
	vecmath.ScaleBlock(s.samples, s.samples, 1/v)
}

// AddArray adds values element-wise: samples[i] += values[i].
func (s *Spectrum) AddArray(values []float64) {
	vecmath.AddBlockInPlace(s.samples, values)
}

// SubArray subtracts values element-wise: samples[i] -= values[i].
func (s *Spectrum) SubArray(values []float64) {
	for i := range s.samples {
		s.samples[i] -= values[i]
	}
}

// MulArray multiplies element-wise: samples[i] *= values[i].
func (s *Spectrum) MulArray(values []float64) {
	vecmath.MulBlockInPlace(s.samples, values)
}

// DivArray divides element-wise: samples[i] /= values[i].
func (s *Spectrum) DivArray(values []float64) {
	for i := range s.samples {
		s.samples[i] /= values[i]
	}
}

// MADScalar performs a fused multiply-add with a scalar weight:
// samples[i] += v * values[i].
func (s *Spectrum) MADScalar(v float64, values []float64) {
	for i := range s.samples {
		s.samples[i] += v * values[i]
	}
}

// MADArray performs an element-wise fused multiply-add:
// samples[i] += a[i] * b[i].
func (s *Spectrum) MADArray(a, b []float64) {
	for i := range s.samples {
		s.samples[i] += a[i] * b[i]
	}
}
