package spectrum

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-radiometry/radiometry/core"
)

// checkQueryRange validates a wavelength query interval.
func checkQueryRange(minWavelength, maxWavelength float64) error {
	if minWavelength <= 0 {
		return fmt.Errorf("query min wavelength must be > 0 nm: %g", minWavelength)
	}
	if minWavelength >= maxWavelength {
		return fmt.Errorf("query wavelength range is invalid: min %g >= max %g", minWavelength, maxWavelength)
	}

	return nil
}

// Integrate returns the integral of the piecewise-linear interpolant
// through the bin-center sample points over [minWavelength,
// maxWavelength]. Outside the stored bin-center range the interpolant
// is extended as a constant (nearest sample), so any valid query
// range integrates to a defined value.
func (s *Spectrum) Integrate(minWavelength, maxWavelength float64) (float64, error) {
	if err := s.shapeCheck(); err != nil {
		return 0, err
	}
	if err := checkQueryRange(minWavelength, maxWavelength); err != nil {
		return 0, err
	}

	return s.integrateInterpolant(minWavelength, maxWavelength), nil
}

// Average returns the mean value of the interpolant over
// [minWavelength, maxWavelength]: the integral divided by the
// interval width.
func (s *Spectrum) Average(minWavelength, maxWavelength float64) (float64, error) {
	total, err := s.Integrate(minWavelength, maxWavelength)
	if err != nil {
		return 0, err
	}

	return total / (maxWavelength - minWavelength), nil
}

// Total returns the integral of the interpolant over the full stored
// wavelength domain.
func (s *Spectrum) Total() (float64, error) {
	return s.Integrate(s.minWavelength, s.maxWavelength)
}

// Resample re-bins the spectrum onto a new layout. Each target bin
// receives the average value of the interpolant over the bin's span
// (its integral divided by the bin width), so re-binning conserves
// flux exactly rather than point-sampling the interpolant.
func (s *Spectrum) Resample(minWavelength, maxWavelength float64, bins int) ([]float64, error) {
	if err := s.shapeCheck(); err != nil {
		return nil, err
	}
	if err := checkLayout(minWavelength, maxWavelength, bins); err != nil {
		return nil, err
	}

	delta := (maxWavelength - minWavelength) / float64(bins)
	out := make([]float64, bins)

	for i := range out {
		lo := minWavelength + float64(i)*delta
		hi := lo + delta
		out[i] = s.integrateInterpolant(lo, hi) / delta
	}

	return out, nil
}

// ToPhotons converts the per-bin spectral radiance to photon flux by
// dividing each sample by the energy of a photon at the bin-center
// wavelength. The result is in photons·s⁻¹·m⁻²·sr⁻¹·nm⁻¹.
func (s *Spectrum) ToPhotons() ([]float64, error) {
	if err := s.shapeCheck(); err != nil {
		return nil, err
	}

	w := s.Wavelengths()
	out := make([]float64, s.bins)

	for i, v := range s.samples {
		energy, err := core.PhotonEnergy(w[i])
		if err != nil {
			return nil, err
		}
		out[i] = v / energy
	}

	return out, nil
}

// integrateInterpolant integrates the piecewise-linear interpolant
// over [a, b] with a < b. The interpolant passes through the
// (bin-center, sample) points and is constant beyond the first and
// last centers.
func (s *Spectrum) integrateInterpolant(a, b float64) float64 {
	w := s.Wavelengths()
	y := s.samples
	last := s.bins - 1

	// Fully outside the sampled centers, or a single-bin spectrum:
	// the interpolant is constant.
	if last == 0 || b <= w[0] {
		return y[0] * (b - a)
	}
	if a >= w[last] {
		return y[last] * (b - a)
	}

	var total float64

	// Constant extension below the first center.
	if a < w[0] {
		total += y[0] * (w[0] - a)
	}

	// Constant extension above the last center.
	if b > w[last] {
		total += y[last] * (b - w[last])
	}

	lo := math.Max(a, w[0])
	hi := math.Min(b, w[last])

	// First segment whose upper center exceeds lo.
	j := sort.SearchFloat64s(w, lo)
	if j > 0 {
		j--
	}

	for ; j < last; j++ {
		segLo := math.Max(lo, w[j])
		segHi := math.Min(hi, w[j+1])
		if segHi <= segLo {
			if w[j] >= hi {
				break
			}
			continue
		}

		yLo := lerp(w[j], w[j+1], y[j], y[j+1], segLo)
		yHi := lerp(w[j], w[j+1], y[j], y[j+1], segHi)
		total += 0.5 * (yLo + yHi) * (segHi - segLo)

		if segHi >= hi {
			break
		}
	}

	return total
}

// lerp evaluates the line through (x0, y0) and (x1, y1) at x.
func lerp(x0, x1, y0, y1, x float64) float64 {
	t := (x - x0) / (x1 - x0)

	return y0 + t*(y1-y0)
}
