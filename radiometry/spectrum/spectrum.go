package spectrum

import "fmt"

// Spectrum is a discretized spectral function over a wavelength
// interval. The interval [minWavelength, maxWavelength) is divided
// into bins of equal width; each bin holds one spectral radiance
// sample associated with the bin's center wavelength.
//
// A Spectrum is not safe for concurrent mutation. Rendering workers
// are expected to hold private instances (see Pool) and merge results
// through the frame accumulators.
type Spectrum struct {
	minWavelength   float64
	maxWavelength   float64
	bins            int
	deltaWavelength float64
	samples         []float64

	// wavelengths caches the bin centers. Built on first use and
	// immutable afterwards; derived purely from the layout fields.
	wavelengths []float64
}

// checkLayout validates a spectral layout triple.
func checkLayout(minWavelength, maxWavelength float64, bins int) error {
	if minWavelength <= 0 {
		return fmt.Errorf("spectrum min wavelength must be > 0 nm: %g", minWavelength)
	}
	if maxWavelength <= 0 {
		return fmt.Errorf("spectrum max wavelength must be > 0 nm: %g", maxWavelength)
	}
	if minWavelength >= maxWavelength {
		return fmt.Errorf("spectrum wavelength range is invalid: min %g >= max %g", minWavelength, maxWavelength)
	}
	if bins < 1 {
		return fmt.Errorf("spectrum bin count must be >= 1: %d", bins)
	}

	return nil
}

// New returns a zero-filled Spectrum over [minWavelength,
// maxWavelength) nanometres with the given number of bins.
func New(minWavelength, maxWavelength float64, bins int) (*Spectrum, error) {
	if err := checkLayout(minWavelength, maxWavelength, bins); err != nil {
		return nil, err
	}

	return &Spectrum{
		minWavelength:   minWavelength,
		maxWavelength:   maxWavelength,
		bins:            bins,
		deltaWavelength: (maxWavelength - minWavelength) / float64(bins),
		samples:         make([]float64, bins),
	}, nil
}

// NewFromSamples returns a Spectrum adopting a copy of the given
// sample values. The bin count is the sample count.
func NewFromSamples(minWavelength, maxWavelength float64, samples []float64) (*Spectrum, error) {
	s, err := New(minWavelength, maxWavelength, len(samples))
	if err != nil {
		return nil, err
	}
	copy(s.samples, samples)

	return s, nil
}

// MinWavelength returns the lower bound of the spectral range in nm.
func (s *Spectrum) MinWavelength() float64 { return s.minWavelength }

// MaxWavelength returns the upper bound of the spectral range in nm.
func (s *Spectrum) MaxWavelength() float64 { return s.maxWavelength }

// Bins returns the number of spectral bins.
func (s *Spectrum) Bins() int { return s.bins }

// DeltaWavelength returns the bin width in nm.
func (s *Spectrum) DeltaWavelength() float64 { return s.deltaWavelength }

// Samples returns the underlying sample buffer. Mutations through the
// returned slice are visible to the Spectrum; analysis methods
// re-validate the buffer shape on entry.
func (s *Spectrum) Samples() []float64 { return s.samples }

// Wavelengths returns the bin-center wavelengths in nm. The slice is
// built on first use and must be treated as read-only.
func (s *Spectrum) Wavelengths() []float64 {
	if s.wavelengths == nil {
		w := make([]float64, s.bins)
		for i := range w {
			w[i] = s.minWavelength + (float64(i)+0.5)*s.deltaWavelength
		}
		s.wavelengths = w
	}

	return s.wavelengths
}

// IsCompatible reports whether the Spectrum has exactly the given
// layout. Used to validate reuse of pooled spectra.
func (s *Spectrum) IsCompatible(minWavelength, maxWavelength float64, bins int) bool {
	return s.minWavelength == minWavelength &&
		s.maxWavelength == maxWavelength &&
		s.bins == bins
}

// IsZero reports whether every sample is exactly zero.
func (s *Spectrum) IsZero() bool {
	for _, v := range s.samples {
		if v != 0 {
			return false
		}
	}

	return true
}

// Clear zeroes all samples in place, preserving the layout.
func (s *Spectrum) Clear() {
	for i := range s.samples {
		s.samples[i] = 0
	}
}

// Zeroed returns a fresh zero-filled Spectrum with the same layout.
func (s *Spectrum) Zeroed() *Spectrum {
	return &Spectrum{
		minWavelength:   s.minWavelength,
		maxWavelength:   s.maxWavelength,
		bins:            s.bins,
		deltaWavelength: s.deltaWavelength,
		samples:         make([]float64, s.bins),
	}
}

// Copy returns an independent deep copy of the Spectrum.
func (s *Spectrum) Copy() *Spectrum {
	c := s.Zeroed()
	copy(c.samples, s.samples)

	return c
}

// shapeCheck re-validates the sample buffer against the declared bin
// count. Callers may mutate the buffer between calls via Samples(),
// so every analysis entry point revalidates rather than assuming a
// previous check still holds.
func (s *Spectrum) shapeCheck() error {
	if s.samples == nil {
		return fmt.Errorf("spectrum sample buffer is absent")
	}
	if len(s.samples) != s.bins {
		return fmt.Errorf("spectrum sample buffer length mismatch: %d != %d bins", len(s.samples), s.bins)
	}

	return nil
}
