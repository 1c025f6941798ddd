package spectrum

import "fmt"

// State is the serializable capture of a Spectrum. The field set and
// names are a stable persistence contract; the wavelength cache is
// never serialized and is rebuilt lazily after restoration.
type State struct {
	MinWavelength   float64   `json:"min_wavelength"`
	MaxWavelength   float64   `json:"max_wavelength"`
	Bins            int       `json:"bins"`
	DeltaWavelength float64   `json:"delta_wavelength"`
	Samples         []float64 `json:"samples"`
}

// State returns a snapshot of the Spectrum with a copied sample
// buffer.
func (s *Spectrum) State() State {
	samples := make([]float64, len(s.samples))
	copy(samples, s.samples)

	return State{
		MinWavelength:   s.minWavelength,
		MaxWavelength:   s.maxWavelength,
		Bins:            s.bins,
		DeltaWavelength: s.deltaWavelength,
		Samples:         samples,
	}
}

// FromState reconstructs a Spectrum from a snapshot, revalidating the
// layout and the internal consistency of the recorded fields.
func FromState(st State) (*Spectrum, error) {
	s, err := New(st.MinWavelength, st.MaxWavelength, st.Bins)
	if err != nil {
		return nil, err
	}

	if len(st.Samples) != st.Bins {
		return nil, fmt.Errorf("spectrum state sample count mismatch: %d != %d bins", len(st.Samples), st.Bins)
	}
	if st.DeltaWavelength != s.deltaWavelength {
		return nil, fmt.Errorf("spectrum state delta wavelength mismatch: %g != %g", st.DeltaWavelength, s.deltaWavelength)
	}

	copy(s.samples, st.Samples)

	return s, nil
}
