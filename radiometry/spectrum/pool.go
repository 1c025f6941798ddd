package spectrum

import "sync"

// Pool provides sync.Pool-based Spectrum reuse for a fixed spectral
// layout, reducing GC pressure when a new spectrum is needed per
// traced ray. All spectra handed out share one (min, max, bins)
// layout; Put rejects spectra with any other layout.
type Pool struct {
	minWavelength float64
	maxWavelength float64
	bins          int
	pool          sync.Pool
}

// NewPool returns a Pool producing spectra with the given layout.
func NewPool(minWavelength, maxWavelength float64, bins int) (*Pool, error) {
	if err := checkLayout(minWavelength, maxWavelength, bins); err != nil {
		return nil, err
	}

	p := &Pool{
		minWavelength: minWavelength,
		maxWavelength: maxWavelength,
		bins:          bins,
	}
	p.pool.New = func() any {
		s, _ := New(minWavelength, maxWavelength, bins)
		return s
	}

	return p, nil
}

// Get returns a zeroed Spectrum with the pool's layout. Callers
// should return it via Put when done.
func (p *Pool) Get() *Spectrum {
	s := p.pool.Get().(*Spectrum)
	s.Clear()

	return s
}

// Put returns a Spectrum to the pool for reuse. Nil spectra and
// spectra with a foreign layout or detached sample buffer are
// discarded rather than pooled.
func (p *Pool) Put(s *Spectrum) {
	if s == nil {
		return
	}
	if !s.IsCompatible(p.minWavelength, p.maxWavelength, p.bins) || s.shapeCheck() != nil {
		return
	}

	p.pool.Put(s)
}
