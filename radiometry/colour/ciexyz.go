package colour

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-radiometry/radiometry/core"
	"github.com/cwbudde/algo-radiometry/radiometry/spectrum"
)

// tabulationDelta is the bin width in nm used when tabulating the
// analytic observer curves before re-binning onto a render layout.
const tabulationDelta = 1.0

// lobe evaluates a piecewise Gaussian with separate left and right
// widths, the building block of the Wyman et al. observer fits.
func lobe(wavelength, centre, sigmaLo, sigmaHi float64) float64 {
	sigma := sigmaLo
	if wavelength >= centre {
		sigma = sigmaHi
	}

	t := (wavelength - centre) / sigma

	return math.Exp(-0.5 * t * t)
}

// CIEX returns the CIE 1931 2° x-bar observer response at the given
// wavelength in nm.
func CIEX(wavelength float64) float64 {
	return 1.056*lobe(wavelength, 599.8, 37.9, 31.0) +
		0.362*lobe(wavelength, 442.0, 16.0, 26.7) -
		0.065*lobe(wavelength, 501.1, 20.4, 26.2)
}

// CIEY returns the CIE 1931 2° y-bar observer response at the given
// wavelength in nm.
func CIEY(wavelength float64) float64 {
	return 0.821*lobe(wavelength, 568.8, 46.9, 40.5) +
		0.286*lobe(wavelength, 530.9, 16.3, 31.1)
}

// CIEZ returns the CIE 1931 2° z-bar observer response at the given
// wavelength in nm.
func CIEZ(wavelength float64) float64 {
	return 1.217*lobe(wavelength, 437.0, 11.8, 36.0) +
		0.681*lobe(wavelength, 459.0, 26.0, 13.8)
}

// XYZResponse holds the three observer curves re-binned onto a fixed
// spectral layout, ready for repeated per-ray tristimulus conversion.
// A response is read-only after construction and may be shared across
// rendering workers.
type XYZResponse struct {
	minWavelength float64
	maxWavelength float64
	bins          int
	delta         float64

	x []float64
	y []float64
	z []float64
}

// ResampleXYZ tabulates the observer curves at high resolution over
// [minWavelength, maxWavelength] and re-bins them onto the given
// layout with flux conservation.
func ResampleXYZ(minWavelength, maxWavelength float64, bins int) (*XYZResponse, error) {
	fine, err := tabulate(minWavelength, maxWavelength)
	if err != nil {
		return nil, err
	}

	r := &XYZResponse{
		minWavelength: minWavelength,
		maxWavelength: maxWavelength,
		bins:          bins,
		delta:         (maxWavelength - minWavelength) / float64(bins),
	}

	curves := []func(float64) float64{CIEX, CIEY, CIEZ}
	out := make([][]float64, len(curves))

	for i, curve := range curves {
		samples := fine.Samples()
		for j, w := range fine.Wavelengths() {
			samples[j] = curve(w)
		}

		out[i], err = fine.Resample(minWavelength, maxWavelength, bins)
		if err != nil {
			return nil, err
		}
	}

	r.x, r.y, r.z = out[0], out[1], out[2]

	return r, nil
}

// tabulate returns a zeroed fine-grained spectrum covering the range.
func tabulate(minWavelength, maxWavelength float64) (*spectrum.Spectrum, error) {
	span := maxWavelength - minWavelength
	fineBins := int(math.Ceil(span / tabulationDelta))
	if fineBins < 1 {
		fineBins = 1
	}

	return spectrum.New(minWavelength, maxWavelength, fineBins)
}

// SpectrumToXYZ integrates a sampled spectrum against the re-binned
// observer curves, returning the CIE XYZ tristimulus values. The
// spectrum must share the response's spectral layout.
func (r *XYZResponse) SpectrumToXYZ(s *spectrum.Spectrum) (x, y, z float64, err error) {
	if !s.IsCompatible(r.minWavelength, r.maxWavelength, r.bins) {
		return 0, 0, 0, fmt.Errorf("spectrum layout incompatible with XYZ response: [%g, %g] bins=%d",
			s.MinWavelength(), s.MaxWavelength(), s.Bins())
	}
	if len(s.Samples()) != r.bins {
		return 0, 0, 0, fmt.Errorf("spectrum sample buffer length mismatch: %d != %d bins", len(s.Samples()), r.bins)
	}

	x = r.integrateProduct(s.Samples(), r.x)
	y = r.integrateProduct(s.Samples(), r.y)
	z = r.integrateProduct(s.Samples(), r.z)

	return x, y, z, nil
}

// integrateProduct integrates sample*response over the layout. Kept
// as a plain loop so a shared response stays read-only under
// concurrent conversion.
func (r *XYZResponse) integrateProduct(samples, response []float64) float64 {
	var sum float64
	for i, v := range samples {
		sum += v * response[i]
	}

	return sum * r.delta
}

// Bins returns the bin count of the response layout.
func (r *XYZResponse) Bins() int { return r.bins }

// X returns the re-binned x-bar curve.
func (r *XYZResponse) X() []float64 { return r.x }

// Y returns the re-binned y-bar curve.
func (r *XYZResponse) Y() []float64 { return r.y }

// Z returns the re-binned z-bar curve.
func (r *XYZResponse) Z() []float64 { return r.z }

// XYZToSRGB converts CIE XYZ tristimulus values to gamma-encoded sRGB
// components clamped to [0, 1].
func XYZToSRGB(x, y, z float64) (red, green, blue float64) {
	red = 3.2404542*x - 1.5371385*y - 0.4985314*z
	green = -0.9692660*x + 1.8760108*y + 0.0415560*z
	blue = 0.0556434*x - 0.2040259*y + 1.0572252*z

	red = encodeSRGB(red)
	green = encodeSRGB(green)
	blue = encodeSRGB(blue)

	return red, green, blue
}

// encodeSRGB applies the sRGB transfer function and clamps to [0, 1].
func encodeSRGB(c float64) float64 {
	c = core.Clamp(c, 0, 1)
	if c <= 0.0031308 {
		return 12.92 * c
	}

	return 1.055*math.Pow(c, 1/2.4) - 0.055
}
