// Package spectrum provides a fixed-bin discretized spectral-function
// container for radiometric sampling.
//
// A Spectrum holds per-bin spectral radiance (W·m⁻²·sr⁻¹·nm⁻¹) over a
// wavelength interval in nanometres. The analysis methods treat the
// stored samples as a piecewise-linear interpolant through the bin
// centers, enabling exact integration and flux-conserving re-binning
// to arbitrary target layouts. In-place arithmetic kernels support
// allocation-free spectral combination in sampling inner loops.
package spectrum
