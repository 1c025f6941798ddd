// Package colour converts accumulated spectra to CIE XYZ tristimulus
// values and sRGB.
//
// The CIE 1931 2° standard observer is evaluated from the multi-lobe
// piecewise-Gaussian fits of Wyman, Sloan and Shirley (2013), "Simple
// Analytic Approximations to the CIE XYZ Color Matching Functions".
// The observer curves are resampled onto a render's spectral layout
// with the same flux-conserving re-binning the spectrum container
// uses, so tristimulus integration stays consistent with the sampled
// radiance regardless of bin count.
package colour
