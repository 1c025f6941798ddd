// Package pipeline reduces traced spectra into accumulated RGB
// frames.
//
// An XYZPixelProcessor converts each traced spectrum to CIE XYZ and
// feeds a per-worker pixel accumulator; after a render pass the
// packed (mean, M2) summaries are merged into a persistent Frame2D
// through RGBPipeline2D, which also maintains the gamma-encoded sRGB
// view of the accumulated means. Display and file output are left to
// downstream consumers of SRGB().
package pipeline
