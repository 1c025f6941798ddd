// Package frame provides per-channel running mean/variance
// accumulators for Monte-Carlo radiance sampling.
//
// Pixel accumulates statistics for a single detector element; Frame1D
// and Frame2D vectorize the same contract over one- and
// two-dimensional detector arrays. Each accumulator slot keeps a
// running mean, the accumulated sum of squared deviations (Welford
// M2) and a sample count. Slots are updated one observation at a time
// with AddSample, or merged with precomputed batch summaries via
// CombineSamples using the parallel variance-combination formula of
// Chan et al., which makes per-worker accumulation followed by a
// final merge an exact, order-independent reduction.
//
// Accumulators perform no internal locking: either serialize
// AddSample calls on a shared instance, or give each worker a private
// accumulator and merge afterwards.
package frame
