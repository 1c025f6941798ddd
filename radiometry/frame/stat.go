package frame

import "math"

// Slot-level statistics shared by Pixel, Frame1D and Frame2D. The
// variance buffers hold the accumulated sum of squared deviations
// from the mean (Welford's M2), not a finished variance estimate;
// ErrorAt applies the Bessel correction when reporting.

// addSample folds one observation into a slot.
func addSample(mean, m2 *float64, n *int64, sample float64) {
	*n++
	delta := sample - *mean
	*mean += delta / float64(*n)
	*m2 += delta * (sample - *mean)
}

// combineSamples merges a batch summary (bMean, bM2, bN) into a slot
// using the parallel combination formula (Chan et al.). Exact for an
// empty receiver (adopts the batch) and for an empty batch (no-op).
func combineSamples(mean, m2 *float64, n *int64, bMean, bM2 float64, bN int64) {
	if bN == 0 {
		return
	}
	if *n == 0 {
		*mean = bMean
		*m2 = bM2
		*n = bN
		return
	}

	na := float64(*n)
	nb := float64(bN)
	nt := na + nb
	delta := bMean - *mean

	*mean += delta * nb / nt
	*m2 += bM2 + delta*delta*na*nb/nt
	*n += bN
}

// slotError returns the standard error of the accumulated mean:
// sqrt(s²/n) with the Bessel-corrected sample variance s² = M2/(n-1).
// Returns 0 when fewer than two samples have been accumulated.
func slotError(m2 float64, n int64) float64 {
	if n <= 1 {
		return 0
	}

	variance := m2 / float64(n-1)

	return math.Sqrt(variance / float64(n))
}
