package frame

import "fmt"

// Frame1D accumulates per-channel running statistics over a
// one-dimensional detector array. Buffers are flat, row-major over
// (pixel, channel).
type Frame1D struct {
	pixels   int
	channels int
	mean     []float64
	variance []float64
	samples  []int64
}

// NewFrame1D returns a zeroed Frame1D with the given extents.
func NewFrame1D(pixels, channels int) (*Frame1D, error) {
	if pixels < 1 {
		return nil, fmt.Errorf("frame pixel count must be >= 1: %d", pixels)
	}
	if channels < 1 {
		return nil, fmt.Errorf("frame channel count must be >= 1: %d", channels)
	}

	n := pixels * channels

	return &Frame1D{
		pixels:   pixels,
		channels: channels,
		mean:     make([]float64, n),
		variance: make([]float64, n),
		samples:  make([]int64, n),
	}, nil
}

// Pixels returns the pixel count.
func (f *Frame1D) Pixels() int { return f.pixels }

// Channels returns the channel count.
func (f *Frame1D) Channels() int { return f.channels }

func (f *Frame1D) index(pixel, channel int) (int, error) {
	if pixel < 0 || pixel >= f.pixels {
		return 0, fmt.Errorf("frame pixel index out of range: %d (pixels=%d)", pixel, f.pixels)
	}
	if channel < 0 || channel >= f.channels {
		return 0, fmt.Errorf("frame channel out of range: %d (channels=%d)", channel, f.channels)
	}

	return pixel*f.channels + channel, nil
}

// AddSample folds one observation into the (pixel, channel) slot.
func (f *Frame1D) AddSample(pixel, channel int, sample float64) error {
	i, err := f.index(pixel, channel)
	if err != nil {
		return err
	}

	addSample(&f.mean[i], &f.variance[i], &f.samples[i], sample)

	return nil
}

// CombineSamples merges a batch summary (mean, M2 variance
// accumulator, count) into the (pixel, channel) slot.
func (f *Frame1D) CombineSamples(pixel, channel int, mean, variance float64, count int64) error {
	i, err := f.index(pixel, channel)
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("frame batch sample count must be >= 0: %d", count)
	}

	combineSamples(&f.mean[i], &f.variance[i], &f.samples[i], mean, variance, count)

	return nil
}

// MeanAt returns the accumulated mean of the (pixel, channel) slot.
func (f *Frame1D) MeanAt(pixel, channel int) (float64, error) {
	i, err := f.index(pixel, channel)
	if err != nil {
		return 0, err
	}

	return f.mean[i], nil
}

// VarianceAt returns the accumulated M2 of the (pixel, channel) slot.
func (f *Frame1D) VarianceAt(pixel, channel int) (float64, error) {
	i, err := f.index(pixel, channel)
	if err != nil {
		return 0, err
	}

	return f.variance[i], nil
}

// SamplesAt returns the sample count of the (pixel, channel) slot.
func (f *Frame1D) SamplesAt(pixel, channel int) (int64, error) {
	i, err := f.index(pixel, channel)
	if err != nil {
		return 0, err
	}

	return f.samples[i], nil
}

// ErrorAt returns the standard error of the accumulated mean of the
// (pixel, channel) slot; 0 when fewer than two samples have been
// accumulated.
func (f *Frame1D) ErrorAt(pixel, channel int) (float64, error) {
	i, err := f.index(pixel, channel)
	if err != nil {
		return 0, err
	}

	return slotError(f.variance[i], f.samples[i]), nil
}

// Errors returns the standard error of every slot, shaped like the
// mean buffer.
func (f *Frame1D) Errors() []float64 {
	out := make([]float64, len(f.mean))
	for i := range out {
		out[i] = slotError(f.variance[i], f.samples[i])
	}

	return out
}

// MeanBuffer returns the underlying flat mean buffer.
func (f *Frame1D) MeanBuffer() []float64 { return f.mean }

// VarianceBuffer returns the underlying flat M2 buffer.
func (f *Frame1D) VarianceBuffer() []float64 { return f.variance }

// SampleCounts returns the underlying flat sample-count buffer.
func (f *Frame1D) SampleCounts() []int64 { return f.samples }

// Clear zeroes all slot statistics, preserving the extents.
func (f *Frame1D) Clear() {
	for i := range f.mean {
		f.mean[i] = 0
		f.variance[i] = 0
		f.samples[i] = 0
	}
}

// Copy returns an independent deep copy of the frame.
func (f *Frame1D) Copy() *Frame1D {
	c, _ := NewFrame1D(f.pixels, f.channels)
	copy(c.mean, f.mean)
	copy(c.variance, f.variance)
	copy(c.samples, f.samples)

	return c
}
