package frame

import "fmt"

// Frame2D accumulates per-channel running statistics over a
// two-dimensional detector array. Buffers are flat, row-major over
// (x, y, channel).
type Frame2D struct {
	width    int
	height   int
	channels int
	mean     []float64
	variance []float64
	samples  []int64
}

// NewFrame2D returns a zeroed Frame2D with the given extents.
func NewFrame2D(width, height, channels int) (*Frame2D, error) {
	if width < 1 {
		return nil, fmt.Errorf("frame width must be >= 1: %d", width)
	}
	if height < 1 {
		return nil, fmt.Errorf("frame height must be >= 1: %d", height)
	}
	if channels < 1 {
		return nil, fmt.Errorf("frame channel count must be >= 1: %d", channels)
	}

	n := width * height * channels

	return &Frame2D{
		width:    width,
		height:   height,
		channels: channels,
		mean:     make([]float64, n),
		variance: make([]float64, n),
		samples:  make([]int64, n),
	}, nil
}

// Width returns the horizontal pixel count.
func (f *Frame2D) Width() int { return f.width }

// Height returns the vertical pixel count.
func (f *Frame2D) Height() int { return f.height }

// Channels returns the channel count.
func (f *Frame2D) Channels() int { return f.channels }

func (f *Frame2D) index(x, y, channel int) (int, error) {
	if x < 0 || x >= f.width {
		return 0, fmt.Errorf("frame x index out of range: %d (width=%d)", x, f.width)
	}
	if y < 0 || y >= f.height {
		return 0, fmt.Errorf("frame y index out of range: %d (height=%d)", y, f.height)
	}
	if channel < 0 || channel >= f.channels {
		return 0, fmt.Errorf("frame channel out of range: %d (channels=%d)", channel, f.channels)
	}

	return (x*f.height+y)*f.channels + channel, nil
}

// AddSample folds one observation into the (x, y, channel) slot.
func (f *Frame2D) AddSample(x, y, channel int, sample float64) error {
	i, err := f.index(x, y, channel)
	if err != nil {
		return err
	}

	addSample(&f.mean[i], &f.variance[i], &f.samples[i], sample)

	return nil
}

// CombineSamples merges a batch summary (mean, M2 variance
// accumulator, count) into the (x, y, channel) slot.
func (f *Frame2D) CombineSamples(x, y, channel int, mean, variance float64, count int64) error {
	i, err := f.index(x, y, channel)
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("frame batch sample count must be >= 0: %d", count)
	}

	combineSamples(&f.mean[i], &f.variance[i], &f.samples[i], mean, variance, count)

	return nil
}

// MeanAt returns the accumulated mean of the (x, y, channel) slot.
func (f *Frame2D) MeanAt(x, y, channel int) (float64, error) {
	i, err := f.index(x, y, channel)
	if err != nil {
		return 0, err
	}

	return f.mean[i], nil
}

// VarianceAt returns the accumulated M2 of the (x, y, channel) slot.
func (f *Frame2D) VarianceAt(x, y, channel int) (float64, error) {
	i, err := f.index(x, y, channel)
	if err != nil {
		return 0, err
	}

	return f.variance[i], nil
}

// SamplesAt returns the sample count of the (x, y, channel) slot.
func (f *Frame2D) SamplesAt(x, y, channel int) (int64, error) {
	i, err := f.index(x, y, channel)
	if err != nil {
		return 0, err
	}

	return f.samples[i], nil
}

// ErrorAt returns the standard error of the accumulated mean of the
// (x, y, channel) slot; 0 when fewer than two samples have been
// accumulated.
func (f *Frame2D) ErrorAt(x, y, channel int) (float64, error) {
	i, err := f.index(x, y, channel)
	if err != nil {
		return 0, err
	}

	return slotError(f.variance[i], f.samples[i]), nil
}

// Errors returns the standard error of every slot, shaped like the
// mean buffer.
func (f *Frame2D) Errors() []float64 {
	out := make([]float64, len(f.mean))
	for i := range out {
		out[i] = slotError(f.variance[i], f.samples[i])
	}

	return out
}

// MeanBuffer returns the underlying flat mean buffer.
func (f *Frame2D) MeanBuffer() []float64 { return f.mean }

// VarianceBuffer returns the underlying flat M2 buffer.
func (f *Frame2D) VarianceBuffer() []float64 { return f.variance }

// SampleCounts returns the underlying flat sample-count buffer.
func (f *Frame2D) SampleCounts() []int64 { return f.samples }

// Clear zeroes all slot statistics, preserving the extents.
func (f *Frame2D) Clear() {
	for i := range f.mean {
		f.mean[i] = 0
		f.variance[i] = 0
		f.samples[i] = 0
	}
}

// Copy returns an independent deep copy of the frame.
func (f *Frame2D) Copy() *Frame2D {
	c, _ := NewFrame2D(f.width, f.height, f.channels)
	copy(c.mean, f.mean)
	copy(c.variance, f.variance)
	copy(c.samples, f.samples)

	return c
}
