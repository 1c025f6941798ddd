package frame

import "fmt"

// Pixel accumulates per-channel running statistics for a single
// detector element.
type Pixel struct {
	channels int
	mean     []float64
	variance []float64
	samples  []int64
}

// NewPixel returns a zeroed Pixel with the given channel count.
func NewPixel(channels int) (*Pixel, error) {
	if channels < 1 {
		return nil, fmt.Errorf("pixel channel count must be >= 1: %d", channels)
	}

	return &Pixel{
		channels: channels,
		mean:     make([]float64, channels),
		variance: make([]float64, channels),
		samples:  make([]int64, channels),
	}, nil
}

// Channels returns the channel count.
func (p *Pixel) Channels() int { return p.channels }

func (p *Pixel) checkChannel(channel int) error {
	if channel < 0 || channel >= p.channels {
		return fmt.Errorf("pixel channel out of range: %d (channels=%d)", channel, p.channels)
	}

	return nil
}

// AddSample folds one observation into the given channel.
func (p *Pixel) AddSample(channel int, sample float64) error {
	if err := p.checkChannel(channel); err != nil {
		return err
	}

	addSample(&p.mean[channel], &p.variance[channel], &p.samples[channel], sample)

	return nil
}

// CombineSamples merges a batch summary (mean, M2 variance
// accumulator, count) into the given channel.
func (p *Pixel) CombineSamples(channel int, mean, variance float64, count int64) error {
	if err := p.checkChannel(channel); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("pixel batch sample count must be >= 0: %d", count)
	}

	combineSamples(&p.mean[channel], &p.variance[channel], &p.samples[channel], mean, variance, count)

	return nil
}

// MeanAt returns the accumulated mean of the given channel.
func (p *Pixel) MeanAt(channel int) (float64, error) {
	if err := p.checkChannel(channel); err != nil {
		return 0, err
	}

	return p.mean[channel], nil
}

// VarianceAt returns the accumulated sum of squared deviations (M2)
// of the given channel.
func (p *Pixel) VarianceAt(channel int) (float64, error) {
	if err := p.checkChannel(channel); err != nil {
		return 0, err
	}

	return p.variance[channel], nil
}

// SamplesAt returns the accumulated sample count of the given channel.
func (p *Pixel) SamplesAt(channel int) (int64, error) {
	if err := p.checkChannel(channel); err != nil {
		return 0, err
	}

	return p.samples[channel], nil
}

// ErrorAt returns the standard error of the accumulated mean of the
// given channel; 0 when fewer than two samples have been accumulated.
func (p *Pixel) ErrorAt(channel int) (float64, error) {
	if err := p.checkChannel(channel); err != nil {
		return 0, err
	}

	return slotError(p.variance[channel], p.samples[channel]), nil
}

// Errors returns the standard error of every channel.
func (p *Pixel) Errors() []float64 {
	out := make([]float64, p.channels)
	for c := range out {
		out[c] = slotError(p.variance[c], p.samples[c])
	}

	return out
}

// MeanBuffer returns the underlying per-channel mean buffer.
func (p *Pixel) MeanBuffer() []float64 { return p.mean }

// VarianceBuffer returns the underlying per-channel M2 buffer.
func (p *Pixel) VarianceBuffer() []float64 { return p.variance }

// SampleCounts returns the underlying per-channel sample counts.
func (p *Pixel) SampleCounts() []int64 { return p.samples }

// Clear zeroes all channel statistics, preserving the channel count.
func (p *Pixel) Clear() {
	for c := range p.mean {
		p.mean[c] = 0
		p.variance[c] = 0
		p.samples[c] = 0
	}
}

// Copy returns an independent deep copy of the Pixel.
func (p *Pixel) Copy() *Pixel {
	c, _ := NewPixel(p.channels)
	copy(c.mean, p.mean)
	copy(c.variance, p.variance)
	copy(c.samples, p.samples)

	return c
}
