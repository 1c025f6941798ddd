package pipeline

import (
	"fmt"

	"github.com/cwbudde/algo-radiometry/radiometry/colour"
	"github.com/cwbudde/algo-radiometry/radiometry/frame"
	"github.com/cwbudde/algo-radiometry/radiometry/spectrum"
)

// XYZPixelProcessor reduces traced spectra for a single pixel into a
// running CIE XYZ estimate. Each rendering worker owns its own
// processor; the shared XYZResponse is read-only.
type XYZPixelProcessor struct {
	response *colour.XYZResponse
	xyz      *frame.Pixel
}

// NewXYZPixelProcessor returns a processor converting spectra through
// the given observer response.
func NewXYZPixelProcessor(response *colour.XYZResponse) *XYZPixelProcessor {
	xyz, _ := frame.NewPixel(3)

	return &XYZPixelProcessor{
		response: response,
		xyz:      xyz,
	}
}

// AddSample converts one traced spectrum to XYZ and folds it into the
// processor's per-channel statistics.
func (p *XYZPixelProcessor) AddSample(s *spectrum.Spectrum) error {
	x, y, z, err := p.response.SpectrumToXYZ(s)
	if err != nil {
		return err
	}

	// Channel indices are fixed; errors are impossible on a 3-channel pixel.
	_ = p.xyz.AddSample(0, x)
	_ = p.xyz.AddSample(1, y)
	_ = p.xyz.AddSample(2, z)

	return nil
}

// PackResults returns the per-channel batch summary accumulated so
// far: the mean and the M2 sum of squared deviations, in the form
// Frame2D.CombineSamples expects.
func (p *XYZPixelProcessor) PackResults() (mean, variance [3]float64) {
	m := p.xyz.MeanBuffer()
	v := p.xyz.VarianceBuffer()

	return [3]float64{m[0], m[1], m[2]}, [3]float64{v[0], v[1], v[2]}
}

// Samples returns the number of spectra folded in so far.
func (p *XYZPixelProcessor) Samples() int64 {
	return p.xyz.SampleCounts()[0]
}

// Reset clears the processor for the next pixel.
func (p *XYZPixelProcessor) Reset() {
	p.xyz.Clear()
}

// RGBPipeline2D accumulates per-pass pixel statistics into a
// persistent XYZ frame and maintains an sRGB view of the result.
//
// A pass follows the worker protocol: StartPass, one Update per pixel
// per spectral slice with that slice's packed results, then
// FinalisePass to merge the pass into the frame.
type RGBPipeline2D struct {
	// Sensitivity scales accumulated XYZ means before sRGB encoding.
	Sensitivity float64

	width  int
	height int

	xyzFrame *frame.Frame2D

	workingMean     []float64
	workingVariance []float64
	passSamples     int64
	inPass          bool

	rgb []float64
}

// NewRGBPipeline2D returns a pipeline for a width x height detector.
func NewRGBPipeline2D(width, height int) (*RGBPipeline2D, error) {
	xyzFrame, err := frame.NewFrame2D(width, height, 3)
	if err != nil {
		return nil, err
	}

	n := width * height * 3

	return &RGBPipeline2D{
		Sensitivity:     1.0,
		width:           width,
		height:          height,
		xyzFrame:        xyzFrame,
		workingMean:     make([]float64, n),
		workingVariance: make([]float64, n),
		rgb:             make([]float64, n),
	}, nil
}

// Width returns the horizontal pixel count.
func (p *RGBPipeline2D) Width() int { return p.width }

// Height returns the vertical pixel count.
func (p *RGBPipeline2D) Height() int { return p.height }

// XYZFrame returns the persistent accumulated XYZ frame.
func (p *RGBPipeline2D) XYZFrame() *frame.Frame2D { return p.xyzFrame }

// SRGB returns the gamma-encoded sRGB view of the accumulated frame,
// flat row-major over (x, y, channel). Valid after FinalisePass.
func (p *RGBPipeline2D) SRGB() []float64 { return p.rgb }

// StartPass begins a render pass in which every pixel receives the
// given number of spectral samples.
func (p *RGBPipeline2D) StartPass(samplesPerPixel int64) error {
	if samplesPerPixel < 1 {
		return fmt.Errorf("pipeline pass sample count must be >= 1: %d", samplesPerPixel)
	}
	if p.inPass {
		return fmt.Errorf("pipeline pass already in progress")
	}

	for i := range p.workingMean {
		p.workingMean[i] = 0
		p.workingVariance[i] = 0
	}
	p.passSamples = samplesPerPixel
	p.inPass = true

	return nil
}

// Update adds one packed per-pixel result to the pass-local working
// buffers. Results from multiple spectral slices of the same pixel
// accumulate additively, as the slices partition the spectrum.
func (p *RGBPipeline2D) Update(x, y int, mean, variance [3]float64) error {
	if !p.inPass {
		return fmt.Errorf("pipeline update outside a pass")
	}
	if x < 0 || x >= p.width {
		return fmt.Errorf("pipeline x index out of range: %d (width=%d)", x, p.width)
	}
	if y < 0 || y >= p.height {
		return fmt.Errorf("pipeline y index out of range: %d (height=%d)", y, p.height)
	}

	i := (x*p.height + y) * 3
	for c := 0; c < 3; c++ {
		p.workingMean[i+c] += mean[c]
		p.workingVariance[i+c] += variance[c]
	}

	return nil
}

// FinalisePass merges the working pass statistics into the persistent
// XYZ frame and regenerates the sRGB view.
func (p *RGBPipeline2D) FinalisePass() error {
	if !p.inPass {
		return fmt.Errorf("pipeline finalise outside a pass")
	}

	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			i := (x*p.height + y) * 3
			for c := 0; c < 3; c++ {
				if err := p.xyzFrame.CombineSamples(x, y, c, p.workingMean[i+c], p.workingVariance[i+c], p.passSamples); err != nil {
					return err
				}
			}
		}
	}

	p.inPass = false
	p.generateSRGB()

	return nil
}

// generateSRGB refreshes the sRGB view from the accumulated means.
func (p *RGBPipeline2D) generateSRGB() {
	mean := p.xyzFrame.MeanBuffer()

	for i := 0; i < len(mean); i += 3 {
		red, green, blue := colour.XYZToSRGB(
			mean[i]*p.Sensitivity,
			mean[i+1]*p.Sensitivity,
			mean[i+2]*p.Sensitivity,
		)

		p.rgb[i] = red
		p.rgb[i+1] = green
		p.rgb[i+2] = blue
	}
}
