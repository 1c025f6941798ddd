package pipeline_test

import (
	"fmt"

	"github.com/cwbudde/algo-radiometry/radiometry/colour"
	"github.com/cwbudde/algo-radiometry/radiometry/pipeline"
	"github.com/cwbudde/algo-radiometry/radiometry/spectrum"
)

func ExampleRGBPipeline2D() {
	response, _ := colour.ResampleXYZ(375, 740, 16)
	pipe, _ := pipeline.NewRGBPipeline2D(1, 1)

	// One worker traces eight spectra for the single pixel.
	proc := pipeline.NewXYZPixelProcessor(response)
	s, _ := spectrum.New(375, 740, 16)
	for i := range s.Samples() {
		s.Samples()[i] = 1.0
	}
	for i := 0; i < 8; i++ {
		_ = proc.AddSample(s)
	}

	_ = pipe.StartPass(proc.Samples())
	mean, variance := proc.PackResults()
	_ = pipe.Update(0, 0, mean, variance)
	_ = pipe.FinalisePass()

	n, _ := pipe.XYZFrame().SamplesAt(0, 0, 0)
	fmt.Printf("samples=%d rgb values=%d\n", n, len(pipe.SRGB()))

	// Output:
	// samples=8 rgb values=3
}
