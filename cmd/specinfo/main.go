// Command specinfo prints the bin layout of a spectral range together
// with per-bin photon energies and the CIE 1931 observer responses
// re-binned onto that layout.
//
// Usage:
//
//	specinfo [flags]
//
// Examples:
//
//	specinfo
//	specinfo -min 375 -max 740 -bins 21
//	specinfo -min 400 -max 720 -bins 4
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-radiometry/radiometry/colour"
	"github.com/cwbudde/algo-radiometry/radiometry/core"
	"github.com/cwbudde/algo-radiometry/radiometry/spectrum"
)

func main() {
	minWavelength := flag.Float64("min", 375, "lower wavelength bound in nm")
	maxWavelength := flag.Float64("max", 740, "upper wavelength bound in nm")
	bins := flag.Int("bins", 21, "number of spectral bins")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the bin layout, photon energies and CIE observer\n")
		fmt.Fprintf(os.Stderr, "responses for a spectral range.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	s, err := spectrum.New(*minWavelength, *maxWavelength, *bins)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	response, err := colour.ResampleXYZ(*minWavelength, *maxWavelength, *bins)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("range: [%g, %g] nm, %d bins, delta %.4f nm\n\n",
		s.MinWavelength(), s.MaxWavelength(), s.Bins(), s.DeltaWavelength())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tCenter [nm]\tPhoton Energy [J]\tCIE x\tCIE y\tCIE z\n")
	fmt.Fprintf(tw, "---\t-----------\t-----------------\t-----\t-----\t-----\n")

	for i, w := range s.Wavelengths() {
		energy, err := core.PhotonEnergy(w)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(tw, "%d\t%.2f\t%.6e\t%.4f\t%.4f\t%.4f\n",
			i, w, energy, response.X()[i], response.Y()[i], response.Z()[i])
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
