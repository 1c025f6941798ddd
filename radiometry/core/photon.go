package core

import "fmt"

// PlanckLightSpeed is the product of the Planck constant and the speed
// of light, h*c, in joule metres. Dividing by a wavelength in metres
// yields the energy of a single photon.
const PlanckLightSpeed = 1.9864456832693028e-25

// PhotonEnergy returns the energy in joules of a photon with the given
// wavelength in nanometres.
func PhotonEnergy(wavelength float64) (float64, error) {
	if wavelength <= 0 {
		return 0, fmt.Errorf("photon energy wavelength must be > 0 nm: %g", wavelength)
	}

	return PlanckLightSpeed / (wavelength * 1e-9), nil
}
