package spectral

import (
	"math"
)

// Fixsen et al. (1998) fit to the far-infrared background: an emissivity
// power law times a blackbody, anchored at 100 um.
const (
	fixsenIndex = 0.64
	fixsenAmp   = 1.3e-5
	fixsenRefWl = 100e-6 // m
)

// FixsenTemperature is the default dust temperature of the modified
// blackbody model.
var FixsenTemperature = Quantity{18.5, Kelvin}

// ModifiedBlackbody evaluates the Fixsen modified blackbody at x (frequency
// or wavelength) with the default 18.5 K temperature. See
// ModifiedBlackbodyAt.
func ModifiedBlackbody(x Quantity, out Unit) (Quantity, error) {
	return ModifiedBlackbodyAt(x, FixsenTemperature, out)
}

// ModifiedBlackbodyAt evaluates amp * (nu/nu0)^0.64 * B_nu(T) with
// nu0 = c / 100 um, the empirical far-infrared background shape. x may be a
// frequency or a wavelength; the unit-conversion discipline matches
// BlackbodyRadiance.
func ModifiedBlackbodyAt(x, temp Quantity, out Unit) (Quantity, error) {
	b, err := BlackbodyRadiance(x, temp, out)
	if err != nil {
		return Quantity{}, err
	}

	var nu float64
	switch x.Unit.Dim {
	case Frequency:
		nu = x.SI()
	case Wavelength:
		nu = lightSpeed / x.SI()
	}
	nu0 := lightSpeed / fixsenRefWl

	b.Value *= fixsenAmp * math.Pow(nu/nu0, fixsenIndex)
	return b, nil
}
