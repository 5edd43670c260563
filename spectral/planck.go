package spectral

import (
	"fmt"
	"math"
)

// CODATA 2018 values, SI.
const (
	planckH    = 6.62607015e-34 // J Hz^-1
	lightSpeed = 2.99792458e8   // m s^-1
	boltzmannK = 1.380649e-23   // J K^-1
)

// BlackbodyRadiance evaluates the Planck law at x, which may be a frequency
// or a wavelength; each dimension dispatches to its own closed form. The
// wavelength form is converted to per-frequency intensity (a factor of
// lambda^2/c), so the two forms agree at the same physical point. The result
// is expressed in out, which must be an intensity unit.
func BlackbodyRadiance(x, temp Quantity, out Unit) (Quantity, error) {
	if out.Dim != Intensity {
		return Quantity{}, fmt.Errorf(
			"%w: output unit %s is %s, not intensity",
			ErrUnitMismatch, out.Name, out.Dim,
		)
	}
	tK, err := temp.Convert(Kelvin)
	if err != nil {
		return Quantity{}, err
	}

	var b float64 // W m^-2 Hz^-1 sr^-1
	switch x.Unit.Dim {
	case Frequency:
		b = planckNu(x.SI(), tK.Value)
	case Wavelength:
		lam := x.SI()
		b = planckLambda(lam, tK.Value) * lam * lam / lightSpeed
	default:
		return Quantity{}, fmt.Errorf(
			"%w: %s is %s, not a frequency or wavelength",
			ErrUnitMismatch, x.Unit.Name, x.Unit.Dim,
		)
	}

	return Quantity{b / out.Scale, out}, nil
}

// planckNu is B_nu(T) in W m^-2 Hz^-1 sr^-1.
func planckNu(nu, t float64) float64 {
	return 2 * planckH * nu * nu * nu /
		(lightSpeed * lightSpeed) / math.Expm1(planckH*nu/(boltzmannK*t))
}

// planckLambda is B_lambda(T) in W m^-3 sr^-1.
func planckLambda(lam, t float64) float64 {
	lam5 := lam * lam * lam * lam * lam
	return 2 * planckH * lightSpeed * lightSpeed / lam5 /
		math.Expm1(planckH*lightSpeed/(lam*boltzmannK*t))
}
