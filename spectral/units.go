/*package spectral contains the emission models that convert halo properties
into per-band flux. Every physical value is a Quantity tagged with an
explicit unit; arithmetic that would mix dimensions fails with
ErrUnitMismatch instead of silently producing garbage.
*/
package spectral

import (
	"errors"
	"fmt"
)

// ErrUnitMismatch is wrapped by every error returned when a quantity is
// combined with or converted to an incompatible physical dimension.
var ErrUnitMismatch = errors.New("unit mismatch")

// Dimension identifies the physical dimension of a Unit.
type Dimension int

const (
	Frequency Dimension = iota
	Wavelength
	Temperature
	// Intensity is spectral flux density per solid angle.
	Intensity
)

func (d Dimension) String() string {
	switch d {
	case Frequency:
		return "frequency"
	case Wavelength:
		return "wavelength"
	case Temperature:
		return "temperature"
	case Intensity:
		return "intensity"
	}
	return "unknown"
}

// Unit is a named scale of a single physical dimension. Scale converts a
// value in this unit to the dimension's SI base (Hz, m, K, or
// W m^-2 Hz^-1 sr^-1).
type Unit struct {
	Name  string
	Dim   Dimension
	Scale float64
}

var (
	Hertz     = Unit{"Hz", Frequency, 1}
	Gigahertz = Unit{"GHz", Frequency, 1e9}

	Meter  = Unit{"m", Wavelength, 1}
	Micron = Unit{"um", Wavelength, 1e-6}

	Kelvin = Unit{"K", Temperature, 1}

	WattPerM2HzSr = Unit{"W m^-2 Hz^-1 sr^-1", Intensity, 1}
	JyPerSr       = Unit{"Jy sr^-1", Intensity, 1e-26}
	MJyPerSr      = Unit{"MJy sr^-1", Intensity, 1e-20}
)

// Quantity is a value tagged with an explicit unit. The zero Quantity is a
// dimensionless zero and is not valid input to the models in this package.
type Quantity struct {
	Value float64
	Unit  Unit
}

// SI returns the quantity's value in its dimension's SI base unit.
func (q Quantity) SI() float64 { return q.Value * q.Unit.Scale }

// Convert re-expresses the quantity in the given unit. Converting across
// dimensions fails with ErrUnitMismatch.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	if q.Unit.Dim != to.Dim {
		return Quantity{}, fmt.Errorf(
			"%w: cannot convert %s (%s) to %s (%s)",
			ErrUnitMismatch, q.Unit.Name, q.Unit.Dim, to.Name, to.Dim,
		)
	}
	return Quantity{q.SI() / to.Scale, to}, nil
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Value, q.Unit.Name)
}
