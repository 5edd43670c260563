/*package cosmo exposes the distance to redshift conversion consumed by the
halo geometry pass. The cosmology itself is built elsewhere; this package
only wraps a precomputed monotone table and enforces its domain.
*/
package cosmo

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// ErrOutOfRange is wrapped by every error returned for a query outside an
// interpolant's valid domain. Callers must widen the table rather than rely
// on clamping; this package never clamps.
var ErrOutOfRange = errors.New("out of range")

// DistanceToRedshift converts a comoving distance into a cosmological
// redshift. Implementations must be monotone over their domain and safe for
// concurrent use.
type DistanceToRedshift interface {
	Redshift(dist float64) (float64, error)
	// Domain returns the inclusive distance range over which Redshift is
	// valid.
	Domain() (low, high float64)
}

// Table is a DistanceToRedshift backed by a precomputed table of distances
// and redshifts, interpolated piecewise-linearly between rows.
type Table struct {
	pl        interp.PiecewiseLinear
	low, high float64
}

// NewTable builds a Table from parallel distance and redshift columns. The
// distances must be strictly increasing and the redshifts non-decreasing,
// so that the resulting interpolant is monotone.
func NewTable(dists, zs []float64) (*Table, error) {
	if len(dists) != len(zs) {
		return nil, fmt.Errorf(
			"cosmo: table has %d distances but %d redshifts",
			len(dists), len(zs),
		)
	}
	if len(dists) < 2 {
		return nil, fmt.Errorf(
			"cosmo: table has %d rows, needs at least 2", len(dists),
		)
	}
	for i := 0; i < len(dists)-1; i++ {
		if dists[i+1] <= dists[i] {
			return nil, fmt.Errorf(
				"cosmo: distances not strictly increasing at row %d", i+1,
			)
		}
		if zs[i+1] < zs[i] {
			return nil, fmt.Errorf(
				"cosmo: redshifts decrease at row %d", i+1,
			)
		}
	}

	t := &Table{low: dists[0], high: dists[len(dists)-1]}
	if err := t.pl.Fit(dists, zs); err != nil {
		return nil, err
	}
	return t, nil
}

// Redshift evaluates the interpolant at the given comoving distance.
func (t *Table) Redshift(dist float64) (float64, error) {
	if dist < t.low || dist > t.high {
		return 0, fmt.Errorf(
			"%w: distance %g outside table domain [%g, %g]",
			ErrOutOfRange, dist, t.low, t.high,
		)
	}
	return t.pl.Predict(dist), nil
}

// Domain returns the table's distance range.
func (t *Table) Domain() (low, high float64) { return t.low, t.high }
