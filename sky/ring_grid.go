package sky

import (
	"fmt"
	"math"
)

// RingGrid is an equal-area pixelization made of rings of constant
// colatitude. The sphere is cut into rings of equal cos(theta) extent, each
// ring into cols equal azimuth cells, giving rings*cols pixels of solid
// angle 4 pi / (rings*cols) each. Pixels are ordered ring-major from the
// north pole, west to east within a ring.
type RingGrid struct {
	rings, cols int
	area        float64
}

// NewRingGrid creates a RingGrid with the given number of rings and columns
// per ring.
func NewRingGrid(rings, cols int) (*RingGrid, error) {
	if rings <= 0 || cols <= 0 {
		return nil, fmt.Errorf(
			"sky: ring grid needs positive dimensions, got %d x %d",
			rings, cols,
		)
	}
	return &RingGrid{
		rings: rings,
		cols:  cols,
		area:  4 * math.Pi / float64(rings*cols),
	}, nil
}

func (g *RingGrid) Pixels() int      { return g.rings * g.cols }
func (g *RingGrid) PixArea() float64 { return g.area }

// AngToPix maps angles to a pixel index. Out-of-convention angles are folded
// back onto the sphere rather than rejected, since they still name a valid
// direction.
func (g *RingGrid) AngToPix(theta, phi float64) int {
	// Equal cos(theta) bands are equal area.
	ring := int((1 - math.Cos(theta)) / 2 * float64(g.rings))
	if ring < 0 {
		ring = 0
	} else if ring >= g.rings {
		ring = g.rings - 1
	}

	phi = math.Mod(phi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	col := int(phi / (2 * math.Pi) * float64(g.cols))
	if col >= g.cols {
		col = g.cols - 1
	}

	return ring*g.cols + col
}

func (g *RingGrid) VecToPix(x, y, z float64) int {
	theta, phi := g.VecToAng(x, y, z)
	return g.AngToPix(theta, phi)
}

// VecToAng returns the colatitude and azimuth of a direction vector. The
// vector need not be normalized. The zero vector maps to the north pole.
func (g *RingGrid) VecToAng(x, y, z float64) (theta, phi float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0, 0
	}

	theta = math.Acos(z / r)
	phi = math.Atan2(y, x)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return theta, phi
}
