/*package sky defines the spherical pixelization contract used by the halo
geometry and map painting passes, along with RingGrid, a simple equal-area
pixelization that satisfies it.
*/
package sky

// Pixelization maps points on the sphere to a finite set of equal-area pixel
// indices under a fixed ring-like ordering. The ordering must be consistent
// across calls: the painting pipeline assumes VecToPix and AngToPix agree
// for the same physical direction.
//
// Angle conventions: theta is the colatitude in [0, pi], phi is the azimuth
// in [0, 2 pi).
type Pixelization interface {
	// VecToPix maps a direction vector (need not be normalized) to its
	// pixel index.
	VecToPix(x, y, z float64) int
	// AngToPix maps angles to a pixel index.
	AngToPix(theta, phi float64) int
	// VecToAng maps a direction vector to angles.
	VecToAng(x, y, z float64) (theta, phi float64)
	// PixArea returns the solid angle of one pixel in steradians. All
	// pixels have the same area.
	PixArea() float64
	// Pixels returns the total number of pixels.
	Pixels() int
}
