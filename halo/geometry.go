/*package halo computes per-halo sky geometry: radial distance, redshift,
pixel index, and angular coordinates. Every halo is independent, so the loops
here are split across workers with partition-disjoint writes into the output
arrays.
*/
package halo

import (
	"math"
	"runtime"

	"github.com/mwbaxter/skypaint/catalog"
	"github.com/mwbaxter/skypaint/cosmo"
	"github.com/mwbaxter/skypaint/parallel"
	"github.com/mwbaxter/skypaint/sky"
)

// Derived holds per-halo quantities index-aligned with the catalog that
// produced them. It is filled once and never mutated afterwards.
type Derived struct {
	Dist, Z []float64
	Pix     []int
}

type workerResult struct {
	id int
	// Index of the first failing halo for this worker, or -1.
	errIdx int
	err    error
}

// Properties computes the distance, redshift, and pixel index of every halo
// in the catalog. The distance to redshift conversion is never clamped: a
// halo outside d2z's domain fails the whole call with the error of the
// lowest-indexed failing halo.
//
// workers <= 0 selects runtime.NumCPU().
func Properties(
	c *catalog.Catalog, d2z cosmo.DistanceToRedshift,
	p sky.Pixelization, workers int,
) (*Derived, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := c.Len()
	d := &Derived{
		Dist: make([]float64, n),
		Z:    make([]float64, n),
		Pix:  make([]int, n),
	}

	out := make(chan workerResult, workers)
	work := func(id int) {
		rng, err := parallel.WorkerRange(n, workers, id)
		if err != nil {
			out <- workerResult{id, 0, err}
			return
		}
		for i := rng.Start - 1; i < rng.End; i++ {
			x, y, z := c.Xs[i], c.Ys[i], c.Zs[i]
			d.Dist[i] = math.Sqrt(x*x + y*y + z*z)

			zRed, err := d2z.Redshift(d.Dist[i])
			if err != nil {
				out <- workerResult{id, i, err}
				return
			}
			d.Z[i] = zRed
			d.Pix[i] = p.VecToPix(x, y, z)
		}
		out <- workerResult{id, -1, nil}
	}

	for id := 1; id < workers; id++ {
		go work(id)
	}
	work(workers)

	// Report the lowest-indexed failure so the result is independent of
	// worker interleaving.
	firstIdx, firstErr := -1, error(nil)
	for i := 0; i < workers; i++ {
		res := <-out
		if res.err != nil && (firstIdx == -1 || res.errIdx < firstIdx) {
			firstIdx, firstErr = res.errIdx, res.err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return d, nil
}

// Angles computes the colatitude and azimuth of every halo in the catalog
// under the pixelization's angle convention. workers <= 0 selects
// runtime.NumCPU().
func Angles(
	c *catalog.Catalog, p sky.Pixelization, workers int,
) (theta, phi []float64) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := c.Len()
	theta, phi = make([]float64, n), make([]float64, n)

	out := make(chan int, workers)
	work := func(id int) {
		rng, _ := parallel.WorkerRange(n, workers, id)
		for i := rng.Start - 1; i < rng.End; i++ {
			theta[i], phi[i] = p.VecToAng(c.Xs[i], c.Ys[i], c.Zs[i])
		}
		out <- id
	}

	for id := 1; id < workers; id++ {
		go work(id)
	}
	work(workers)
	for i := 0; i < workers; i++ {
		<-out
	}
	return theta, phi
}
