/*package paint accumulates per-source fluxes into a shared pixel grid.

Naively splitting the accumulation loop across workers races whenever two
sources share a pixel. The historical mitigation was to sort sources by
colatitude so concurrent chunks rarely touch the same pixel; that ordering is
kept here for locality, but correctness no longer depends on it: each worker
accumulates into a private partial grid and the partials are merged in a
single-threaded reduction, so no two goroutines ever write the same slot.
*/
package paint

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/floats"

	"github.com/mwbaxter/skypaint/parallel"
	"github.com/mwbaxter/skypaint/sky"
)

// Paint adds each source's flux to the pixel addressed by its angles, then
// scales every pixel by 1/PixArea so grid holds flux density per steradian.
// The scaling pass runs even when there are no sources.
//
// Summation order within a pixel is unspecified; results from different
// worker counts agree only up to floating-point rounding. workers <= 0
// selects runtime.NumCPU().
func Paint(
	grid, flux, theta, phi []float64, p sky.Pixelization, workers int,
) error {
	if len(flux) != len(theta) || len(flux) != len(phi) {
		return fmt.Errorf(
			"%w: %d fluxes, %d thetas, %d phis",
			parallel.ErrInvalidArgument, len(flux), len(theta), len(phi),
		)
	}
	if len(grid) != p.Pixels() {
		return fmt.Errorf(
			"%w: grid has %d pixels, pixelization has %d",
			parallel.ErrInvalidArgument, len(grid), p.Pixels(),
		)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := len(flux)
	order := thetaOrder(theta)

	bufs := make([][]float64, workers)
	out := make(chan int, workers)
	work := func(id int) {
		rng, _ := parallel.WorkerRange(n, workers, id)
		buf := make([]float64, len(grid))
		for k := rng.Start - 1; k < rng.End; k++ {
			i := order[k]
			buf[p.AngToPix(theta[i], phi[i])] += flux[i]
		}
		bufs[id-1] = buf
		out <- id
	}

	for id := 1; id < workers; id++ {
		go work(id)
	}
	work(workers)
	for i := 0; i < workers; i++ {
		<-out
	}

	for _, buf := range bufs {
		floats.Add(grid, buf)
	}
	floats.Scale(1/p.PixArea(), grid)
	return nil
}

// thetaOrder returns source indices sorted by descending colatitude, the
// dispatch order inherited from the sort-based race mitigation.
func thetaOrder(theta []float64) []int {
	sorted := make([]float64, len(theta))
	copy(sorted, theta)
	order := make([]int, len(theta))
	floats.Argsort(sorted, order)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
