/*package catalog defines the in-memory halo table consumed by the painting
pipeline and the subhalo offset bookkeeping built on top of it.

Catalogs are stored as parallel columns rather than as a slice of structs so
that per-column loops vectorize and so that derived per-halo arrays stay
index-aligned with their catalog.
*/
package catalog

// Catalog holds the positions and masses of N halos as parallel columns.
// Positions are comoving, masses follow whatever convention the producing
// catalog uses; this package never interprets either. A Catalog is read-only
// once filled.
type Catalog struct {
	Xs, Ys, Zs []float64
	Ms         []float64
}

// New allocates an empty catalog with room for n halos.
func New(n int) *Catalog {
	return &Catalog{
		Xs: make([]float64, n),
		Ys: make([]float64, n),
		Zs: make([]float64, n),
		Ms: make([]float64, n),
	}
}

// Len returns the number of halos in the catalog.
func (c *Catalog) Len() int { return len(c.Xs) }

// BuildOffsets converts per-halo subhalo counts into the offset table that
// locates each halo's slots in a flattened subhalo list: offsets[i] is the
// index of halo i's first subhalo and offsets[len(counts)] is the total
// count. The result has a leading zero and is non-decreasing.
func BuildOffsets(counts []int64) []int64 {
	offsets := make([]int64, len(counts)+1)
	for i, n := range counts {
		offsets[i+1] = offsets[i] + n
	}
	return offsets
}
