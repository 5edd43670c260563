/*skypaint paints a halo catalog onto an all-sky flux map.

The heavy lifting lives in the library packages; this binary wires them
together with stand-ins for the external collaborators: a synthetic halo
catalog, a distance-redshift table read from disk, and a modified-blackbody
source model.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/gcfg.v1"

	"github.com/mwbaxter/skypaint/catalog"
	"github.com/mwbaxter/skypaint/cosmo"
	"github.com/mwbaxter/skypaint/halo"
	"github.com/mwbaxter/skypaint/paint"
	"github.com/mwbaxter/skypaint/parallel"
	"github.com/mwbaxter/skypaint/sky"
	"github.com/mwbaxter/skypaint/spectral"
)

var numCores int

func errMissing(name string) error {
	return fmt.Errorf("[PaintMap] variable %s is required", name)
}

func errPositive(name string, val int) error {
	return fmt.Errorf("[PaintMap] variable %s = %d must be positive", name, val)
}

func main() {
	var (
		configPath    string
		exampleConfig bool
		plot          bool
	)

	flag.StringVar(
		&configPath, "Config", "",
		"Configuration file with a [PaintMap] section.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Print an example configuration file to stdout and exit.",
	)
	flag.IntVar(
		&numCores, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.BoolVar(
		&plot, "Plot", false,
		"Show a pyplot window with the ring-averaged map profile.",
	)
	flag.Parse()

	if exampleConfig {
		fmt.Println(ExampleConfig)
		return
	}
	if configPath == "" {
		log.Fatalf("No config file given. Run with -ExampleConfig for a template.")
	}

	con := PaintMapConfig{DefaultPaintMapInfo()}
	if err := gcfg.ReadFileInto(&con, configPath); err != nil {
		log.Fatalf("Error reading %s: %s", configPath, err.Error())
	}
	info := &con.PaintMap
	if err := info.validate(); err != nil {
		log.Fatalf("Error in %s: %s", configPath, err.Error())
	}

	grid, err := run(info, plot)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}

	if info.Output != "" {
		if err := writeGrid(info.Output, grid); err != nil {
			log.Fatalf("Error writing %s: %s", info.Output, err.Error())
		}
		log.Printf("Wrote %d pixels to %s", len(grid), info.Output)
	}
}

func run(info *PaintMapInfo, plot bool) ([]float64, error) {
	d2z, err := readCosmoTable(info.DistanceRedshiftTable)
	if err != nil {
		return nil, err
	}
	low, high := d2z.Domain()
	log.Printf("Distance-redshift table valid over [%.4g, %.4g]", low, high)

	pix, err := sky.NewRingGrid(info.Rings, info.Columns)
	if err != nil {
		return nil, err
	}

	c, err := syntheticCatalog(info)
	if err != nil {
		return nil, err
	}
	log.Printf("Generated %d halos in a %g-wide box", c.Len(), info.BoxWidth)

	d, err := halo.Properties(c, d2z, pix, numCores)
	if err != nil {
		return nil, err
	}
	theta, phi := halo.Angles(c, pix, numCores)

	flux, err := sourceFluxes(c, d, info.BandGHz)
	if err != nil {
		return nil, err
	}

	grid := make([]float64, pix.Pixels())
	if err := paint.Paint(grid, flux, theta, phi, pix, numCores); err != nil {
		return nil, err
	}

	log.Printf(
		"Map: sum %.6g, mean %.6g, std %.6g, min %.6g, max %.6g",
		floats.Sum(grid), stat.Mean(grid, nil), stat.StdDev(grid, nil),
		floats.Min(grid), floats.Max(grid),
	)

	if plot {
		plotRingProfile(grid, info.Rings, info.Columns)
	}
	return grid, nil
}

func readCosmoTable(file string) (*cosmo.Table, error) {
	cols, err := table.ReadTable(file, []int{0, 1}, nil)
	if err != nil {
		return nil, err
	}
	return cosmo.NewTable(cols[0], cols[1])
}

// syntheticCatalog fills a catalog with uniform random positions and masses.
// It stands in for the external catalog loader.
func syntheticCatalog(info *PaintMapInfo) (*catalog.Catalog, error) {
	c := catalog.New(info.Halos)
	w := info.BoxWidth / 2
	for _, col := range [][]float64{c.Xs, c.Ys, c.Zs} {
		if err := parallel.RandomFill(col, -w, w, info.ChunkSize); err != nil {
			return nil, err
		}
	}
	if err := parallel.RandomFill(c.Ms, 1e12, 1e15, info.ChunkSize); err != nil {
		return nil, err
	}
	return c, nil
}

// sourceFluxes is a stand-in for the external population-synthesis model:
// every halo emits the modified-blackbody shape at its rest-frame band
// frequency, scaled by mass over distance squared.
func sourceFluxes(
	c *catalog.Catalog, d *halo.Derived, bandGHz float64,
) ([]float64, error) {
	flux := make([]float64, c.Len())
	for i := range flux {
		nuRest := spectral.Quantity{bandGHz * (1 + d.Z[i]), spectral.Gigahertz}
		shape, err := spectral.ModifiedBlackbody(nuRest, spectral.MJyPerSr)
		if err != nil {
			return nil, err
		}
		r := d.Dist[i]
		if r == 0 {
			continue
		}
		flux[i] = shape.Value * c.Ms[i] / 1e15 / (4 * math.Pi * r * r)
	}
	return flux, nil
}

func plotRingProfile(grid []float64, rings, cols int) {
	ringIdx := make([]float64, rings)
	ringMean := make([]float64, rings)
	for r := 0; r < rings; r++ {
		ringIdx[r] = float64(r)
		ringMean[r] = stat.Mean(grid[r*cols:(r+1)*cols], nil)
	}

	plt.Reset()
	plt.Plot(ringIdx, ringMean, "r", plt.LW(2))
	plt.Show()
}

func writeGrid(file string, grid []float64) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, v := range grid {
		if _, err := fmt.Fprintf(f, "%g\n", v); err != nil {
			return err
		}
	}
	return nil
}
