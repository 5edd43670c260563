package main

// ExampleConfig is the template config printed by -ExampleConfig.
const ExampleConfig = `[PaintMap]

#######################
# Required Parameters #
#######################

# Two-column whitespace table of comoving distance and redshift, sampled
# densely enough for linear interpolation. Its distance range must cover
# every halo in the box.
DistanceRedshiftTable = path/to/d_to_z.table

# Pixelization geometry. Pixels = Rings * Columns, all equal area.
Rings = 256
Columns = 512

#######################
# Optional Parameters #
#######################

# Number of synthetic halos to generate. A real catalog loader can be
# swapped in at the call site in main.go.
# Halos = 1000000

# Comoving width of the box the synthetic catalog fills, centered on the
# observer. Units must match the distance-redshift table.
# BoxWidth = 2000

# Observing band in GHz.
# BandGHz = 545

# Chunk size for the random fills.
# ChunkSize = 65536

# If set, the painted map is written here as one pixel value per line,
# ring-major order.
# Output = map.txt`

// PaintMapConfig wraps the [PaintMap] gcfg section.
type PaintMapConfig struct {
	PaintMap PaintMapInfo
}

type PaintMapInfo struct {
	DistanceRedshiftTable string
	Rings                 int
	Columns               int

	Halos     int
	BoxWidth  float64
	BandGHz   float64
	ChunkSize int
	Output    string
}

// DefaultPaintMapInfo fills in every optional parameter.
func DefaultPaintMapInfo() PaintMapInfo {
	return PaintMapInfo{
		Halos:     1000 * 1000,
		BoxWidth:  2000,
		BandGHz:   545,
		ChunkSize: 1 << 16,
	}
}

func (info *PaintMapInfo) validate() error {
	switch {
	case info.DistanceRedshiftTable == "":
		return errMissing("DistanceRedshiftTable")
	case info.Rings <= 0:
		return errPositive("Rings", info.Rings)
	case info.Columns <= 0:
		return errPositive("Columns", info.Columns)
	case info.Halos < 0:
		return errPositive("Halos", info.Halos)
	case info.BoxWidth <= 0:
		return errPositive("BoxWidth", int(info.BoxWidth))
	case info.BandGHz <= 0:
		return errPositive("BandGHz", int(info.BandGHz))
	case info.ChunkSize <= 0:
		return errPositive("ChunkSize", info.ChunkSize)
	}
	return nil
}
