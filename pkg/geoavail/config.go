// Package geoavail is the public entry point for the hierarchical spatial
// availability index: a router that maps fixed-length geohash prefixes to
// grid nodes, each holding a compressed bitmap of occupied raster cells.
//
// Go Learning Note — pkg/ vs internal/:
// Router, Config, and the sentinel errors live here under pkg/ because this
// is the surface external callers are meant to import. Everything it is
// built from — the geohash adapter, the cellset, the estimator, the
// rasterizer, the grid node, the walker — lives under internal/ and cannot
// be imported outside this module.
package geoavail

// Config holds every tuning knob for a new Index. Grouping related settings
// into sub-structs (Grid, Density) keeps the config organized the way a
// layered application's top-level Config composes one sub-struct per
// concern rather than flattening every field.
type Config struct {
	Grid    GridConfig
	Density DensityConfig
}

// GridConfig controls how geohash prefixes are routed and how finely each
// grid node rasterizes its base box.
type GridConfig struct {
	// RootPrefixLen (P0) is the length of the geohash prefix the router
	// keys root nodes by. Range 1-10.
	RootPrefixLen uint
	// Precision (P) drives each node's raster resolution:
	// Width = 2^floor(Precision/2), Height = 2^ceil(Precision/2).
	Precision int
	// MaxPrefixLen is the hard cap on how deep subdivision can recurse.
	MaxPrefixLen int
}

// DensityConfig controls when a grid node subdivides into children.
type DensityConfig struct {
	// Threshold is the load factor above which a node spawns a child
	// instead of recording further observations itself. Range (0, 1).
	Threshold float64
	// HLLPrecision selects the cardinality estimator's sketch size: any
	// value below 16 gives a 2^14-register sketch, 16 or more gives a
	// 2^16-register sketch. Register counts other than these two are not
	// available.
	HLLPrecision uint8
}

// DefaultConfig returns the specification's documented defaults:
// RootPrefixLen=2, Precision=16, DensityThreshold=0.6, MaxPrefixLen=10,
// HLLPrecision=9.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			RootPrefixLen: 2,
			Precision:     16,
			MaxPrefixLen:  10,
		},
		Density: DensityConfig{
			Threshold:    0.6,
			HLLPrecision: 9,
		},
	}
}

// validate checks the config against the ranges the specification documents,
// returning ErrInvalidInput wrapped with the offending field's name.
func (c Config) validate() error {
	if c.Grid.RootPrefixLen < 1 || c.Grid.RootPrefixLen > 10 {
		return wrapInvalid("Grid.RootPrefixLen must be in [1, 10]")
	}
	if c.Grid.Precision <= 0 {
		return wrapInvalid("Grid.Precision must be positive")
	}
	if c.Grid.MaxPrefixLen < int(c.Grid.RootPrefixLen) || c.Grid.MaxPrefixLen > 20 {
		return wrapInvalid("Grid.MaxPrefixLen must be >= RootPrefixLen and <= 20")
	}
	if c.Density.Threshold <= 0 || c.Density.Threshold >= 1 {
		return wrapInvalid("Density.Threshold must be in (0, 1)")
	}
	return nil
}
