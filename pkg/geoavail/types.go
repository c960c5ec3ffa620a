package geoavail

import (
	"math"

	"geoavail/internal/spatialtypes"
)

// LatLon is a single lat/lon vertex of a query polygon.
type LatLon struct {
	Lat float64
	Lon float64
}

func (p LatLon) validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return wrapInvalid("polygon vertex is not finite")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return wrapOutOfRange("latitude must be in [-90, 90]")
	}
	if p.Lon < -180 || p.Lon > 180 {
		return wrapOutOfRange("longitude must be in [-180, 180]")
	}
	return nil
}

func toPoints(polygon []LatLon) ([]spatialtypes.Point, error) {
	if len(polygon) < 3 {
		return nil, wrapInvalid("polygon needs at least 3 vertices")
	}
	out := make([]spatialtypes.Point, len(polygon))
	for i, p := range polygon {
		if err := p.validate(); err != nil {
			return nil, err
		}
		out[i] = spatialtypes.Point{Lat: p.Lat, Lon: p.Lon}
	}
	return out, nil
}

// RootCells pairs a root prefix with the cell indices a query matched
// underneath it. The caller pairs Prefix with Cells to reconstruct
// geographic coordinates — the router itself never resolves a cell index
// back to lat/lon.
type RootCells struct {
	Prefix string
	Cells  []uint32
}

// NodeStats is a snapshot of one grid node: its prefix, total insert count,
// approximate distinct cell count, and load factor. Internal is true once
// the node has subdivided, which is the signal that Cells/Total here is a
// lower bound rather than the complete picture — further observations for
// this prefix are landing in Children instead.
type NodeStats struct {
	Prefix           string
	Total            uint64
	DistinctEstimate uint64
	LoadFactor       float64
	Internal         bool
	Children         []NodeStats
}
