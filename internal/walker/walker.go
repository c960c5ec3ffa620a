// Package walker enumerates the root-prefix geohashes whose base boxes
// intersect a polygon's minimum bounding rectangle, by walking the geohash
// neighbor graph row by row from the rectangle's northwest corner to its
// southeast corner.
package walker

import (
	"fmt"

	"geoavail/internal/geocode"
	"geoavail/internal/spatialtypes"
)

// MBR returns the minimum bounding rectangle of a polygon's vertices.
func MBR(polygon []spatialtypes.Point) spatialtypes.Range {
	r := spatialtypes.Range{
		North: -90,
		South: 90,
		East:  -180,
		West:  180,
	}
	for _, p := range polygon {
		if p.Lat > r.North {
			r.North = p.Lat
		}
		if p.Lat < r.South {
			r.South = p.Lat
		}
		if p.Lon > r.East {
			r.East = p.Lon
		}
		if p.Lon < r.West {
			r.West = p.Lon
		}
	}
	return r
}

// RootPrefixes walks the MBR of polygon and returns every root-length
// geohash prefix it covers, in row-major (north-to-south, west-to-east)
// order. exists reports whether a candidate prefix is a live root in the
// router — RootPrefixes calls it once per visited cell and only yields
// prefixes for which it returns true, mirroring the source's HASH_FIND_STR
// lookup against the router table during the walk.
func RootPrefixes(polygon []spatialtypes.Point, rootLen uint, exists func(prefix string) bool) ([]string, error) {
	if len(polygon) < 3 {
		return nil, fmt.Errorf("walker: polygon needs at least 3 vertices, got %d", len(polygon))
	}

	mbr := MBR(polygon)
	nw := geocode.Encode(mbr.North, mbr.West, rootLen)
	ne := geocode.Encode(mbr.North, mbr.East, rootLen)
	se := geocode.Encode(mbr.South, mbr.East, rootLen)

	var out []string
	rowStart := nw
	rowEnd := ne
	curr := nw

	for {
		if exists(curr) {
			out = append(out, curr)
		}

		if curr == se {
			break
		}

		if curr == rowEnd {
			rowStart = geocode.Neighbor(rowStart, geocode.South)
			rowEnd = geocode.Neighbor(rowEnd, geocode.South)
			curr = rowStart
		} else {
			next := geocode.Neighbor(curr, geocode.East)
			if next == curr {
				// Neighbor() returns the hash unchanged when it cannot step
				// further (malformed or degenerate prefix) — stop instead
				// of looping forever.
				break
			}
			curr = next
		}
	}

	return out, nil
}
