// Package geocode adapts github.com/mmcloughlin/geohash to the
// spatial-range and direction vocabulary the rest of the index uses. This is
// the only package that imports the geohash library directly — everything
// else in the module talks to geocode's small interface instead.
//
// Go Learning Note — Adapter Packages:
// Wrapping a third-party library behind a package-local interface (rather
// than importing it throughout the codebase) keeps the blast radius of a
// future library swap to one file. It also lets this package translate the
// library's error conventions and types into the ones the rest of this
// module expects, instead of leaking a foreign vocabulary everywhere.
package geocode

import (
	"fmt"

	"github.com/mmcloughlin/geohash"

	"geoavail/internal/spatialtypes"
)

// Direction is one of the eight compass directions a root prefix can have a
// neighbor in. Unlike the geohash library's own Direction type, this one is
// the vocabulary the walker (internal/walker) is written against.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Northeast
	Northwest
	Southeast
	Southwest
)

func (d Direction) toLib() geohash.Direction {
	switch d {
	case North:
		return geohash.North
	case South:
		return geohash.South
	case East:
		return geohash.East
	case West:
		return geohash.West
	case Northeast:
		return geohash.Northeast
	case Northwest:
		return geohash.Northwest
	case Southeast:
		return geohash.Southeast
	case Southwest:
		return geohash.Southwest
	default:
		// Unreachable for any Direction value constructed through this
		// package's own constants.
		panic(fmt.Sprintf("geocode: invalid direction %d", int(d)))
	}
}

// Decode converts a geohash string to the bounding box it encodes, with the
// centroid set to the box's midpoint. An empty or invalid hash is rejected —
// the geohash library itself tolerates invalid characters by stopping
// decoding early, so this wrapper validates the character set up front to
// give callers a clean error instead of a silently truncated box.
func Decode(hash string) (spatialtypes.Range, error) {
	if len(hash) == 0 {
		return spatialtypes.Range{}, fmt.Errorf("geocode: empty geohash")
	}
	if !validChars(hash) {
		return spatialtypes.Range{}, fmt.Errorf("geocode: invalid geohash %q", hash)
	}

	box := geohash.BoundingBox(hash)
	lat, lon := geohash.Decode(hash)

	return spatialtypes.Range{
		North: box.Lat.Max,
		South: box.Lat.Min,
		East:  box.Lng.Max,
		West:  box.Lng.Min,
		Lat:   lat,
		Lon:   lon,
	}, nil
}

// Encode converts a lat/lon pair to a geohash string of the given length.
func Encode(lat, lon float64, length uint) string {
	return geohash.EncodeWithPrecision(lat, lon, length)
}

// Neighbor returns the geohash of the adjacent cell of the same length, in
// the given direction.
func Neighbor(hash string, dir Direction) string {
	return geohash.Neighbor(hash, dir.toLib())
}

const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

func validChars(hash string) bool {
	for i := 0; i < len(hash); i++ {
		c := hash[i]
		found := false
		for j := 0; j < len(base32); j++ {
			if base32[j] == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
