// Package spatialtypes holds the small value types shared by the geocoding
// adapter, the grid nodes, the rasterizer, and the walker. These are the
// core domain models for the spatial index — they have no dependencies on
// the bitmap, estimator, or geohash libraries, the same way the innermost
// entities of a layered service carry no dependency on storage or transport.
package spatialtypes

import "fmt"

// Range is a lat/lon bounding box in decimal degrees, plus an optional
// centroid. South must be <= North and West must be <= East; the index never
// deals with regions that wrap the antimeridian.
type Range struct {
	North float64
	South float64
	East  float64
	West  float64
	Lat   float64 // centroid latitude
	Lon   float64 // centroid longitude
}

// Valid reports whether the box satisfies its ordering invariant.
func (r Range) Valid() bool {
	return r.South <= r.North && r.West <= r.East
}

func (r Range) String() string {
	return fmt.Sprintf("[N=%.6f S=%.6f E=%.6f W=%.6f]", r.North, r.South, r.East, r.West)
}

// Point is a single lat/lon coordinate, the unit callers pass in polygons.
type Point struct {
	Lat float64
	Lon float64
}

// Pixel is an integer (x, y) grid cell coordinate. Row-major linearization
// (Idx) is what gets stored in both the cellset and fed to the estimator.
type Pixel struct {
	X int
	Y int
}

// Idx linearizes the pixel into a single index for a raster of the given
// width: idx = y*width + x.
func (p Pixel) Idx(width int) uint32 {
	return uint32(p.Y*width + p.X)
}

// Clamp pulls the pixel back into [0, width) x [0, height), the policy this
// index uses for points that decode just outside a node's base box due to
// floating-point rounding at the border.
func (p Pixel) Clamp(width, height int) Pixel {
	x, y := p.X, p.Y
	if x < 0 {
		x = 0
	} else if x >= width {
		x = width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= height {
		y = height - 1
	}
	return Pixel{X: x, Y: y}
}
