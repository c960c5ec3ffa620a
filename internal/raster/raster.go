// Package raster fills a polygon, given as pixel-space vertices, into a
// cellset clipped to a width x height grid. This is a plain scan-line
// polygon fill — no third-party rendering library in the reference corpus
// targets integer-grid presence the way this index needs, so it is
// hand-rolled here the way a small, self-contained geometry routine would be
// in any of the reference repositories' own internal packages.
package raster

import (
	"sort"

	"geoavail/internal/cellset"
	"geoavail/internal/spatialtypes"
)

// Fill rasterizes the closed polygon described by vertices (assumed to
// already be in pixel space, last vertex implicitly connects to the first)
// into a new cellset clipped to [0, width) x [0, height).
func Fill(vertices []spatialtypes.Pixel, width, height int) *cellset.Set {
	out := cellset.New()
	if len(vertices) < 3 || width <= 0 || height <= 0 {
		return out
	}

	for y := 0; y < height; y++ {
		xs := scanlineIntersections(vertices, y)
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := ceil(xs[i])
			x1 := floor(xs[i+1])
			if x0 < 0 {
				x0 = 0
			}
			if x1 >= width {
				x1 = width - 1
			}
			for x := x0; x <= x1; x++ {
				out.Add(spatialtypes.Pixel{X: x, Y: y}.Idx(width))
			}
		}
	}
	return out
}

// scanlineIntersections returns the x-coordinates where the horizontal line
// y+0.5 crosses a polygon edge, skipping horizontal edges and using an
// upper-exclusive test at shared vertices so a single scan line never
// double-counts a vertex it just passed through.
func scanlineIntersections(vertices []spatialtypes.Pixel, y int) []float64 {
	n := len(vertices)
	scanY := float64(y) + 0.5
	var xs []float64

	for i := 0; i < n; i++ {
		p0 := vertices[i]
		p1 := vertices[(i+1)%n]
		if p0.Y == p1.Y {
			continue // horizontal edge contributes no crossing
		}

		yMin, yMax := float64(p0.Y), float64(p1.Y)
		if yMin > yMax {
			yMin, yMax = yMax, yMin
		}
		if scanY < yMin || scanY >= yMax {
			continue
		}

		t := (scanY - float64(p0.Y)) / float64(p1.Y-p0.Y)
		x := float64(p0.X) + t*float64(p1.X-p0.X)
		xs = append(xs, x)
	}
	return xs
}

func ceil(x float64) int {
	i := int(x)
	if float64(i) < x {
		i++
	}
	return i
}

func floor(x float64) int {
	i := int(x)
	if float64(i) > x {
		i--
	}
	return i
}
