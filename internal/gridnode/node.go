// Package gridnode implements one level of the hierarchical spatial index:
// a base geohash prefix, the pixel grid it subtends, the cellset of
// occupied pixels, a density estimator, and the ordered list of child nodes
// spawned once this node gets too dense.
//
// Go Learning Note — Why No Parent Pointer:
// The original C implementation recurses into a child geode by following a
// pointer it keeps aliased across the call. Here AddGeohash instead makes an
// ordinary recursive method call and returns only an error — the call stack
// itself is the "current node" reference, so there's no mutable aliasing to
// reason about.
package gridnode

import (
	"fmt"

	"geoavail/internal/cellset"
	"geoavail/internal/density"
	"geoavail/internal/geocode"
	"geoavail/internal/raster"
	"geoavail/internal/spatialtypes"
)

// Node is one level of the hierarchy, keyed by the geohash prefix it covers.
type Node struct {
	Prefix    string
	BaseRange spatialtypes.Range
	Precision int
	Width     int
	Height    int
	XDeg      float64
	YDeg      float64
	XPx       float64 // degrees per pixel, x axis
	YPx       float64 // degrees per pixel, y axis — divides by Height, not Width
	// (the original C source divides by width for both axes; see
	// SPEC_FULL.md §9 for why this implementation does not reproduce that.)

	Cells    *cellset.Set
	Density  *density.Estimator
	Total    uint64
	Children []*Node

	densityThreshold float64
	maxPrefixLen      int
	hllPrecision      uint8
}

// New creates a grid node rooted at baseGeohash, with the given raster
// precision and subdivision policy. precision drives Width/Height:
// Width = 2^floor(precision/2), Height = 2^ceil(precision/2).
func New(baseGeohash string, precision int, densityThreshold float64, maxPrefixLen int, hllPrecision uint8) (*Node, error) {
	baseRange, err := geocode.Decode(baseGeohash)
	if err != nil {
		return nil, fmt.Errorf("gridnode: %w", err)
	}

	w := precision / 2
	h := precision / 2
	if precision%2 != 0 {
		h++
	}
	width := 1 << w
	height := 1 << h

	xDeg := abs(baseRange.West - baseRange.East)
	yDeg := abs(baseRange.North - baseRange.South)

	n := &Node{
		Prefix:           baseGeohash,
		BaseRange:        baseRange,
		Precision:        precision,
		Width:            width,
		Height:           height,
		XDeg:             xDeg,
		YDeg:             yDeg,
		XPx:              xDeg / float64(width),
		YPx:              yDeg / float64(height),
		Cells:            cellset.New(),
		Density:          density.New(hllPrecision),
		densityThreshold: densityThreshold,
		maxPrefixLen:     maxPrefixLen,
		hllPrecision:     hllPrecision,
	}
	return n, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// LoadFactor is the fraction of inserts that hit an already-occupied cell.
// It is 0 for a node that has never seen an insert.
func (n *Node) LoadFactor() float64 {
	if n.Total == 0 {
		return 0
	}
	return 1 - (float64(n.Density.Estimate()) / float64(n.Total))
}

// Leaf reports whether this node has never been subdivided.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// AddGeohash records one observation. Once this node's load factor crosses
// densityThreshold, new observations are routed into a child keyed by the
// next-character prefix instead of being recorded here directly — unless
// the depth cap (maxPrefixLen) has already been reached, in which case the
// subdivision is refused and the point lands in this node regardless.
func (n *Node) AddGeohash(geohash string) error {
	if len(geohash) < len(n.Prefix)+1 {
		return fmt.Errorf("gridnode: geohash %q too short for prefix %q", geohash, n.Prefix)
	}

	if n.LoadFactor() > n.densityThreshold && len(n.Prefix) < n.maxPrefixLen {
		subPrefix := geohash[:len(n.Prefix)+1]

		for _, child := range n.Children {
			if child.Prefix == subPrefix {
				return child.AddGeohash(geohash)
			}
		}

		child, err := New(subPrefix, n.Precision, n.densityThreshold, n.maxPrefixLen, n.hllPrecision)
		if err != nil {
			return err
		}
		if err := child.AddGeohash(geohash); err != nil {
			return err
		}
		n.Children = append(n.Children, child)
		return nil
	}

	return n.record(geohash)
}

// record decodes geohash, maps its centroid to a pixel clamped into this
// node's raster, and marks that pixel present.
func (n *Node) record(geohash string) error {
	sr, err := geocode.Decode(geohash)
	if err != nil {
		return fmt.Errorf("gridnode: %w", err)
	}

	px := n.toPixel(sr.Lat, sr.Lon).Clamp(n.Width, n.Height)
	idx := px.Idx(n.Width)

	n.Cells.Add(idx)
	n.Density.Add(density.Hash64(idx))
	n.Total++
	return nil
}

// Intersects reports whether any cell set in this node lies within the
// rasterized polygon. It does not recurse into children — see QueryCells.
func (n *Node) Intersects(polygon []spatialtypes.Point) bool {
	mask := n.rasterizePolygon(polygon)
	return n.Cells.Intersects(mask)
}

// QueryCells returns the cell indices set in this node that lie within the
// rasterized polygon.
//
// Go Learning Note — Conservative Queries:
// Once a node has children, inserts that would have landed here are instead
// routed to a child, so this node's own Cells no longer reflects everything
// underneath its prefix. QueryCells and Intersects only ever look at the
// node they're called on — the router (pkg/geoavail) is responsible for
// deciding whether to also query children, and for flagging in NodeStats
// that a non-leaf node's cells are a lower bound, not the full picture.
func (n *Node) QueryCells(polygon []spatialtypes.Point) []uint32 {
	mask := n.rasterizePolygon(polygon)
	return n.Cells.IntersectionCells(mask)
}

func (n *Node) rasterizePolygon(polygon []spatialtypes.Point) *cellset.Set {
	pixels := make([]spatialtypes.Pixel, len(polygon))
	for i, v := range polygon {
		pixels[i] = n.toPixel(v.Lat, v.Lon)
	}
	return raster.Fill(pixels, n.Width, n.Height)
}
