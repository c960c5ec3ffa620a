package geoavail

import (
	"fmt"
	"sort"
	"sync"

	"geoavail/internal/gridnode"
	"geoavail/internal/walker"
)

// Index is the top-level router: a map from fixed-length geohash prefix to
// root grid node. It is the only exported type that needs a mutex — every
// internal package below it (gridnode, cellset, density, raster, walker) is
// written single-threaded, the way the original C source's whole structure
// is, and callers that share one Index across goroutines rely on this
// type's RWMutex the same way the reference corpus's in-memory repositories
// rely on their own.
type Index struct {
	mu    sync.RWMutex
	cfg   Config
	roots map[string]*gridnode.Node
}

// New constructs an empty Index from cfg.
func New(cfg Config) (*Index, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Index{
		cfg:   cfg,
		roots: make(map[string]*gridnode.Node),
	}, nil
}

// Insert records one observation of geohash. The first RootPrefixLen
// characters select (or lazily create) the root node; AddGeohash then
// decides whether the observation is recorded there or delegated to a
// child, per the node's own load factor.
func (idx *Index) Insert(geohash string) error {
	rootLen := int(idx.cfg.Grid.RootPrefixLen)
	if len(geohash) < rootLen {
		return wrapInvalid(fmt.Sprintf("geohash %q shorter than root prefix length %d", geohash, rootLen))
	}
	key := geohash[:rootLen]

	idx.mu.Lock()
	defer idx.mu.Unlock()

	root, ok := idx.roots[key]
	if !ok {
		var err error
		root, err = gridnode.New(key, idx.cfg.Grid.Precision, idx.cfg.Density.Threshold, idx.cfg.Grid.MaxPrefixLen, idx.cfg.Density.HLLPrecision)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := root.AddGeohash(geohash); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !ok {
		idx.roots[key] = root
	}
	return nil
}

// Intersects reports whether polygon touches any occupied cell in any live
// root node. Roots are found via the MBR walker; a root that does not exist
// in the router is skipped, never created. Only each root's own bitmap is
// consulted, never its children — see NodeStats.Internal.
func (idx *Index) Intersects(polygon []LatLon) (bool, error) {
	points, err := toPoints(polygon)
	if err != nil {
		return false, err
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	prefixes, err := walker.RootPrefixes(points, idx.cfg.Grid.RootPrefixLen, idx.rootExists)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, prefix := range prefixes {
		if idx.roots[prefix].Intersects(points) {
			return true, nil
		}
	}
	return false, nil
}

// Cells returns, per live root node touched by the polygon's MBR, the cell
// indices that lie within the rasterized polygon and are set in that root's
// bitmap. See NodeStats.Internal for why a subdivided root's cells are a
// lower bound rather than complete.
func (idx *Index) Cells(polygon []LatLon) ([]RootCells, error) {
	points, err := toPoints(polygon)
	if err != nil {
		return nil, err
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	prefixes, err := walker.RootPrefixes(points, idx.cfg.Grid.RootPrefixLen, idx.rootExists)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var out []RootCells
	for _, prefix := range prefixes {
		cells := idx.roots[prefix].QueryCells(points)
		if len(cells) > 0 {
			out = append(out, RootCells{Prefix: prefix, Cells: cells})
		}
	}
	return out, nil
}

// rootExists reports whether prefix names a live root node. It must be
// called with idx.mu already held (by a query method).
func (idx *Index) rootExists(prefix string) bool {
	_, ok := idx.roots[prefix]
	return ok
}

// Stats returns a snapshot of every root node and its descendants, sorted
// by prefix for a stable, reproducible report.
func (idx *Index) Stats() []NodeStats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	keys := make([]string, 0, len(idx.roots))
	for k := range idx.roots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]NodeStats, 0, len(keys))
	for _, k := range keys {
		out = append(out, nodeStats(idx.roots[k]))
	}
	return out
}

func nodeStats(n *gridnode.Node) NodeStats {
	stats := NodeStats{
		Prefix:           n.Prefix,
		Total:            n.Total,
		DistinctEstimate: n.Density.Estimate(),
		LoadFactor:       n.LoadFactor(),
		Internal:         !n.Leaf(),
	}
	for _, c := range n.Children {
		stats.Children = append(stats.Children, nodeStats(c))
	}
	return stats
}
