package geoavail

import "testing"

func mustIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New(DefaultConfig()): %v", err)
	}
	return idx
}

var sampleTriangle = []LatLon{
	{Lat: 44.919, Lon: -112.242},
	{Lat: 43.111, Lon: -105.414},
	{Lat: 41.271, Lon: -111.421},
}

func TestInsertRepeatedGeohashBuildsOneRoot(t *testing.T) {
	idx := mustIndex(t)
	for i := 0; i < 10000; i++ {
		if err := idx.Insert("9x12345678901234"); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	stats := idx.Stats()
	if len(stats) != 1 || stats[0].Prefix != "9x" {
		t.Fatalf("expected exactly one root 9x, got %+v", stats)
	}

	total, distinct := sumStats(stats[0])
	if total != 10000 {
		t.Errorf("expected total 10000 across the tree, got %d", total)
	}
	if distinct != 1 {
		t.Errorf("expected exactly one distinct cell across the tree, got %d", distinct)
	}
}

func sumStats(s NodeStats) (total uint64, distinctCells uint64) {
	total = s.Total
	if s.Internal {
		for _, c := range s.Children {
			ct, _ := sumStats(c)
			total += ct
		}
	}
	// DistinctEstimate at the leaf that actually recorded data is the
	// meaningful distinct count; an internal node's own estimate reflects
	// only what it recorded before subdividing.
	if !s.Internal {
		distinctCells = s.DistinctEstimate
	} else {
		for _, c := range s.Children {
			_, dc := sumStats(c)
			distinctCells += dc
		}
		if s.Total > 0 {
			distinctCells += s.DistinctEstimate
		}
	}
	return total, distinctCells
}

func TestEmptyIndexNeverIntersects(t *testing.T) {
	idx := mustIndex(t)
	hit, err := idx.Intersects(sampleTriangle)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("an index with no inserts must never intersect")
	}
	cells, err := idx.Cells(sampleTriangle)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 0 {
		t.Errorf("expected no cells, got %+v", cells)
	}
}

func TestQueryRejectsShortPolygon(t *testing.T) {
	idx := mustIndex(t)
	_, err := idx.Intersects([]LatLon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}})
	if err == nil {
		t.Error("expected error for a 2-vertex polygon")
	}
}

func TestQueryRejectsOutOfRangeLatLon(t *testing.T) {
	idx := mustIndex(t)
	bad := []LatLon{{Lat: 999, Lon: 0}, {Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}
	_, err := idx.Intersects(bad)
	if err == nil {
		t.Error("expected error for out-of-range latitude")
	}
}

func TestInsertThenQueryFindsOwnData(t *testing.T) {
	idx := mustIndex(t)
	// A grid of points spread across the 9x base box, at low enough volume
	// to avoid triggering subdivision so the root's own bitmap holds
	// everything.
	hashes := []string{
		"9xbpbpbpbpbpbpbp",
		"9xbzbzbzbzbzbzbz",
		"9xpbpbpbpbpbpbpb",
		"9xzzzzzzzzzzzzzz",
		"9x00000000000000",
	}
	for _, h := range hashes {
		if err := idx.Insert(h); err != nil {
			t.Fatalf("insert %q: %v", h, err)
		}
	}

	stats := idx.Stats()
	if len(stats) != 1 {
		t.Fatalf("expected one root, got %d", len(stats))
	}

	full := []LatLon{
		{Lat: 90, Lon: -180},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: 180},
		{Lat: -90, Lon: -180},
	}
	hit, err := idx.Intersects(full)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("a world-covering polygon must intersect a populated index")
	}
}

func TestConfigValidationRejectsBadThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density.Threshold = 1.5
	if _, err := New(cfg); err == nil {
		t.Error("expected validation error for Density.Threshold out of (0, 1)")
	}
}

func TestConfigValidationRejectsBadRootPrefixLen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.RootPrefixLen = 0
	if _, err := New(cfg); err == nil {
		t.Error("expected validation error for RootPrefixLen out of [1, 10]")
	}
}

func TestInsertRejectsGeohashShorterThanRootPrefix(t *testing.T) {
	idx := mustIndex(t)
	if err := idx.Insert("9"); err == nil {
		t.Error("expected error inserting a geohash shorter than RootPrefixLen")
	}
}
