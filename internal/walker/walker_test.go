package walker

import (
	"testing"

	"geoavail/internal/spatialtypes"
)

func TestMBRComputesMinMax(t *testing.T) {
	poly := []spatialtypes.Point{
		{Lat: 44.919, Lon: -112.242},
		{Lat: 43.111, Lon: -105.414},
		{Lat: 41.271, Lon: -111.421},
	}
	mbr := MBR(poly)
	if mbr.North != 44.919 || mbr.South != 41.271 {
		t.Errorf("expected lat range [41.271, 44.919], got [%f, %f]", mbr.South, mbr.North)
	}
	if mbr.West != -112.242 || mbr.East != -105.414 {
		t.Errorf("expected lon range [-112.242, -105.414], got [%f, %f]", mbr.West, mbr.East)
	}
}

func TestRootPrefixesRejectsShortPolygon(t *testing.T) {
	_, err := RootPrefixes([]spatialtypes.Point{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}, 2, func(string) bool { return true })
	if err == nil {
		t.Error("expected error for a 2-vertex polygon")
	}
}

func TestRootPrefixesOnlyYieldsLiveRoots(t *testing.T) {
	triangle := []spatialtypes.Point{
		{Lat: 44.919, Lon: -112.242},
		{Lat: 43.111, Lon: -105.414},
		{Lat: 41.271, Lon: -111.421},
	}
	got, err := RootPrefixes(triangle, 2, func(string) bool { return false })
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no roots when none exist in the router, got %v", got)
	}
}

func TestRootPrefixesVisitsKnownRoot(t *testing.T) {
	triangle := []spatialtypes.Point{
		{Lat: 44.919, Lon: -112.242},
		{Lat: 43.111, Lon: -105.414},
		{Lat: 41.271, Lon: -111.421},
	}
	seen := map[string]bool{}
	_, err := RootPrefixes(triangle, 2, func(p string) bool {
		seen[p] = true
		return p == "9x"
	})
	if err != nil {
		t.Fatal(err)
	}
	if !seen["9x"] {
		t.Error("expected the walk to visit the 9x root that covers this triangle")
	}
}
