// Command geoavail-bench-query builds a single root node by inserting N
// random points drawn from its base box, then times one Intersects call
// against a fixed triangle — the same scenario the reference corpus's own
// query benchmark driver measures.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"geoavail/internal/geocode"
	"geoavail/pkg/geoavail"
)

const (
	rootGeohash     = "9x"
	insertPrecision = 12
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s insertions\nEx: %s 1000000\n", os.Args[0], os.Args[0])
		os.Exit(1)
	}

	insertions, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil {
		log.Fatalf("parse insertions: %v", err)
	}

	box, err := geocode.Decode(rootGeohash)
	if err != nil {
		log.Fatalf("decode root %q: %v", rootGeohash, err)
	}

	idx, err := geoavail.New(geoavail.DefaultConfig())
	if err != nil {
		log.Fatalf("new index: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := int64(0); i < insertions; i++ {
		lat := box.South + rng.Float64()*(box.North-box.South)
		lon := box.West + rng.Float64()*(box.East-box.West)
		hash := geocode.Encode(lat, lon, insertPrecision)
		if err := idx.Insert(hash); err != nil {
			log.Fatalf("insert: %v", err)
		}
	}

	// The same triangle the reference corpus's query benchmark uses.
	triangle := []geoavail.LatLon{
		{Lat: 44.919, Lon: -112.242},
		{Lat: 43.111, Lon: -105.414},
		{Lat: 41.271, Lon: -111.421},
	}

	start := time.Now()
	if _, err := idx.Intersects(triangle); err != nil {
		log.Fatalf("intersects: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("%f\n", elapsed.Seconds())
}
