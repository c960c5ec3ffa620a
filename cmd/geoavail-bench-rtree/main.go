// Command geoavail-bench-rtree is a comparison benchmark: it inserts N
// random points from the "9x" base box into a github.com/dhconnelly/rtreego
// tree instead of an Index, then times a single bounding-box search over the
// same box. It exists to let the two approaches be measured side by side,
// the way the reference corpus's own comparison driver does — including
// that driver's own caveat that the R-tree search undercounts matches.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/dhconnelly/rtreego"

	"geoavail/internal/geocode"
)

const rootGeohash = "9x"

type city struct {
	lat, lon float64
	bounds   *rtreego.Rect
}

func (c *city) Bounds() *rtreego.Rect {
	return c.bounds
}

func newCity(lat, lon float64) (*city, error) {
	rect, err := rtreego.NewRect(rtreego.Point{lon, lat}, []float64{1e-9, 1e-9})
	if err != nil {
		return nil, err
	}
	return &city{lat: lat, lon: lon, bounds: rect}, nil
}

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

	tree := rtreego.NewTree(2, 25, 50)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := int64(0); i < insertions; i++ {
		lat := box.South + rng.Float64()*(box.North-box.South)
		lon := box.West + rng.Float64()*(box.East-box.West)
		c, err := newCity(lat, lon)
		if err != nil {
			log.Fatalf("build city rect: %v", err)
		}
		tree.Insert(c)
	}

	search, err := rtreego.NewRect(
		rtreego.Point{box.West, box.South},
		[]float64{box.East - box.West, box.North - box.South},
	)
	if err != nil {
		log.Fatalf("build search rect: %v", err)
	}

	start := time.Now()
	matches := tree.SearchIntersect(search)
	elapsed := time.Since(start)

	fmt.Printf("matches: %d\n", len(matches))
	fmt.Printf("%f\n", elapsed.Seconds())
}
