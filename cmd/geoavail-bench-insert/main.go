// Command geoavail-bench-insert times how long it takes to stream a file of
// newline-delimited geohashes into a fresh Index, one Insert call per line.
//
// Go Learning Note — Benchmark CLIs vs. go test -bench:
// Go's standard benchmarking harness (go test -bench) is the idiomatic choice
// for microbenchmarks, but this repo also ships a standalone CLI mirroring
// the shape of the reference corpus's own command-line driver: a single file
// argument, one elapsed-time measurement printed to stdout. Keeping that
// shape makes the Go and original timings directly comparable.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"geoavail/pkg/geoavail"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s geohash_file.txt\nEx: %s datasets/geohashes.txt\n", os.Args[0], os.Args[0])
		os.Exit(1)
	}

	path := os.Args[1]
	fmt.Printf("Opening %s\n", path)
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	idx, err := geoavail.New(geoavail.DefaultConfig())
	if err != nil {
		log.Fatalf("new index: %v", err)
	}

	scanner := bufio.NewScanner(f)
	start := time.Now()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := idx.Insert(line); err != nil {
			log.Fatalf("insert %q: %v", line, err)
		}
	}
	elapsed := time.Since(start)
	if err := scanner.Err(); err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	fmt.Printf("%f\n", elapsed.Seconds())
}
