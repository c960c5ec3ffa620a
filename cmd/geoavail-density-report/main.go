// Command geoavail-density-report streams a file of newline-delimited
// geohashes into an Index, then prints a per-root, per-child report of
// total inserts, estimated distinct cells, and load factor — the Go
// equivalent of the reference corpus's own empirical density tool.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

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
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := idx.Insert(line); err != nil {
			log.Fatalf("insert %q: %v", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	for _, root := range idx.Stats() {
		printNode(root, "")
	}
}

func printNode(n geoavail.NodeStats, indent string) {
	fmt.Printf("%s-----------------------------\n", indent)
	fmt.Printf("%sHash: %s\n%sTotal: %d\n%sUnique: %d\n", indent, n.Prefix, indent, n.Total, indent, n.DistinctEstimate)
	fmt.Printf("%sLoad factor: %f\n", indent, n.LoadFactor)
	for _, child := range n.Children {
		printNode(child, indent+"\t")
	}
}
