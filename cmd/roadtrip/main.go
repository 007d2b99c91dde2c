// Command roadtrip builds the all-pairs road-trip cost matrix from an edge
// list and answers lookups and route totals against it.
//
// Usage:
//
//	roadtrip matrix --edges testdata/roadtrip_edges.txt --from 1 --to 100
//	roadtrip route  --edges testdata/roadtrip_edges.txt 2 3 5
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
