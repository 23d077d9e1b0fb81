package dtwbd_test

import (
	"fmt"

	"github.com/go-afaligner/afalign/dtwbd"
)

// ExampleAlign demonstrates DTWBD skipping a leading and trailing run of
// frames that have no counterpart in the other sequence.
//
// Scenario:
//
//	a = [9, 9, 0, 1, 2, 3, 9]  (has a leading/trailing "9" run)
//	b = [0, 1, 2, 3]           (the clean signal)
//
// With a small skip penalty, DTWBD discovers the clean match in the
// middle of a and skips the boundary noise instead of warping it in.
func ExampleAlign() {
	a := [][]float64{{9}, {9}, {0}, {1}, {2}, {3}, {9}}
	b := [][]float64{{0}, {1}, {2}, {3}}

	dist, path, err := dtwbd.Align(a, b, 0.1, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f\n", dist)
	fmt.Printf("path=%v\n", path)
	// Output:
	// distance=0.3
	// path=[{2 0} {3 1} {4 2} {5 3}]
}

// ExampleFastAlign demonstrates the multi-resolution driver on a longer
// sequence, where the recursive coarsen/refine loop actually engages
// (len(a) exceeds 2*(radius+2)) rather than falling straight through to
// a single Align call.
func ExampleFastAlign() {
	n := 80
	a := make([][]float64, n)
	for i := 0; i < n; i++ {
		a[i] = []float64{float64(i)}
	}

	dist, path, err := dtwbd.FastAlign(a, a, 1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\n", dist)
	fmt.Printf("matched frames=%d\n", len(path))
	// Output:
	// distance=0
	// matched frames=80
}
