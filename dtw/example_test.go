package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/segmatch/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two 2-D traces of the same movement; the second one lingers in the middle.
//	  a = [(0,0) (1,1) (2,2)]
//	  b = [(0,0) (1,1) (1,1) (2,2)]
//
// Options:
//   - Window = 0          (unconstrained)
//   - ReturnPath = true   (retrieve alignment path)
//   - MemoryMode = FullMatrix
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleDTW() {
	a := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	b := [][]float64{{0, 0}, {1, 1}, {1, 1}, {2, 2}}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {1 1} {1 2} {2 3}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance_window
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Accelerometer magnitude traces compared inside a ±1 Sakoe–Chiba band.
//	  a = [0, 1, 2, 3]
//	  b = [0, 2, 3]
//
// Effect:
//
//	The band is widened to |4-3| = 1, a[1] is absorbed at cost 1.
func ExampleDistance_window() {
	a := [][]float64{{0}, {1}, {2}, {3}}
	b := [][]float64{{0}, {2}, {3}}
	opts := dtw.DefaultOptions()
	opts.Window = 1
	opts.MemoryMode = dtw.TwoRows

	dist, err := dtw.Distance(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.3f\n", dist)
	// Output:
	// distance=1.000
}
