package dtw

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/segmatch/metric"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary
//	in time or speed by finding an optimal “warping path”.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m with |i-j| ≤ w (w = max(Window, |n-m|) if Window > 0):
//     cost  = Cost(a[i-1], b[j-1])
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = cost + min(ins, del, match)
//     Cells outside the band stay +∞.
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (1,1) following the
//     cheapest predecessor (diagonal first on ties).
//
// The padded border makes D[1][1] = Cost(a[0], b[0]), the first row a
// running sum along b and the first column a running sum along a.
//
// Complexity:
//
//	Time   = O(n·m), O(n·w) with a window
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows)
//
// Errors:
//   - ErrEmptySequence    — if either input is empty.
//   - ErrBadWindow        — if Window < 0.
//   - ErrBadMemoryMode    — unknown MemoryMode.
//   - ErrPathNeedsMatrix  — if ReturnPath=true with TwoRows mode.
//   - any Cost error (e.g. metric.ErrShapeMismatch), wrapped with the cell.
var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("dtw: input sequences must be non-empty")

	// ErrBadWindow indicates a negative window size.
	ErrBadWindow = errors.New("dtw: window must be >= 0")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("dtw: unknown memory mode")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error); path is nil unless opts.ReturnPath is set.
// A nil opts behaves like DefaultOptions().
//
// Example:
//
//	opts := dtw.Options{ReturnPath: true, MemoryMode: dtw.FullMatrix}
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
func DTW(a, b [][]float64, opts *Options) (distance float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}

	// Apply options or defaults
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < 0 {
		return 0, nil, ErrBadWindow
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return 0, nil, ErrBadMemoryMode
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}
	cost := o.Cost
	if cost == nil {
		cost = metric.Euclidean
	}

	// Band half-width; unconstrained covers the whole table.
	band := max(n, m)
	if o.Window > 0 {
		band = max(o.Window, abs(n-m))
	}

	if o.MemoryMode == TwoRows {
		distance, err = twoRows(a, b, cost, band, o.SlopePenalty)
		return distance, nil, err
	}

	dp, err := fullMatrix(a, b, cost, band, o.SlopePenalty)
	if err != nil {
		return 0, nil, err
	}
	distance = dp[n][m]
	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(dp, o.SlopePenalty)
	}

	return distance, path, nil
}

// Distance returns only the DTW distance between a and b.
func Distance(a, b [][]float64, opts *Options) (float64, error) {
	if opts != nil && opts.ReturnPath {
		o := *opts
		o.ReturnPath = false
		opts = &o
	}
	d, _, err := DTW(a, b, opts)

	return d, err
}

// Align returns the distance together with the warping path.
// It always uses FullMatrix storage.
func Align(a, b [][]float64, opts *Options) (Alignment, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.ReturnPath = true
	o.MemoryMode = FullMatrix

	d, p, err := DTW(a, b, &o)
	if err != nil {
		return Alignment{}, err
	}

	return Alignment{Distance: d, Path: p}, nil
}

// Metric returns DTW as a metric.SequenceMetric bound to a copy of opts,
// ready to be injected into the knn classifier or the mds matrix builder.
func Metric(opts *Options) metric.SequenceMetric {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o.ReturnPath = false

	return metric.SequenceFunc(func(a, b [][]float64) (float64, error) {
		return Distance(a, b, &o)
	})
}

// fullMatrix fills the complete (n+1)x(m+1) table.
func fullMatrix(a, b [][]float64, cost metric.PointMetric, band int, penalty float64) ([][]float64, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	// Prepare DP storage as one arena sliced into rows.
	cells := make([]float64, (n+1)*(m+1))
	for k := range cells {
		cells[k] = inf
	}
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = cells[i*(m+1) : (i+1)*(m+1)]
	}
	dp[0][0] = 0

	// Fill DP
	for i := 1; i <= n; i++ {
		jStart, jEnd := max(1, i-band), min(m, i+band)
		for j := jStart; j <= jEnd; j++ {
			c, err := cost.Distance(a[i-1], b[j-1])
			if err != nil {
				return nil, fmt.Errorf("dtw: cost at (%d,%d): %w", i-1, j-1, err)
			}
			ins := dp[i-1][j] + penalty
			del := dp[i][j-1] + penalty
			match := dp[i-1][j-1]
			dp[i][j] = c + min3(ins, del, match)
		}
	}

	return dp, nil
}

// twoRows computes the same recurrence keeping only the previous row.
func twoRows(a, b [][]float64, cost metric.PointMetric, band int, penalty float64) (float64, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := range prev {
		prev[j] = inf
	}
	prev[0] = 0

	for i := 1; i <= n; i++ {
		for j := range curr {
			curr[j] = inf
		}
		jStart, jEnd := max(1, i-band), min(m, i+band)
		for j := jStart; j <= jEnd; j++ {
			c, err := cost.Distance(a[i-1], b[j-1])
			if err != nil {
				return 0, fmt.Errorf("dtw: cost at (%d,%d): %w", i-1, j-1, err)
			}
			ins := prev[j] + penalty
			del := curr[j-1] + penalty
			match := prev[j-1]
			curr[j] = c + min3(ins, del, match)
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// backtrack walks from (n,m) to (1,1) and returns the path in forward order.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		// choose predecessor; diagonal wins ties
		match := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case match <= up && match <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
