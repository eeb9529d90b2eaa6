// Package dtw defines options and modes for Dynamic Time Warping.
package dtw

import "github.com/katalvlaran/segmatch/metric"

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — only keep two rows (current and previous).
//     Reduces memory to O(m), but cannot recover the path.
//     Use when you only need the distance.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return "MemoryMode(?)"
	}
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — Sakoe–Chiba band half-width. 0 means no constraint.
//     A positive value is widened to |len(a)-len(b)| when smaller, so a
//     complete alignment always exists. Negative values are rejected.
//   - Cost         — per-timestep distance. nil means metric.Euclidean.
//   - SlopePenalty — extra cost added to horizontal and vertical steps.
//     0 gives the classic recurrence.
//   - ReturnPath   — if true, DTW backtracks and returns the warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix or TwoRows storage.
//
// Example:
//
//	opts := dtw.Options{
//	  Window:     5,             // only compare steps within ±5
//	  Cost:       metric.Manhattan,
//	  ReturnPath: true,          // we need the path, not just the distance
//	  MemoryMode: dtw.FullMatrix,
//	}
//
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
type Options struct {
	Window       int
	Cost         metric.PointMetric
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the unconstrained Euclidean configuration.
func DefaultOptions() Options {
	return Options{
		Window:     0,
		Cost:       metric.Euclidean,
		MemoryMode: FullMatrix,
	}
}

// Coord is one cell (I in a, J in b) of a warping path. Indices are 0-based.
type Coord struct {
	I, J int
}

// Alignment bundles a distance with its warping path.
type Alignment struct {
	Distance float64
	Path     []Coord
}
