// Package dtw computes Dynamic Time Warping (DTW) distances between
// multivariate time series, with an optional Sakoe–Chiba window and
// warping-path recovery.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest alignment between two sequences by warping the
//	time axis. Two recordings of the same gesture performed at different
//	speeds align with a small cost even though their lengths differ.
//	It is widely used in:
//	  • Gesture / motion matching (accelerometer, pose landmarks)
//	  • Speech and audio alignment
//	  • Time-series nearest-neighbour classification
//
// ✨ Key features:
//   - multivariate input: each timestep is a feature vector ([]float64)
//   - pluggable per-step cost (metric.PointMetric, Euclidean by default)
//   - optional Sakoe–Chiba window, widened to the length difference so an
//     end-to-end path always exists
//   - FullMatrix or TwoRows memory modes
//   - optional slope penalty for non-diagonal steps
//   - on-demand alignment path (ReturnPath=true)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/segmatch/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10 // Sakoe–Chiba band ±10
//
//	dist, err := dtw.Distance(a, b, &opts)
//
//	// as a sequence metric for knn:
//	fn := dtw.Metric(&opts)
//
// Performance:
//
//   - Time:   O(N·M), or O(N·w) with a window
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// The DP table is local to one call; DTW is a pure function and safe for
// concurrent use as long as the supplied cost metric is.
package dtw
