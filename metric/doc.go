// SPDX-License-Identifier: MIT

// Package metric defines the distance capabilities used across segmatch.
//
// Two shapes of metric exist:
//
//   - PointMetric compares two feature vectors of one timestep
//     (x/y/z triples, flattened skeleton vectors, ...). It is the per-step
//     cost inside DTW. Euclidean is the default.
//   - SequenceMetric compares two whole sequences of feature vectors.
//     DTW is the usual implementation (see dtw.Metric); LockstepEuclidean
//     is provided for equal-length segments.
//
// Contract:
//
//	Every metric returns a non-negative real and fails with ErrShapeMismatch
//	when the operands do not have the shape it requires. Metrics hold no
//	mutable state and are safe for concurrent use.
//
// Usage:
//
//	d, err := metric.Euclidean.Distance([]float64{0, 0}, []float64{3, 4}) // 5
package metric
