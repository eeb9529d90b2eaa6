// SPDX-License-Identifier: MIT

// Package knn classifies time-series segments by k-nearest-neighbour vote
// over a labeled corpus, using any metric.SequenceMetric (typically DTW).
//
// Decision rule:
//  1. distance = fn(query, segment) for every corpus segment;
//  2. neighbours farther than maxDistance are discarded;
//  3. the rest is sorted ascending (stable) and cut to the first k;
//  4. no survivor ⇒ no match (ok == false), which is a valid outcome;
//  5. otherwise the label with most votes wins. Equal vote counts are
//     settled by each label's closest surviving neighbour, then by label
//     order, never by map iteration order.
//
// Model is the persistable form of a trained configuration: k, maxDistance,
// the distance metric name, the downsample ratio and the (downsampled)
// segments. Downsampling happens once, in NewModel.
//
// Everything here is a pure function of its inputs; a Model is read-only
// after construction and may be shared between goroutines.
package knn
