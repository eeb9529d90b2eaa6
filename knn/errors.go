// SPDX-License-Identifier: MIT

package knn

import "errors"

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("knn: k must be positive")

	// ErrInvalidMaxDistance is returned when maxDistance is negative or NaN.
	ErrInvalidMaxDistance = errors.New("knn: maxDistance must be >= 0")

	// ErrInvalidDownsampleRatio is returned when the ratio is outside (0, 1].
	ErrInvalidDownsampleRatio = errors.New("knn: downsample ratio must be in (0, 1]")

	// ErrInvalidSegment is returned when a corpus segment has no label or no data.
	ErrInvalidSegment = errors.New("knn: invalid segment")

	// ErrNilMetric is returned when no distance function is supplied.
	ErrNilMetric = errors.New("knn: nil distance function")

	// ErrNilModel is returned when a nil *Model is used.
	ErrNilModel = errors.New("knn: nil model")
)
