// SPDX-License-Identifier: MIT

package mds

import "errors"

var (
	// ErrBadDimensions is returned when the requested embedding dimension is <= 0.
	ErrBadDimensions = errors.New("mds: dimensions must be > 0")

	// ErrNonSquare indicates a ragged or non-square distance matrix.
	ErrNonSquare = errors.New("mds: distance matrix must be square")

	// ErrSVDFailed indicates the decomposition did not converge.
	ErrSVDFailed = errors.New("mds: SVD factorization failed")

	// ErrAsymmetric is reported by Validate when D[i][j] != D[j][i].
	ErrAsymmetric = errors.New("mds: distance matrix is not symmetric")

	// ErrNonZeroDiagonal is reported by Validate when D[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("mds: distance matrix has a non-zero diagonal")

	// ErrNegativeDistance is reported by Validate for entries < 0 or NaN.
	ErrNegativeDistance = errors.New("mds: distance matrix has a negative or NaN entry")

	// ErrBadConcurrency is returned by BuildDistanceMatrix for a limit < 1.
	ErrBadConcurrency = errors.New("mds: concurrency must be >= 1")

	// ErrNilMetric is returned by BuildDistanceMatrix when no metric is given.
	ErrNilMetric = errors.New("mds: nil distance metric")
)
