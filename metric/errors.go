// SPDX-License-Identifier: MIT

package metric

import "errors"

var (
	// ErrShapeMismatch is returned when two operands of a length-sensitive
	// metric differ in dimensionality (or, for lock-step sequence metrics,
	// in the number of timesteps).
	ErrShapeMismatch = errors.New("metric: shape mismatch")

	// ErrUnknownMetric is returned by ByName for an unregistered name.
	ErrUnknownMetric = errors.New("metric: unknown metric")
)
