// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// PointMetric computes a non-negative distance between two feature vectors
// of a single timestep.
type PointMetric interface {
	Distance(a, b []float64) (float64, error)
}

// PointFunc adapts a plain function into a PointMetric.
type PointFunc func(a, b []float64) (float64, error)

// Distance calls f(a, b).
func (f PointFunc) Distance(a, b []float64) (float64, error) { return f(a, b) }

// SequenceMetric computes a non-negative distance between two whole
// sequences of feature vectors.
type SequenceMetric interface {
	Distance(a, b [][]float64) (float64, error)
}

// SequenceFunc adapts a plain function into a SequenceMetric.
type SequenceFunc func(a, b [][]float64) (float64, error)

// Distance calls f(a, b).
func (f SequenceFunc) Distance(a, b [][]float64) (float64, error) { return f(a, b) }

// lpMetric is an L-p norm of the element-wise difference, backed by gonum.
type lpMetric struct {
	name string
	p    float64
}

// Distance returns ‖a−b‖ₚ. Vectors of different length fail with ErrShapeMismatch;
// floats.Distance would panic on them.
func (m lpMetric) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("metric: %s: %d != %d: %w", m.name, len(a), len(b), ErrShapeMismatch)
	}
	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, m.p), nil
}

// String returns the registered name of the metric.
func (m lpMetric) String() string { return m.name }

var (
	// Euclidean is the L2 distance. It is the default per-step cost of DTW.
	Euclidean PointMetric = lpMetric{name: "euclidean", p: 2}

	// Manhattan is the L1 (city-block) distance.
	Manhattan PointMetric = lpMetric{name: "manhattan", p: 1}

	// Chebyshev is the L∞ distance (largest per-axis difference).
	Chebyshev PointMetric = lpMetric{name: "chebyshev", p: math.Inf(1)}
)

var registry = map[string]PointMetric{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
}

// ByName resolves a point metric by its case-insensitive name.
func ByName(name string) (PointMetric, error) {
	m, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("metric: %q (known: %s): %w", name, strings.Join(Names(), ", "), ErrUnknownMetric)
	}

	return m, nil
}

// Names lists the registered point metric names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// LockstepEuclidean compares two sequences timestep by timestep and returns
// the square root of the summed squared differences over every channel.
// Both the number of timesteps and the per-step dimensionality must match.
var LockstepEuclidean SequenceMetric = SequenceFunc(lockstepEuclidean)

func lockstepEuclidean(a, b [][]float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("metric: lockstep: %d != %d timesteps: %w", len(a), len(b), ErrShapeMismatch)
	}
	var sum float64
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return 0, fmt.Errorf("metric: lockstep: step %d: %d != %d: %w", i, len(a[i]), len(b[i]), ErrShapeMismatch)
		}
		for j := range a[i] {
			d := a[i][j] - b[i][j]
			sum += d * d
		}
	}

	return math.Sqrt(sum), nil
}
