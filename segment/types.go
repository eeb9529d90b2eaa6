// SPDX-License-Identifier: MIT

// Package segment defines the labeled time-series data handled by segmatch
// and the helpers that turn raw sensor samples into feature sequences.
//
// A Sequence is an ordered list of FeatureVectors, one per timestep. Two
// sequences compared by DTW may differ in length, but every vector taking
// part in one comparison must have the same dimensionality.
//
// Ownership: segments are produced by the caller (a recording session, a
// corpus file) and handed to the engines by value. No package in segmatch
// mutates the vectors of a Sequence it receives.
package segment

import (
	"errors"
	"fmt"
	"math"
)

// FeatureVector is the feature tuple of one timestep (x/y/z, or a flattened
// skeleton).
type FeatureVector = []float64

// Sequence is one time-series segment.
type Sequence = [][]float64

// LabeledSegment is a Sequence together with its class label.
type LabeledSegment struct {
	Label string   `json:"label" yaml:"label"`
	Data  Sequence `json:"data" yaml:"data"`
}

var (
	// ErrEmptyLabel indicates a segment without a class label.
	ErrEmptyLabel = errors.New("segment: empty label")

	// ErrEmptySequence indicates a segment with no timesteps.
	ErrEmptySequence = errors.New("segment: empty sequence")

	// ErrRaggedSequence indicates vectors of differing dimensionality in one sequence.
	ErrRaggedSequence = errors.New("segment: inconsistent vector dimensions")

	// ErrNonFinite indicates a NaN or ±Inf feature value.
	ErrNonFinite = errors.New("segment: NaN or Inf value")

	// ErrIncompleteFrame indicates a pose frame with fewer landmarks than required.
	ErrIncompleteFrame = errors.New("segment: incomplete pose frame")

	// ErrBadWindow indicates an invalid [t0, t1] slice window.
	ErrBadWindow = errors.New("segment: invalid time window")
)

// Dim returns the dimensionality of the first vector, or 0 for an empty sequence.
func Dim(seq Sequence) int {
	if len(seq) == 0 {
		return 0
	}

	return len(seq[0])
}

// ValidateSequence checks that seq is non-empty, has one dimensionality and
// holds only finite values.
func ValidateSequence(seq Sequence) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	dim := len(seq[0])
	for i, v := range seq {
		if len(v) != dim {
			return fmt.Errorf("segment: step %d has %d values, want %d: %w", i, len(v), dim, ErrRaggedSequence)
		}
		for j, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("segment: step %d value %d: %w", i, j, ErrNonFinite)
			}
		}
	}

	return nil
}

// Validate checks the label and the sequence of s.
func (s LabeledSegment) Validate() error {
	if s.Label == "" {
		return ErrEmptyLabel
	}
	if err := ValidateSequence(s.Data); err != nil {
		return fmt.Errorf("segment %q: %w", s.Label, err)
	}

	return nil
}

// Clone returns a deep copy of seq, so derived structures never alias the
// caller's vectors.
func Clone(seq Sequence) Sequence {
	if seq == nil {
		return nil
	}
	out := make(Sequence, len(seq))
	for i, v := range seq {
		out[i] = append(FeatureVector(nil), v...)
	}

	return out
}

// Sequences extracts the data of each segment, in order.
func Sequences(segs []LabeledSegment) []Sequence {
	out := make([]Sequence, len(segs))
	for i, s := range segs {
		out[i] = s.Data
	}

	return out
}

// Labels extracts the label of each segment, in order.
func Labels(segs []LabeledSegment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Label
	}

	return out
}
