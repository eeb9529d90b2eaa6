// SPDX-License-Identifier: MIT

package knn

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/segmatch/metric"
	"github.com/katalvlaran/segmatch/segment"
)

// Neighbor is one retained corpus segment of a classification call.
type Neighbor struct {
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
}

// validateParams checks the k / maxDistance / fn triple shared by every entry point.
func validateParams(k int, maxDistance float64, fn metric.SequenceMetric) error {
	if k <= 0 {
		return fmt.Errorf("knn: k=%d: %w", k, ErrInvalidK)
	}
	if maxDistance < 0 || math.IsNaN(maxDistance) {
		return fmt.Errorf("knn: maxDistance=%v: %w", maxDistance, ErrInvalidMaxDistance)
	}
	if fn == nil {
		return ErrNilMetric
	}

	return nil
}

// Nearest returns at most k corpus neighbours of query whose distance is
// <= maxDistance, closest first. Equal distances keep corpus order.
// The first error from fn is returned wrapped; no neighbour list is produced then.
func Nearest(query segment.Sequence, corpus []segment.LabeledSegment, k int, maxDistance float64, fn metric.SequenceMetric) ([]Neighbor, error) {
	if err := validateParams(k, maxDistance, fn); err != nil {
		return nil, err
	}

	neighbors := make([]Neighbor, 0, len(corpus))
	for i, seg := range corpus {
		d, err := fn.Distance(query, seg.Data)
		if err != nil {
			return nil, fmt.Errorf("knn: distance to segment %d (%q): %w", i, seg.Label, err)
		}
		// NaN never passes this test.
		if d <= maxDistance {
			neighbors = append(neighbors, Neighbor{Label: seg.Label, Distance: d})
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}

	return neighbors, nil
}

// tally is the vote state of one label.
type tally struct {
	label   string
	votes   int
	closest float64
}

// Vote applies the majority rule to already-selected neighbours.
// It returns ok == false when neighbors is empty.
//
// Ties on vote count go to the label whose own closest neighbour is nearer;
// a remaining tie goes to the lexicographically smaller label.
func Vote(neighbors []Neighbor) (label string, ok bool) {
	if len(neighbors) == 0 {
		return "", false
	}

	// first-appearance order keeps the scan deterministic
	index := make(map[string]int, len(neighbors))
	tallies := make([]tally, 0, len(neighbors))
	for _, n := range neighbors {
		idx, seen := index[n.Label]
		if !seen {
			index[n.Label] = len(tallies)
			tallies = append(tallies, tally{label: n.Label, votes: 1, closest: n.Distance})
			continue
		}
		tallies[idx].votes++
		if n.Distance < tallies[idx].closest {
			tallies[idx].closest = n.Distance
		}
	}

	best := tallies[0]
	for _, t := range tallies[1:] {
		switch {
		case t.votes > best.votes:
			best = t
		case t.votes < best.votes:
		case t.closest < best.closest:
			best = t
		case t.closest == best.closest && t.label < best.label:
			best = t
		}
	}

	return best.label, true
}

// Classify labels query by k-nearest-neighbour vote over corpus.
// ok == false means no corpus segment lies within maxDistance.
func Classify(query segment.Sequence, corpus []segment.LabeledSegment, k int, maxDistance float64, fn metric.SequenceMetric) (label string, ok bool, err error) {
	neighbors, err := Nearest(query, corpus, k, maxDistance, fn)
	if err != nil {
		return "", false, err
	}
	label, ok = Vote(neighbors)

	return label, ok, nil
}
