// SPDX-License-Identifier: MIT

// Package viz renders 2-D embeddings produced by mds as PNG scatter plots
// (gonum/plot) or self-contained interactive HTML (go-echarts).
package viz

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPlanar indicates a point with fewer than two coordinates.
	ErrNotPlanar = errors.New("viz: points need at least two coordinates")

	// ErrLabelCount indicates labels and points of different length.
	ErrLabelCount = errors.New("viz: one label per point required")
)

// Params controls the rendered canvas. Width, Height, Padding and
// PointRadius are in points (1/72 inch).
type Params struct {
	Width       int
	Height      int
	Padding     int
	PointRadius float64
	ReverseX    bool
	ReverseY    bool
	Title       string
}

// DefaultParams returns a 400×400 canvas with 10pt padding and 3pt markers.
func DefaultParams() Params {
	return Params{
		Width:       400,
		Height:      400,
		Padding:     10,
		PointRadius: 3,
		Title:       "Segment embedding",
	}
}

// series is one label's points after axis reversal.
type series struct {
	label string
	xs    []float64
	ys    []float64
}

// group splits points by label in first-appearance order and applies the
// axis reversal flags. A nil labels slice puts everything in one series.
func group(points [][]float64, labels []string, p Params) ([]series, error) {
	if labels != nil && len(labels) != len(points) {
		return nil, fmt.Errorf("viz: %d labels for %d points: %w", len(labels), len(points), ErrLabelCount)
	}

	index := make(map[string]int)
	var out []series
	for i, pt := range points {
		if len(pt) < 2 {
			return nil, fmt.Errorf("viz: point %d: %w", i, ErrNotPlanar)
		}
		label := "points"
		if labels != nil {
			label = labels[i]
		}
		k, ok := index[label]
		if !ok {
			k = len(out)
			index[label] = k
			out = append(out, series{label: label})
		}
		x, y := pt[0], pt[1]
		if p.ReverseX {
			x = -x
		}
		if p.ReverseY {
			y = -y
		}
		out[k].xs = append(out[k].xs, x)
		out[k].ys = append(out[k].ys, y)
	}

	return out, nil
}
