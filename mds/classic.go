// SPDX-License-Identifier: MIT

package mds

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SVDFactors are the raw factors of the centered matrix, M = U·diag(Q)·Vᵀ.
// Q is in descending order.
type SVDFactors struct {
	Q []float64   `json:"q"`
	U [][]float64 `json:"u"`
	V [][]float64 `json:"v"`
}

// Result is the embedding, one point per input row in input order.
type Result struct {
	Points [][]float64 `json:"points"`
	SVD    SVDFactors  `json:"svd"`
}

// Classic runs classical multidimensional scaling on distances and returns
// `dims` coordinates per row.
//
// Errors:
//   - ErrBadDimensions if dims <= 0.
//   - ErrNonSquare if distances is ragged or not n×n.
//   - ErrSVDFailed if the factorization does not converge.
func Classic(distances [][]float64, dims int) (Result, error) {
	if dims <= 0 {
		return Result{}, fmt.Errorf("mds: dims=%d: %w", dims, ErrBadDimensions)
	}
	n := len(distances)
	for i, row := range distances {
		if len(row) != n {
			return Result{}, fmt.Errorf("mds: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	switch n {
	case 0:
		return Result{Points: [][]float64{}}, nil
	case 1:
		return Result{Points: [][]float64{make([]float64, dims)}}, nil
	}

	m := centered(distances)

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return Result{}, ErrSVDFailed
	}
	q := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	rank := len(q)
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dims)
		for j := 0; j < dims && j < rank; j++ {
			p[j] = u.At(i, j) * math.Sqrt(math.Max(q[j], 0))
		}
		points[i] = p
	}

	return Result{
		Points: points,
		SVD:    SVDFactors{Q: q, U: rows(&u), V: rows(&v)},
	}, nil
}

// centered returns −½·D∘D double-centered as a dense matrix.
func centered(d [][]float64) *mat.Dense {
	n := len(d)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, -0.5*d[i][j]*d[i][j])
		}
	}

	rowMean := make([]float64, n)
	colMean := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := m.At(i, j)
			rowMean[i] += x
			colMean[j] += x
		}
	}
	total := 0.0
	for i := 0; i < n; i++ {
		rowMean[i] /= float64(n)
		colMean[i] /= float64(n)
		total += rowMean[i]
	}
	total /= float64(n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, m.At(i, j)+total-rowMean[i]-colMean[j])
		}
	}

	return m
}

// rows copies a dense matrix into row slices.
func rows(d *mat.Dense) [][]float64 {
	r, c := d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(make([]float64, c), i, d)
	}

	return out
}
