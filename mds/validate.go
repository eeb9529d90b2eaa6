// SPDX-License-Identifier: MIT

package mds

import (
	"fmt"
	"math"
)

// Validate checks that d is square, symmetric within eps, has a zero
// diagonal within eps and contains no negative or NaN entries. The first
// violation found in row-major order is returned.
func Validate(d [][]float64, eps float64) error {
	n := len(d)
	for i, row := range d {
		if len(row) != n {
			return fmt.Errorf("mds: row %d: %w", i, ErrNonSquare)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := d[i][j]
			if math.IsNaN(x) || x < 0 {
				return fmt.Errorf("mds: (%d,%d)=%v: %w", i, j, x, ErrNegativeDistance)
			}
			if i == j && x > eps {
				return fmt.Errorf("mds: (%d,%d)=%v: %w", i, i, x, ErrNonZeroDiagonal)
			}
			if j > i && math.Abs(x-d[j][i]) > eps {
				return fmt.Errorf("mds: (%d,%d)=%v vs %v: %w", i, j, x, d[j][i], ErrAsymmetric)
			}
		}
	}

	return nil
}
