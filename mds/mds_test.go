package mds_test

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/segmatch/dtw"
	"github.com/katalvlaran/segmatch/mds"
	"github.com/katalvlaran/segmatch/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairwise builds the Euclidean distance matrix of pts.
func pairwise(pts [][]float64) [][]float64 {
	d := make([][]float64, len(pts))
	for i := range pts {
		d[i] = make([]float64, len(pts))
		for j := range pts {
			d[i][j], _ = metric.Euclidean.Distance(pts[i], pts[j])
		}
	}
	return d
}

// assertPreserved checks that the embedding reproduces every input distance.
func assertPreserved(t *testing.T, want [][]float64, got [][]float64, tol float64) {
	t.Helper()
	recovered := pairwise(got)
	for i := range want {
		for j := range want {
			assert.InDelta(t, want[i][j], recovered[i][j], tol, "pair (%d,%d)", i, j)
		}
	}
}

func TestClassic_Colinear(t *testing.T) {
	d := pairwise([][]float64{{0}, {1}, {2}, {3}})

	res, err := mds.Classic(d, 2)
	require.NoError(t, err)
	require.Len(t, res.Points, 4)
	assertPreserved(t, d, res.Points, 1e-6)

	// neighbours on the line stay one unit apart
	for i := 1; i < 4; i++ {
		dist, _ := metric.Euclidean.Distance(res.Points[i-1], res.Points[i])
		assert.InDelta(t, 1.0, dist, 1e-6)
	}
}

func TestClassic_Square(t *testing.T) {
	d := pairwise([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	res, err := mds.Classic(d, 2)
	require.NoError(t, err)
	assertPreserved(t, d, res.Points, 1e-6)
}

func TestClassic_ThreeDimensionalShape(t *testing.T) {
	d := pairwise([][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}})

	res, err := mds.Classic(d, 3)
	require.NoError(t, err)
	for _, p := range res.Points {
		assert.Len(t, p, 3)
	}
	assertPreserved(t, d, res.Points, 1e-6)
}

func TestClassic_IdenticalPoints(t *testing.T) {
	d := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}

	res, err := mds.Classic(d, 2)
	require.NoError(t, err)
	require.Len(t, res.Points, 3)
	for _, p := range res.Points {
		for _, x := range p {
			assert.False(t, math.IsNaN(x))
			assert.InDelta(t, 0.0, x, 1e-6)
		}
	}
}

func TestClassic_Degenerate(t *testing.T) {
	res, err := mds.Classic(nil, 2)
	require.NoError(t, err)
	assert.Empty(t, res.Points)
	assert.Empty(t, res.SVD.Q)

	res, err = mds.Classic([][]float64{{0}}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}}, res.Points)

	res, err = mds.Classic([][]float64{{0}}, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0, 0}}, res.Points)
}

func TestClassic_TwoPoints(t *testing.T) {
	res, err := mds.Classic([][]float64{{0, 3}, {3, 0}}, 2)
	require.NoError(t, err)
	require.Len(t, res.Points, 2)
	assert.InDelta(t, 3.0, math.Abs(res.Points[0][0]-res.Points[1][0]), 1e-6)
	assert.InDelta(t, 0.0, res.Points[0][1], 1e-6)
	assert.InDelta(t, 0.0, res.Points[1][1], 1e-6)
}

func TestClassic_DimsBeyondRank(t *testing.T) {
	d := pairwise([][]float64{{0}, {2}, {5}})

	res, err := mds.Classic(d, 5)
	require.NoError(t, err)
	for _, p := range res.Points {
		require.Len(t, p, 5)
		assert.InDelta(t, 0.0, p[3], 1e-9, "only three singular values exist")
		assert.Equal(t, 0.0, p[4])
	}
	assertPreserved(t, d, res.Points, 1e-6)
}

func TestClassic_Factors(t *testing.T) {
	d := pairwise([][]float64{{0, 0}, {4, 0}, {0, 3}})

	res, err := mds.Classic(d, 2)
	require.NoError(t, err)
	require.Len(t, res.SVD.Q, 3)
	assert.Len(t, res.SVD.U, 3)
	assert.Len(t, res.SVD.V, 3)
	for k := 1; k < len(res.SVD.Q); k++ {
		assert.GreaterOrEqual(t, res.SVD.Q[k-1], res.SVD.Q[k], "singular values descend")
	}
}

func TestClassic_Errors(t *testing.T) {
	_, err := mds.Classic([][]float64{{0}}, 0)
	assert.ErrorIs(t, err, mds.ErrBadDimensions)

	_, err = mds.Classic([][]float64{{0, 1}, {1}}, 2)
	assert.ErrorIs(t, err, mds.ErrNonSquare)

	_, err = mds.Classic([][]float64{{0, 1, 2}, {1, 0, 3}}, 2)
	assert.ErrorIs(t, err, mds.ErrNonSquare)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, mds.Validate(nil, 0))
	assert.NoError(t, mds.Validate([][]float64{{0, 1}, {1, 0}}, 0))

	cases := []struct {
		name string
		d    [][]float64
		want error
	}{
		{"ragged", [][]float64{{0, 1}, {1}}, mds.ErrNonSquare},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, mds.ErrAsymmetric},
		{"diagonal", [][]float64{{1, 1}, {1, 0}}, mds.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, mds.ErrNegativeDistance},
		{"nan", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, mds.ErrNegativeDistance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mds.Validate(tc.d, 1e-9), tc.want)
		})
	}

	assert.NoError(t, mds.Validate([][]float64{{0, 1}, {1 + 1e-12, 0}}, 1e-9), "within eps")
}

var gestures = [][][]float64{
	{{0}, {1}, {2}, {3}},
	{{0}, {0}, {1}, {2}, {3}},
	{{3}, {2}, {1}, {0}},
	{{1}, {1}, {1}},
	{{5}, {4}, {6}},
}

func TestBuildDistanceMatrix_MatchesSequential(t *testing.T) {
	fn := dtw.Metric(nil)

	for _, workers := range []int{1, 3, 16} {
		got, err := mds.BuildDistanceMatrix(context.Background(), gestures, fn, mds.WithConcurrency(workers))
		require.NoError(t, err)
		require.Len(t, got, len(gestures))

		for i := range gestures {
			for j := range gestures {
				want := 0.0
				if i != j {
					want, err = fn.Distance(gestures[i], gestures[j])
					require.NoError(t, err)
				}
				assert.Equal(t, want, got[i][j], "workers=%d (%d,%d)", workers, i, j)
			}
		}
		assert.NoError(t, mds.Validate(got, 0))
	}
}

func TestBuildDistanceMatrix_EachPairOnce(t *testing.T) {
	var calls atomic.Int64
	fn := metric.SequenceFunc(func(a, b [][]float64) (float64, error) {
		calls.Add(1)
		return 1, nil
	})

	_, err := mds.BuildDistanceMatrix(context.Background(), gestures, fn)
	require.NoError(t, err)
	n := int64(len(gestures))
	assert.Equal(t, n*(n-1)/2, calls.Load())
}

func TestBuildDistanceMatrix_Errors(t *testing.T) {
	boom := errors.New("boom")
	failing := metric.SequenceFunc(func(a, b [][]float64) (float64, error) { return 0, boom })

	_, err := mds.BuildDistanceMatrix(context.Background(), gestures, failing, mds.WithConcurrency(2))
	assert.ErrorIs(t, err, boom)

	_, err = mds.BuildDistanceMatrix(context.Background(), gestures, nil)
	assert.ErrorIs(t, err, mds.ErrNilMetric)

	_, err = mds.BuildDistanceMatrix(context.Background(), gestures, dtw.Metric(nil), mds.WithConcurrency(0))
	assert.ErrorIs(t, err, mds.ErrBadConcurrency)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = mds.BuildDistanceMatrix(ctx, gestures, dtw.Metric(nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildDistanceMatrix_Trivial(t *testing.T) {
	d, err := mds.BuildDistanceMatrix(context.Background(), nil, dtw.Metric(nil))
	require.NoError(t, err)
	assert.Empty(t, d)

	d, err = mds.BuildDistanceMatrix(context.Background(), gestures[:1], dtw.Metric(nil))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, d)
}
