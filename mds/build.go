// SPDX-License-Identifier: MIT

package mds

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/segmatch/metric"
	"golang.org/x/sync/errgroup"
)

// BuildOption configures BuildDistanceMatrix.
type BuildOption func(*buildConfig)

type buildConfig struct {
	concurrency int
}

// WithConcurrency bounds the number of distance evaluations in flight.
// Defaults to runtime.NumCPU().
func WithConcurrency(n int) BuildOption {
	return func(c *buildConfig) { c.concurrency = n }
}

// BuildDistanceMatrix evaluates fn on every unordered pair of seqs and
// returns the symmetric n×n matrix with a zero diagonal. Each pair is
// computed once and mirrored.
//
// Work fans out over an errgroup; the first metric error cancels the
// remaining pairs and is returned wrapped with the pair indices. A cancelled
// ctx yields ctx.Err().
func BuildDistanceMatrix(ctx context.Context, seqs [][][]float64, fn metric.SequenceMetric, opts ...BuildOption) ([][]float64, error) {
	cfg := buildConfig{concurrency: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.concurrency < 1 {
		return nil, fmt.Errorf("mds: concurrency=%d: %w", cfg.concurrency, ErrBadConcurrency)
	}
	if fn == nil {
		return nil, ErrNilMetric
	}

	n := len(seqs)
	cells := make([]float64, n*n)
	d := make([][]float64, n)
	for i := range d {
		d[i] = cells[i*n : (i+1)*n]
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

pairs:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if gctx.Err() != nil {
				break pairs
			}
			i, j := i, j // per-iteration copies (go directive predates Go 1.22 loopvar semantics)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := fn.Distance(seqs[i], seqs[j])
				if err != nil {
					return fmt.Errorf("mds: distance (%d,%d): %w", i, j, err)
				}
				// each goroutine owns two distinct cells
				d[i][j], d[j][i] = v, v

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return d, nil
}
