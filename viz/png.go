// SPDX-License-Identifier: MIT

package viz

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WritePNG draws one scatter series per label, with a legend, and writes
// the PNG image to w.
func WritePNG(w io.Writer, points [][]float64, labels []string, p Params) error {
	groups, err := group(points, labels, p)
	if err != nil {
		return err
	}

	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = "dim 1"
	pl.Y.Label.Text = "dim 2"
	pl.X.Padding = vg.Points(float64(p.Padding))
	pl.Y.Padding = vg.Points(float64(p.Padding))
	pl.Add(plotter.NewGrid())
	pl.Legend.Top = true

	for i, g := range groups {
		xys := make(plotter.XYs, len(g.xs))
		for j := range g.xs {
			xys[j] = plotter.XY{X: g.xs[j], Y: g.ys[j]}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("viz: series %q: %w", g.label, err)
		}
		sc.GlyphStyle.Radius = vg.Points(p.PointRadius)
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		pl.Add(sc)
		pl.Legend.Add(g.label, sc)
	}

	wt, err := pl.WriterTo(vg.Points(float64(p.Width)), vg.Points(float64(p.Height)), "png")
	if err != nil {
		return fmt.Errorf("viz: png canvas: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("viz: write png: %w", err)
	}

	return nil
}
