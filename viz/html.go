// SPDX-License-Identifier: MIT

package viz

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// htmlSymbolSize is the echarts marker diameter in pixels.
const htmlSymbolSize = 8

// WriteHTML renders an interactive echarts scatter page to w, one series
// per label. PointRadius and Padding apply to WritePNG only.
func WriteHTML(w io.Writer, points [][]float64, labels []string, p Params) error {
	groups, err := group(points, labels, p)
	if err != nil {
		return err
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: p.Title,
			Width:     fmt.Sprintf("%dpx", p.Width),
			Height:    fmt.Sprintf("%dpx", p.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: p.Title, Subtitle: fmt.Sprintf("points=%d", len(points))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "dim 1", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "dim 2", NameLocation: "middle", NameGap: 30}),
	)

	for _, g := range groups {
		data := make([]opts.ScatterData, len(g.xs))
		for j := range g.xs {
			data[j] = opts.ScatterData{Value: []interface{}{g.xs[j], g.ys[j]}, Name: g.label}
		}
		scatter.AddSeries(g.label, data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: htmlSymbolSize}))
	}

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("viz: render html: %w", err)
	}

	return nil
}
