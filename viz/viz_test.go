package viz_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/katalvlaran/segmatch/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	points = [][]float64{{-1.5, 0}, {1.5, 0}, {0.2, 0.7}, {0.1, -0.4}}
	labels = []string{"wave", "wave", "clap", "circle"}
)

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, viz.WritePNG(&buf, points, labels, viz.DefaultParams()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
	assert.Positive(t, img.Bounds().Dy())
}

func TestWritePNG_Unlabeled(t *testing.T) {
	p := viz.DefaultParams()
	p.ReverseX, p.ReverseY = true, true

	var buf bytes.Buffer
	require.NoError(t, viz.WritePNG(&buf, points, nil, p))
	assert.NotZero(t, buf.Len())
}

func TestWriteHTML(t *testing.T) {
	p := viz.DefaultParams()
	p.Title = "gestures"

	var buf bytes.Buffer
	require.NoError(t, viz.WriteHTML(&buf, points, labels, p))

	html := buf.String()
	assert.True(t, strings.Contains(html, "<html"), "a full page is rendered")
	for _, l := range []string{"wave", "clap", "circle", "gestures"} {
		assert.Contains(t, html, l)
	}
}

func TestWrite_Errors(t *testing.T) {
	p := viz.DefaultParams()
	var buf bytes.Buffer

	assert.ErrorIs(t, viz.WritePNG(&buf, [][]float64{{1}}, nil, p), viz.ErrNotPlanar)
	assert.ErrorIs(t, viz.WriteHTML(&buf, [][]float64{{1}}, nil, p), viz.ErrNotPlanar)
	assert.ErrorIs(t, viz.WritePNG(&buf, points, labels[:2], p), viz.ErrLabelCount)
	assert.ErrorIs(t, viz.WriteHTML(&buf, points, labels[:2], p), viz.ErrLabelCount)
}
