package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/smoothplot/config"
	"berkotech.co/smoothplot/scatterplot"
	"berkotech.co/smoothplot/smooth"
)

const full = `
smoother: lowess
avoid_dups_for_smooth: false
low_frac: 0.3
low_it: 0
title: Weight by height
x_label: height
y_label: weight
y_limit: [40, 140]
figsize: [8, 6]
grid: true
scatter:
  marker: s
  marker_size: 20
  color: steelblue
  alpha: 0.5
curve:
  color: firebrick
  line_style: "--"
  label: trend
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(full))
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, smooth.Lowess, opts.Smooth.Method)
	assert.False(t, opts.Smooth.AvoidDuplicates)
	assert.Equal(t, 0.3, opts.Smooth.LowessFrac)
	assert.Equal(t, 0, opts.Smooth.LowessIter)
	assert.Equal(t, "Weight by height", opts.Title)
	assert.Equal(t, &scatterplot.Range{Min: 40, Max: 140}, opts.YLimit)
	assert.Equal(t, 8.0, opts.Width)
	assert.Equal(t, 6.0, opts.Height)
	assert.True(t, opts.Grid)
	assert.Equal(t, "s", opts.Scatter.Marker)
	assert.Equal(t, 20.0, opts.Scatter.MarkerSize)
	assert.Equal(t, "--", opts.Curve.LineStyle)
	assert.Equal(t, "trend", opts.Curve.Label)
	// untouched keys keep their defaults
	assert.Equal(t, 2.0, opts.Curve.LineWidth)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, scatterplot.DefaultOptions(), opts)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown smoother": "smoother: kernel",
		"frac above one":   "low_frac: 1.5",
		"negative iter":    "low_it: -1",
		"short y limit":    "y_limit: [1]",
		"zero figure":      "figsize: [0, 4]",
		"bad marker":       "scatter:\n  marker: '*'",
		"bad line style":   "curve:\n  line_style: wavy",
		"spline degree":    "smoother: splines\ndegree: 7",
		"spline degree 0":  "smoother: splines\ndegree: 0",
		"poly degree 0":    "smoother: poly\ndegree: 0",
		"bad color":        "scatter:\n  color: '#12'",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParseSplineAlias(t *testing.T) {
	cfg, err := config.Parse([]byte("smoother: spline\ndegree: 2\n"))
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, smooth.Splines, opts.Smooth.Method)
	assert.Equal(t, 2, opts.Smooth.Degree)
}

func TestParseUnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("colour: red"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("smoother: polyfit\ndegree: 3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, smooth.Poly, opts.Smooth.Method)
	assert.Equal(t, 3, opts.Smooth.Degree)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
