package scatterplot_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/smoothplot/scatterplot"
	"berkotech.co/smoothplot/smooth"
)

func sample() ([]float64, []float64) {
	xs := make([]float64, 40)
	ys := make([]float64, 40)
	for i := range xs {
		xs[i] = float64(i % 20) // every x twice
		ys[i] = math.Sqrt(xs[i]) + 0.1*math.Cos(float64(5*i))
	}
	return xs, ys
}

func TestPlotScatterOnly(t *testing.T) {
	xs, ys := sample()
	fig, err := scatterplot.Plot(xs, ys, scatterplot.DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, fig.Curve)
	assert.NotNil(t, fig.Plot)
}

func TestPlotEverySmoother(t *testing.T) {
	xs, ys := sample()
	for _, m := range smooth.Methods {
		t.Run(m.String(), func(t *testing.T) {
			opts := scatterplot.DefaultOptions()
			opts.Smooth.Method = m
			opts.Smooth.Degree = 2
			opts.Curve.Label = "trend"
			fig, err := scatterplot.Plot(xs, ys, opts)
			require.NoError(t, err)
			require.NotNil(t, fig.Curve)
			assert.Equal(t, 20, fig.Curve.Len(), "one curve point per distinct x")
		})
	}
}

func TestPlotRejectsBadSmoother(t *testing.T) {
	xs, ys := sample()
	opts := scatterplot.DefaultOptions()
	opts.Smooth.Method = "loess"
	_, err := scatterplot.Plot(xs, ys, opts)
	require.ErrorIs(t, err, smooth.ErrUnknownMethod)

	opts = scatterplot.DefaultOptions()
	opts.Smooth.Method = smooth.Splines
	opts.Smooth.Degree = 6
	_, err = scatterplot.Plot(xs, ys, opts)
	require.ErrorIs(t, err, smooth.ErrDegree)
}

func TestPlotRejectsBadStyle(t *testing.T) {
	xs, ys := sample()
	cases := []struct {
		name   string
		modify func(*scatterplot.Options)
		want   error
	}{
		{"color", func(o *scatterplot.Options) { o.Scatter.Color = "not-a-color" }, scatterplot.ErrColor},
		{"hex", func(o *scatterplot.Options) { o.Curve.Color = "#12345" }, scatterplot.ErrColor},
		{"marker", func(o *scatterplot.Options) { o.Scatter.Marker = "*" }, scatterplot.ErrMarker},
		{"linestyle", func(o *scatterplot.Options) { o.Curve.LineStyle = "~" }, scatterplot.ErrLineStyle},
		{"size", func(o *scatterplot.Options) { o.Width = 0 }, scatterplot.ErrFigureSize},
		{"ylimit", func(o *scatterplot.Options) { o.YLimit = &scatterplot.Range{Min: 2, Max: 1} }, scatterplot.ErrYLimit},
		{"alpha", func(o *scatterplot.Options) { o.Scatter.Alpha = 1.5 }, scatterplot.ErrAlpha},
		{"cmap", func(o *scatterplot.Options) {
			o.Scatter.ColorValues = make([]float64, len(xs))
			o.Scatter.ColorMap = "jet"
		}, scatterplot.ErrColorMap},
		{"cvalues", func(o *scatterplot.Options) { o.Scatter.ColorValues = []float64{1} }, scatterplot.ErrColorMap},
		{"vrange", func(o *scatterplot.Options) {
			lo, hi := 5.0, 1.0
			o.Scatter.ColorValues = make([]float64, len(xs))
			o.Scatter.VMin, o.Scatter.VMax = &lo, &hi
		}, scatterplot.ErrColorMap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := scatterplot.DefaultOptions()
			tc.modify(&opts)
			_, err := scatterplot.Plot(xs, ys, opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPlotLengthMismatch(t *testing.T) {
	_, err := scatterplot.Plot([]float64{1, 2}, []float64{1}, scatterplot.DefaultOptions())
	require.ErrorIs(t, err, smooth.ErrLengthMismatch)

	_, err = scatterplot.Plot(nil, nil, scatterplot.DefaultOptions())
	require.ErrorIs(t, err, smooth.ErrTooFewPoints)
}

func TestPlotStyledRender(t *testing.T) {
	xs, ys := sample()
	vmin := 0.0
	opts := scatterplot.DefaultOptions()
	opts.Title = "sqrt"
	opts.XLabel = "x"
	opts.YLabel = "y"
	opts.XTicks = []float64{0, 5, 10, 15}
	opts.YLimit = &scatterplot.Range{Min: -1, Max: 6}
	opts.Grid = true
	opts.Smooth.Method = smooth.Lowess
	opts.Scatter.Marker = "D"
	opts.Scatter.ColorValues = ys
	opts.Scatter.VMin = &vmin
	opts.Scatter.Alpha = 0.5
	opts.Scatter.EdgeColor = "k"
	opts.Curve.LineStyle = "--"
	opts.Curve.Color = "#ff000080"

	fig, err := scatterplot.Plot(xs, ys, opts)
	require.NoError(t, err)
	assert.Equal(t, -1.0, fig.Plot.Y.Min)
	assert.Equal(t, 6.0, fig.Plot.Y.Max)

	png, err := fig.Bytes("png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, fig.Render(&svg, "svg"))
	assert.Contains(t, svg.String(), "<svg")

	_, err = fig.Bytes("bmp")
	assert.Error(t, err)
}

func TestPlotTimes(t *testing.T) {
	start := time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC)
	ts := make([]time.Time, 48)
	ys := make([]float64, len(ts))
	for i := range ts {
		ts[i] = start.AddDate(0, i, 0)
		ys[i] = float64(i) + 3*math.Sin(float64(i))
	}
	opts := scatterplot.DefaultOptions()
	opts.Smooth.Method = smooth.Splines
	opts.Smooth.Degree = 3
	opts.Smooth.SplineSmooth = 100

	fig, err := scatterplot.PlotTimes(ts, ys, opts)
	require.NoError(t, err)
	require.NotNil(t, fig.Curve)
	assert.InDelta(t, scatterplot.Days(ts[0]), fig.Curve.X[0], 1e-9)

	ticks := fig.Plot.X.Tick.Marker.Ticks(fig.Plot.X.Min, fig.Plot.X.Max)
	var labels []string
	for _, tk := range ticks {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	assert.Equal(t, []string{"2016", "2017", "2018", "2019"}, labels)

	opts.XTicks = []float64{2016, 2018}
	fig, err = scatterplot.PlotTimes(ts, ys, opts)
	require.NoError(t, err)
	ticks = fig.Plot.X.Tick.Marker.Ticks(fig.Plot.X.Min, fig.Plot.X.Max)
	require.Len(t, ticks, 2)
	assert.Equal(t, "2018", ticks[1].Label)
}

func TestFigureSave(t *testing.T) {
	xs, ys := sample()
	opts := scatterplot.DefaultOptions()
	opts.Smooth.Method = smooth.Linear
	fig, err := scatterplot.Plot(xs, ys, opts)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "fig.svg")
	require.NoError(t, fig.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, fig.Save(filepath.Join(dir, "fig.gif")))
}

func TestDaysRoundTrip(t *testing.T) {
	ts := time.Date(2021, time.July, 14, 12, 0, 0, 0, time.UTC)
	d := scatterplot.Days(ts)
	assert.InDelta(t, 18822.5, d, 1e-9)
	assert.True(t, ts.Equal(scatterplot.DayTime(d)))
}
