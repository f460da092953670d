package scatterplot

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"berkotech.co/smoothplot/smooth"
)

// Plot draws ys against xs and, when opts.Smooth.Method is set, the fitted
// smoothing curve.
func Plot(xs, ys []float64, opts Options) (*Figure, error) {
	return build(xs, ys, opts, false)
}

// PlotTimes is Plot for dated observations. The x axis is measured in days
// since the Unix epoch and labelled with years; opts.XTicks are years.
func PlotTimes(ts []time.Time, ys []float64, opts Options) (*Figure, error) {
	xs := make([]float64, len(ts))
	for i, t := range ts {
		xs[i] = Days(t)
	}
	return build(xs, ys, opts, true)
}

func build(xs, ys []float64, opts Options, dated bool) (*Figure, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if _, err := smooth.Prepare(xs, ys, nil, false); err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: nothing to plot", smooth.ErrTooFewPoints)
	}

	fig := &Figure{
		Plot:   plot.New(),
		Width:  vg.Length(opts.Width) * vg.Inch,
		Height: vg.Length(opts.Height) * vg.Inch,
	}
	p := fig.Plot
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	if opts.Grid {
		p.Add(plotter.NewGrid())
	}

	sc, err := newScatter(xs, ys, opts.Scatter)
	if err != nil {
		return nil, err
	}
	p.Add(sc)

	if opts.Smooth.Method != smooth.None {
		curve, err := smooth.Fit(xs, ys, opts.Smooth)
		if err != nil {
			return nil, err
		}
		line, err := newCurveLine(curve, opts.Curve)
		if err != nil {
			return nil, err
		}
		p.Add(line)
		if opts.Curve.Label != "" {
			p.Legend.Add(opts.Curve.Label, line)
			p.Legend.Top = true
		}
		fig.Curve = curve
	}

	switch {
	case len(opts.XTicks) > 0:
		p.X.Tick.Marker = constantTicks(opts.XTicks, dated)
	case dated:
		p.X.Tick.Marker = timeTicker()
	}
	if opts.YLimit != nil {
		p.Y.Min, p.Y.Max = opts.YLimit.Min, opts.YLimit.Max
	}

	slog.Debug("scatter plot built",
		"points", len(xs),
		"smoother", opts.Smooth.Method.String(),
		"dated", dated)
	return fig, nil
}

func newScatter(xs, ys []float64, style ScatterStyle) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}

	fill, err := parseColor(style.Color, style.Alpha)
	if err != nil {
		return nil, err
	}
	if fill == nil {
		fill = color.Black
	}
	edge, err := parseColor(style.EdgeColor, style.Alpha)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  fill,
		Radius: markerRadius(style.MarkerSize, markers[style.Marker]),
		Shape:  newMarker(style.Marker, edge, style.LineWidths),
	}

	if style.ColorValues == nil {
		return sc, nil
	}
	if len(style.ColorValues) != len(xs) {
		return nil, fmt.Errorf("%w: %d color values for %d points", ErrColorMap, len(style.ColorValues), len(xs))
	}
	cm, err := colorMap(style.ColorMap)
	if err != nil {
		return nil, err
	}
	lo, hi := floats.Min(style.ColorValues), floats.Max(style.ColorValues)
	if style.VMin != nil {
		lo = *style.VMin
	}
	if style.VMax != nil {
		hi = *style.VMax
	}
	if !(lo < hi) {
		hi = lo + 1
	}
	cm.SetMin(lo)
	cm.SetMax(hi)

	colors := make([]color.Color, len(xs))
	for i, v := range style.ColorValues {
		switch {
		case v < lo:
			v = lo
		case v > hi:
			v = hi
		}
		c, err := cm.At(v)
		if err != nil {
			return nil, fmt.Errorf("%w: value %v: %v", ErrColorMap, style.ColorValues[i], err)
		}
		colors[i] = withAlpha(c, style.Alpha)
	}
	base := sc.GlyphStyle
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		s := base
		s.Color = colors[i]
		return s
	}
	return sc, nil
}

func newCurveLine(curve *smooth.Curve, style CurveStyle) (*plotter.Line, error) {
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	c, err := parseColor(style.Color, style.Alpha)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = color.Black
	}
	width := vg.Points(style.LineWidth)
	if style.LineWidth <= 0 {
		width = vg.Points(2)
	}
	ds, err := dashes(style.LineStyle, width)
	if err != nil {
		return nil, err
	}
	line.LineStyle = draw.LineStyle{Color: c, Width: width, Dashes: ds}
	return line, nil
}
