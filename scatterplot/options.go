package scatterplot

import (
	"fmt"
	"math"

	"berkotech.co/smoothplot/smooth"
)

// Default figure size in inches.
const (
	DefaultWidth  = 6.4
	DefaultHeight = 4.8
)

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// ScatterStyle controls the raw data points.
type ScatterStyle struct {
	// MarkerSize is the marker area in points squared.
	MarkerSize float64
	// Marker is one of "o", ".", "s", "^", "v", "D", "+", "x".
	Marker string
	// Color is a color name or "#rrggbb[aa]". Ignored when ColorValues is set.
	Color string

	// ColorValues assigns one value per point, mapped through ColorMap
	// between VMin and VMax (the value range when nil).
	ColorValues []float64
	ColorMap    string
	VMin, VMax  *float64

	// Alpha is the marker opacity; 0 leaves the colors opaque.
	Alpha float64

	// EdgeColor outlines filled markers with LineWidths points.
	EdgeColor  string
	LineWidths float64
}

// CurveStyle controls the smoothing curve.
type CurveStyle struct {
	Color string
	// Alpha is the line opacity; 0 leaves the color opaque.
	Alpha float64
	// LineStyle is "-", "--", ":" or "-.".
	LineStyle string
	// LineWidth in points.
	LineWidth float64
	// Label, when set, adds a legend entry for the curve.
	Label string
}

// Options configures Plot and PlotTimes.
type Options struct {
	Smooth smooth.Options

	Title, XLabel, YLabel string

	// XTicks places x ticks at the given values. For dated data the values
	// are years.
	XTicks []float64
	// YLimit fixes the y axis range.
	YLimit *Range

	// Width and Height of the figure in inches.
	Width, Height float64

	// Grid draws grid lines behind the points.
	Grid bool

	Scatter ScatterStyle
	Curve   CurveStyle
}

// DefaultOptions mirrors the usual scatter defaults: size 8 round markers in
// the first cycle color, a black curve 2 points wide, no smoothing.
func DefaultOptions() Options {
	return Options{
		Smooth: smooth.DefaultOptions(),
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Scatter: ScatterStyle{
			MarkerSize: 8,
			Marker:     "o",
			Color:      "#1f77b4",
			ColorMap:   "smooth-blue-red",
		},
		Curve: CurveStyle{
			Color:     "black",
			LineStyle: "-",
			LineWidth: 2,
		},
	}
}

// Validate checks the cosmetic options and the smoothing options.
func (o Options) Validate() error {
	if err := o.Smooth.Validate(); err != nil {
		return err
	}
	if !(o.Width > 0) || !(o.Height > 0) || math.IsInf(o.Width, 0) || math.IsInf(o.Height, 0) {
		return fmt.Errorf("%w: %vx%v inches", ErrFigureSize, o.Width, o.Height)
	}
	if o.YLimit != nil && !(o.YLimit.Min < o.YLimit.Max) {
		return fmt.Errorf("%w: [%v, %v]", ErrYLimit, o.YLimit.Min, o.YLimit.Max)
	}
	for _, a := range []float64{o.Scatter.Alpha, o.Curve.Alpha} {
		if a < 0 || a > 1 || math.IsNaN(a) {
			return fmt.Errorf("%w: %v", ErrAlpha, a)
		}
	}
	if _, ok := markers[o.Scatter.Marker]; !ok {
		return fmt.Errorf("%w: %q", ErrMarker, o.Scatter.Marker)
	}
	if _, err := dashes(o.Curve.LineStyle, 1); err != nil {
		return err
	}
	if _, err := parseColor(o.Scatter.Color, 0); err != nil {
		return err
	}
	if _, err := parseColor(o.Curve.Color, 0); err != nil {
		return err
	}
	if _, err := parseColor(o.Scatter.EdgeColor, 0); err != nil {
		return err
	}
	if v := o.Scatter; v.VMin != nil && v.VMax != nil && !(*v.VMin < *v.VMax) {
		return fmt.Errorf("%w: vmin %v not below vmax %v", ErrColorMap, *v.VMin, *v.VMax)
	}
	if o.Scatter.ColorValues != nil {
		if _, err := colorMap(o.Scatter.ColorMap); err != nil {
			return err
		}
	}
	return nil
}
