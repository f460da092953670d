package smooth

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// Curve is a fitted trend: one Y per X, X sorted ascending.
type Curve struct {
	Method Method
	X, Y   []float64

	// R2 is the coefficient of determination of the curve against the
	// (possibly averaged) points it was fitted to.
	R2 float64

	// Coefficients holds the fitted polynomial for Linear and Poly, in
	// ascending powers. Poly coefficients refer to the scaled variable
	// (x-Center)/Scale; Linear uses Center 0 and Scale 1.
	Coefficients  []float64
	Center, Scale float64
}

// Len returns the number of curve points.
func (c *Curve) Len() int { return len(c.X) }

// XY returns the i-th curve point. Together with Len it satisfies
// gonum's plotter.XYer.
func (c *Curve) XY(i int) (float64, float64) { return c.X[i], c.Y[i] }

// Fit computes the smoothing curve of ys against xs with the method selected
// in opts. Fit with Method None is an error: there is nothing to compute.
func Fit(xs, ys []float64, opts Options) (*Curve, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Method == None {
		return nil, fmt.Errorf("%w: no smoother selected", ErrUnknownMethod)
	}

	var weights []float64
	if opts.Method == Splines {
		weights = opts.SplineWeights
	}
	pts, err := Prepare(xs, ys, weights, opts.AvoidDuplicates || opts.Method == Splines)
	if err != nil {
		return nil, err
	}

	var curve *Curve
	switch opts.Method {
	case Linear:
		curve, err = fitLinear(pts)
	case Poly:
		curve, err = fitPoly(pts, opts.Degree)
	case Lowess:
		curve, err = fitLowess(pts, opts.LowessFrac, opts.LowessIter, opts.LowessDelta)
	case Splines:
		curve, err = fitSpline(pts, opts.Degree, opts.SplineSmooth)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Method, err)
	}
	curve.Method = opts.Method
	curve.R2 = stat.RSquaredFrom(curve.Y, pts.Y, nil)

	slog.Debug("smoothing curve fitted",
		"method", opts.Method.String(),
		"points", len(xs),
		"curve_points", curve.Len(),
		"r2", curve.R2)
	return curve, nil
}

func checkFinite(vals []float64) error {
	for i, v := range vals {
		if !finite(v) {
			return fmt.Errorf("%w: value %d is %v", ErrFitFailed, i, v)
		}
	}
	return nil
}
