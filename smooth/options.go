package smooth

import (
	"fmt"
	"math"
)

// MaxSplineDegree is the highest supported spline degree.
const MaxSplineDegree = 5

// Options configures Fit. Fields not used by the selected Method are ignored.
type Options struct {
	Method Method

	// Degree of the polynomial for Poly and of the spline pieces for Splines.
	Degree int

	// AvoidDuplicates averages y over equal x values before fitting.
	// Splines always average.
	AvoidDuplicates bool

	// LowessFrac is the fraction of points used for each local fit.
	LowessFrac float64
	// LowessIter is the number of residual-based reweightings.
	LowessIter int
	// LowessDelta is the x distance within which fits are linearly
	// interpolated instead of computed.
	LowessDelta float64

	// SplineSmooth bounds the weighted residual sum of squares of the
	// spline. Zero interpolates every point.
	SplineSmooth float64
	// SplineWeights holds one positive weight per input point; nil means
	// all weights are 1.
	SplineWeights []float64
}

// DefaultOptions returns the defaults: no smoothing, degree 1, duplicate
// averaging, lowess frac 0.66 with 3 iterations, interpolating splines.
func DefaultOptions() Options {
	return Options{
		Method:          None,
		Degree:          1,
		AvoidDuplicates: true,
		LowessFrac:      0.66,
		LowessIter:      3,
	}
}

// Validate checks the options relevant to o.Method.
func (o Options) Validate() error {
	if !o.Method.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, string(o.Method))
	}
	switch o.Method {
	case Poly:
		if o.Degree < 1 {
			return fmt.Errorf("%w: poly degree %d, want >= 1", ErrDegree, o.Degree)
		}
	case Lowess:
		if !(o.LowessFrac > 0 && o.LowessFrac <= 1) {
			return fmt.Errorf("%w: %v", ErrFraction, o.LowessFrac)
		}
		if o.LowessIter < 0 {
			return fmt.Errorf("%w: %d", ErrIterations, o.LowessIter)
		}
		if o.LowessDelta < 0 || math.IsNaN(o.LowessDelta) {
			return fmt.Errorf("%w: %v", ErrDelta, o.LowessDelta)
		}
	case Splines:
		if o.Degree < 1 || o.Degree > MaxSplineDegree {
			return fmt.Errorf("%w: spline degree %d, want 1..%d", ErrDegree, o.Degree, MaxSplineDegree)
		}
		if o.SplineSmooth < 0 || math.IsNaN(o.SplineSmooth) || math.IsInf(o.SplineSmooth, 0) {
			return fmt.Errorf("%w: %v", ErrSmoothing, o.SplineSmooth)
		}
		for i, w := range o.SplineWeights {
			if !(w > 0) || math.IsInf(w, 0) {
				return fmt.Errorf("%w: weight[%d] = %v", ErrWeights, i, w)
			}
		}
	}
	return nil
}
