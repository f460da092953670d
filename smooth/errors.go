package smooth

import "errors"

// Validation errors. Callers branch with errors.Is; the returned errors wrap
// these sentinels with the offending value.
var (
	// ErrUnknownMethod indicates a smoother name outside the supported set.
	ErrUnknownMethod = errors.New("smooth: unknown smoother")

	// ErrLengthMismatch indicates xs, ys (or weights) of different lengths.
	ErrLengthMismatch = errors.New("smooth: length mismatch")

	// ErrTooFewPoints indicates fewer distinct points than the method needs.
	ErrTooFewPoints = errors.New("smooth: too few points")

	// ErrNonFinite indicates a NaN or infinite input value.
	ErrNonFinite = errors.New("smooth: non-finite value")

	// ErrDegree indicates a polynomial or spline degree out of range.
	ErrDegree = errors.New("smooth: degree out of range")

	// ErrFraction indicates a lowess bandwidth fraction outside (0,1].
	ErrFraction = errors.New("smooth: lowess fraction out of range")

	// ErrIterations indicates a negative lowess robustness iteration count.
	ErrIterations = errors.New("smooth: negative lowess iterations")

	// ErrDelta indicates a negative lowess delta.
	ErrDelta = errors.New("smooth: negative lowess delta")

	// ErrSmoothing indicates a negative spline smoothing factor.
	ErrSmoothing = errors.New("smooth: negative smoothing factor")

	// ErrWeights indicates spline weights of the wrong length or a
	// non-positive weight.
	ErrWeights = errors.New("smooth: invalid spline weights")
)

// ErrFitFailed reports a numerical failure inside a fitting routine, such as
// a singular system or a non-finite coefficient.
var ErrFitFailed = errors.New("smooth: fit failed")
