// Package smooth fits a trend curve through paired observations.
//
// Four methods are available:
//
//	linear   ordinary least-squares line
//	poly     least-squares polynomial of a given degree
//	lowess   locally weighted scatterplot smoothing
//	splines  smoothing spline of degree 1..5
//
// Fit sorts the points by x, optionally averages y over duplicate x values
// and returns a Curve holding one fitted y per curve x:
//
//	opts := smooth.DefaultOptions()
//	opts.Method = smooth.Lowess
//	opts.LowessFrac = 0.3
//	curve, err := smooth.Fit(xs, ys, opts)
//
// Every fit is deterministic: the same input and options always produce the
// same curve.
package smooth
