package smooth

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// fitLowess implements Cleveland's locally weighted scatterplot smoothing.
//
// For every point the window of the frac*n nearest points is fitted with a
// weighted line, weights following the tricube of the distance scaled by the
// window radius. After the first pass, iter robustness passes multiply the
// weights by the bisquare of the residuals scaled by six median absolute
// residuals. Points within delta of the last computed fit are linearly
// interpolated instead of fitted.
func fitLowess(pts Points, frac float64, iter int, delta float64) (*Curve, error) {
	n := pts.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: lowess needs 2 points, got %d", ErrTooFewPoints, n)
	}
	k := int(frac*float64(n) + 1e-10)
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}

	x, y := pts.X, pts.Y
	fit := make([]float64, n)
	robust := make([]float64, n)
	for i := range robust {
		robust[i] = 1
	}
	lw := newLocalWindow(k)

	for pass := 0; pass <= iter; pass++ {
		left := 0
		last := -1
		for i := 0; last < n-1; {
			left = slideWindow(x, i, left, k)
			fit[i] = lw.fit(x, y, robust, i, left)

			if last < i-1 {
				interpolate(x, fit, last, i)
			}
			last = i

			cut := x[i] + delta
			next := i + 1
			for j := i + 1; j < n && x[j] <= cut; j++ {
				if x[j] == x[i] {
					fit[j] = fit[i]
					last = j
				}
				next = j
			}
			if next <= last {
				next = last + 1
			}
			i = next
		}
		if err := checkFinite(fit); err != nil {
			return nil, err
		}
		if pass == iter {
			break
		}
		robustnessWeights(y, fit, robust)
	}

	return &Curve{
		X: append([]float64(nil), x...),
		Y: fit,
	}, nil
}

// slideWindow moves the k-point window [left, left+k) to the right while the
// point at i is closer to the element past the window than to its left end.
func slideWindow(x []float64, i, left, k int) int {
	for left+k < len(x) && x[i] > (x[left]+x[left+k])/2 {
		left++
	}
	return left
}

type localWindow struct {
	xs, ys, ws []float64
}

func newLocalWindow(k int) *localWindow {
	return &localWindow{
		xs: make([]float64, k),
		ys: make([]float64, k),
		ws: make([]float64, k),
	}
}

// fit returns the weighted local line at x[i] over the window starting at left.
func (lw *localWindow) fit(x, y, robust []float64, i, left int) float64 {
	k := len(lw.xs)
	xi := x[i]
	radius := math.Max(xi-x[left], x[left+k-1]-xi)

	copy(lw.xs, x[left:left+k])
	copy(lw.ys, y[left:left+k])
	for j := range lw.ws {
		lw.ws[j] = tricube(lw.xs[j]-xi, radius) * robust[left+j]
	}
	sum := floats.Sum(lw.ws)
	if sum <= 0 {
		return y[i]
	}
	// The unbiased weighted moments used by LinearRegression divide by
	// sum(w)-1, so the weights are rescaled away from a unit sum.
	floats.Scale(2/sum, lw.ws)

	mean := stat.Mean(lw.xs, lw.ws)
	var spread float64
	for j, v := range lw.xs {
		spread += lw.ws[j] * (v - mean) * (v - mean)
	}
	spread /= 2
	if spread <= 1e-12*(radius*radius+1e-300) {
		return stat.Mean(lw.ys, lw.ws)
	}
	alpha, beta := stat.LinearRegression(lw.xs, lw.ys, lw.ws, false)
	return alpha + beta*xi
}

func tricube(d, radius float64) float64 {
	if radius <= 0 {
		if d == 0 {
			return 1
		}
		return 0
	}
	u := math.Abs(d) / radius
	if u >= 1 {
		return 0
	}
	t := 1 - u*u*u
	return t * t * t
}

// interpolate fills fit strictly between the computed indices lo and hi.
func interpolate(x, fit []float64, lo, hi int) {
	if lo < 0 {
		return
	}
	span := x[hi] - x[lo]
	for j := lo + 1; j < hi; j++ {
		if span == 0 {
			fit[j] = fit[lo]
			continue
		}
		a := (x[j] - x[lo]) / span
		fit[j] = a*fit[hi] + (1-a)*fit[lo]
	}
}

// robustnessWeights stores the bisquare weights of the residuals into robust.
// A median residual at rounding level means most points are fitted exactly:
// those keep weight 1 and every other point is dropped.
func robustnessWeights(y, fit, robust []float64) {
	abs := make([]float64, len(y))
	for i := range y {
		abs[i] = math.Abs(y[i] - fit[i])
	}
	sorted := append([]float64(nil), abs...)
	sort.Float64s(sorted)
	m := len(sorted) / 2
	median := sorted[m]
	if len(sorted)%2 == 0 {
		median = (sorted[m-1] + sorted[m]) / 2
	}

	if tiny := 1e-12 * floats.Norm(y, math.Inf(1)); median <= tiny {
		for i, r := range abs {
			robust[i] = 0
			if r <= tiny {
				robust[i] = 1
			}
		}
		return
	}
	scale := 6 * median
	for i, r := range abs {
		u := r / scale
		switch {
		case u < 1e-3:
			robust[i] = 1
		case u >= 1:
			robust[i] = 0
		default:
			t := 1 - u*u
			robust[i] = t * t
		}
	}
}
