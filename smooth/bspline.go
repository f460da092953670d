package smooth

import "sort"

// bspline is a B-spline basis of degree k over the knot vector t.
type bspline struct {
	t []float64
	k int

	left, right []float64
}

func newBSpline(t []float64, k int) *bspline {
	return &bspline{
		t:     t,
		k:     k,
		left:  make([]float64, k+1),
		right: make([]float64, k+1),
	}
}

// interpolationKnots places knots so that a spline of degree k through the
// m points x has exactly m coefficients: boundary knots repeated k+1 times,
// interior knots at data points for odd k and at midpoints for even k.
func interpolationKnots(x []float64, k int) []float64 {
	m := len(x)
	t := make([]float64, m+k+1)
	for i := 0; i <= k; i++ {
		t[i] = x[0]
		t[m+i] = x[m-1]
	}
	for l := 0; l < m-k-1; l++ {
		j := k/2 + 1 + l
		if k%2 == 1 {
			t[k+1+l] = x[j]
		} else {
			t[k+1+l] = (x[j] + x[j-1]) / 2
		}
	}
	return t
}

// clampedKnots returns the knot vector on [0, 1] with the given interior
// knots and k+1 fold boundary knots.
func clampedKnots(inner []float64, k int) []float64 {
	t := make([]float64, 0, len(inner)+2*k+2)
	for i := 0; i <= k; i++ {
		t = append(t, 0)
	}
	t = append(t, inner...)
	for i := 0; i <= k; i++ {
		t = append(t, 1)
	}
	return t
}

// numCoeffs returns the dimension of the spline space.
func (b *bspline) numCoeffs() int { return len(b.t) - b.k - 1 }

// span returns l with t[l] <= x < t[l+1], clamped to the valid range so that
// the right end point belongs to the last span.
func (b *bspline) span(x float64) int {
	nc := b.numCoeffs()
	j := sort.Search(nc-b.k, func(j int) bool { return b.t[b.k+j] > x })
	l := b.k + j - 1
	if l < b.k {
		l = b.k
	}
	if l > nc-1 {
		l = nc - 1
	}
	return l
}

// basis writes the k+1 basis functions that are non-zero on span l,
// B[l-k] .. B[l], evaluated at x, into out.
func (b *bspline) basis(x float64, l int, out []float64) {
	t, k := b.t, b.k
	out[0] = 1
	for j := 1; j <= k; j++ {
		b.left[j] = x - t[l+1-j]
		b.right[j] = t[l+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			den := b.right[r+1] + b.left[j-r]
			var tmp float64
			if den != 0 {
				tmp = out[r] / den
			}
			out[r] = saved + b.right[r+1]*tmp
			saved = b.left[j-r] * tmp
		}
		out[j] = saved
	}
}

// topDerivative returns the p-th derivative of B[j] of degree p on span l,
// which is constant there.
func (b *bspline) topDerivative(j, p, l int) float64 {
	if p == 0 {
		if j == l {
			return 1
		}
		return 0
	}
	var v float64
	if d := b.t[j+p] - b.t[j]; d > 0 {
		v += b.topDerivative(j, p-1, l) / d
	}
	if d := b.t[j+p+1] - b.t[j+1]; d > 0 {
		v -= b.topDerivative(j+1, p-1, l) / d
	}
	return float64(p) * v
}

// jump returns the discontinuity of the k-th derivative of B[j] at the
// interior knot t[q].
func (b *bspline) jump(j, q int) float64 {
	return b.topDerivative(j, b.k, q) - b.topDerivative(j, b.k, q-1)
}

// eval evaluates the spline with coefficients c at x.
func (b *bspline) eval(c []float64, x float64, scratch []float64) float64 {
	l := b.span(x)
	b.basis(x, l, scratch)
	var y float64
	for r := 0; r <= b.k; r++ {
		y += c[l-b.k+r] * scratch[r]
	}
	return y
}
