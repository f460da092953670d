package smooth

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

const (
	// splineTol is the accepted relative distance between the residual sum
	// of squares and the smoothing factor.
	splineTol = 1e-3
	// splineMaxIter bounds the search for the smoothing parameter.
	splineMaxIter = 200
	// splineRank is the relative size below which a diagonal element of the
	// least-squares triangle counts as zero.
	splineRank = 1e-10
)

var errSingular = errors.New("least-squares system is rank deficient")

// fitSpline fits a smoothing spline of degree k to pts, which must hold
// distinct x values. The weighted residual sum(w*(y-g))^2 of the result is
// within splineTol of s, or below s when the least-squares polynomial of
// degree k already gets there. s = 0 interpolates.
//
// The knots are chosen the way FITPACK's curfit does: starting from the
// polynomial, interior knots go into the intervals with the largest
// residuals until the least-squares spline gets within s. On that knot set
// the weight lambda of the penalty on k-th derivative jumps,
//
//	min sum((w*(y-g))^2) + lambda * sum(jump^2)
//
// is searched on a log scale until the residual matches s. Everything is
// computed on x mapped to [0, 1] with Givens rotations on a banded triangle.
func fitSpline(pts Points, k int, s float64) (*Curve, error) {
	m := pts.Len()
	if m <= k {
		return nil, fmt.Errorf("%w: degree %d spline needs %d distinct x values, got %d",
			ErrTooFewPoints, k, k+1, m)
	}
	w := pts.W
	if w == nil {
		w = make([]float64, m)
		for i := range w {
			w[i] = 1
		}
	}
	u := unitScaled(pts.X)
	curve := &Curve{X: append([]float64(nil), pts.X...)}

	if s == 0 {
		sys := newSplineSystem(u, pts.Y, w, interpolationKnots(u, k), k)
		y, _, err := sys.solve(0)
		if err != nil {
			return nil, err
		}
		curve.Y = y
		return curve, checkFinite(curve.Y)
	}

	sys, y, fp, err := placeKnots(u, pts.Y, w, k, s)
	if err != nil {
		return nil, err
	}
	if len(sys.jumps) > 0 && s-fp > splineTol*s {
		if y, err = sys.search(s); err != nil {
			return nil, err
		}
	}
	curve.Y = y
	return curve, checkFinite(curve.Y)
}

// unitScaled maps the sorted xs linearly onto [0, 1].
func unitScaled(xs []float64) []float64 {
	u := make([]float64, len(xs))
	lo, span := xs[0], xs[len(xs)-1]-xs[0]
	for i, x := range xs {
		u[i] = (x - lo) / span
	}
	u[len(u)-1] = 1
	return u
}

// placeKnots returns the least-squares spline system on the smallest knot
// set found whose residual fp is at most s, with its fitted values.
func placeKnots(u, y, w []float64, k int, s float64) (*splineSystem, []float64, float64, error) {
	maxInner := len(u) - k - 1
	interp := maxInner <= 0
	var (
		inner  []float64
		nplus  int
		fpold  float64
		resid2 = make([]float64, len(u))
	)
	for {
		t := interpolationKnots(u, k)
		if !interp {
			t = clampedKnots(inner, k)
		}
		sys := newSplineSystem(u, y, w, t, k)
		fit, fp, err := sys.solve(0)
		if err != nil {
			if interp {
				return nil, nil, 0, err
			}
			// Too few points between some knots: fall back to the
			// interpolation knots, which always give a full rank system.
			interp = true
			continue
		}
		if fp <= s || interp {
			return sys, fit, fp, nil
		}

		if nplus == 0 {
			nplus = 1
		} else {
			npl1 := nplus * 2
			if fpold-fp > splineTol*s {
				npl1 = int(float64(nplus) * (fp - s) / (fpold - fp))
			}
			nplus = min(nplus*2, max(npl1, nplus/2, 1))
		}
		fpold = fp

		for i := range fit {
			r := w[i] * (y[i] - fit[i])
			resid2[i] = r * r
		}
		var added bool
		inner, added = addKnots(u, resid2, inner, nplus, maxInner)
		if !added || len(inner) >= maxInner {
			interp = true
		}
	}
}

// knotInterval is the span between two consecutive knots: the data points
// strictly inside it and its share of the squared residuals.
type knotInterval struct {
	first, count int
	fp           float64
}

func knotIntervals(u, resid2, inner []float64) []knotInterval {
	bounds := make([]float64, 0, len(inner)+2)
	bounds = append(append(append(bounds, 0), inner...), 1)
	iv := make([]knotInterval, len(bounds)-1)

	j := 0
	for i, ui := range u {
		for j < len(iv)-1 && ui >= bounds[j+1] {
			j++
		}
		switch {
		case ui == bounds[j] && j > 0:
			// on an interior knot: shared by both neighbours
			iv[j-1].fp += resid2[i] / 2
			iv[j].fp += resid2[i] / 2
		case ui == bounds[j] || ui == bounds[j+1]:
			iv[j].fp += resid2[i]
		default:
			if iv[j].count == 0 {
				iv[j].first = i
			}
			iv[j].count++
			iv[j].fp += resid2[i]
		}
	}
	return iv
}

// addKnots puts up to n new knots, each at the middle data point of the
// interval with the largest residual share.
func addKnots(u, resid2, inner []float64, n, maxInner int) ([]float64, bool) {
	iv := knotIntervals(u, resid2, inner)
	var added int
	for ; added < n && len(inner) < maxInner; added++ {
		best := -1
		for j, v := range iv {
			if v.count > 0 && (best < 0 || v.fp > iv[best].fp) {
				best = j
			}
		}
		if best < 0 {
			break
		}
		v := iv[best]
		half := v.count / 2
		mid := v.first + half
		right := v.count - half - 1
		inner = append(inner, u[mid])

		iv[best] = knotInterval{first: v.first, count: half, fp: v.fp * float64(half) / float64(v.count)}
		iv = append(iv, knotInterval{})
		copy(iv[best+2:], iv[best+1:])
		iv[best+1] = knotInterval{first: mid + 1, count: right, fp: v.fp * float64(right) / float64(v.count)}
	}
	sort.Float64s(inner)
	return inner, added > 0
}

// splineSystem holds the weighted least-squares problem of a knot set,
// reduced by Givens rotations to an upper triangular band, plus the rows of
// the k-th derivative jumps at the interior knots.
type splineSystem struct {
	u, y, w []float64
	basis   *bspline

	// tri[i][j] is element (i, i+j) of the triangle; the band holds k+2
	// columns so that penalty rows fit.
	tri   [][]float64
	rhs   []float64
	jumps [][]float64
	scale float64
}

func newSplineSystem(u, y, w, t []float64, k int) *splineSystem {
	b := newBSpline(t, k)
	nc := b.numCoeffs()
	sys := &splineSystem{
		u: u, y: y, w: w,
		basis: b,
		tri:   make([][]float64, nc),
		rhs:   make([]float64, nc),
	}
	for i := range sys.tri {
		sys.tri[i] = make([]float64, k+2)
	}

	var data float64
	row := make([]float64, k+1)
	for i, ui := range u {
		l := b.span(ui)
		b.basis(ui, l, row)
		floats.Scale(w[i], row)
		data += floats.Dot(row, row)
		givens(sys.tri, sys.rhs, row, l-k, w[i]*y[i])
	}

	var penalty float64
	for q := k + 1; q < nc; q++ {
		j0 := q - k - 1
		jr := make([]float64, k+2)
		for r := range jr {
			jr[r] = b.jump(j0+r, q)
		}
		penalty += floats.Dot(jr, jr)
		sys.jumps = append(sys.jumps, jr)
	}
	sys.scale = 1
	if penalty > 0 {
		sys.scale = data / penalty
	}
	return sys
}

// givens folds the row h, whose first entry sits in column l, with right
// hand side v into the triangle and returns what is left of v.
func givens(tri [][]float64, rhs, h []float64, l int, v float64) float64 {
	for i, piv := range h {
		if piv == 0 {
			continue
		}
		j := l + i
		d := tri[j]
		c, s, r, _ := blas64.Rotg(d[0], piv)
		d[0] = r
		rhs[j], v = c*rhs[j]+s*v, c*v-s*rhs[j]
		if n := len(h) - i - 1; n > 0 {
			blas64.Rot(
				blas64.Vector{N: n, Data: d[1 : n+1], Inc: 1},
				blas64.Vector{N: n, Data: h[i+1:], Inc: 1},
				c, s)
		}
	}
	return v
}

// solve returns the fitted values at the data points and their weighted
// residual sum of squares for the penalty weight lambda.
func (s *splineSystem) solve(lambda float64) ([]float64, float64, error) {
	tri := make([][]float64, len(s.tri))
	for i, r := range s.tri {
		tri[i] = append([]float64(nil), r...)
	}
	rhs := append([]float64(nil), s.rhs...)

	tiny := 0.0
	if lambda == 0 {
		var top float64
		for _, r := range tri {
			top = math.Max(top, math.Abs(r[0]))
		}
		tiny = splineRank * top
	} else {
		f := math.Sqrt(lambda)
		h := make([]float64, s.basis.k+2)
		for q, jr := range s.jumps {
			for r, v := range jr {
				h[r] = f * v
			}
			givens(tri, rhs, h, q, 0)
		}
	}

	coeffs, err := backSubstitute(tri, rhs, tiny)
	if err != nil {
		return nil, 0, err
	}
	scratch := make([]float64, s.basis.k+1)
	fit := make([]float64, len(s.u))
	for i, ui := range s.u {
		fit[i] = s.basis.eval(coeffs, ui, scratch)
	}
	return fit, s.residual(fit), nil
}

func backSubstitute(tri [][]float64, rhs []float64, tiny float64) ([]float64, error) {
	n := len(tri)
	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		d := tri[i][0]
		if math.Abs(d) <= tiny || d == 0 {
			return nil, fmt.Errorf("%w: %v", ErrFitFailed, errSingular)
		}
		v := rhs[i]
		for j := 1; j < len(tri[i]) && i+j < n; j++ {
			v -= tri[i][j] * c[i+j]
		}
		c[i] = v / d
	}
	return c, nil
}

func (s *splineSystem) residual(fit []float64) float64 {
	var fp float64
	for i := range fit {
		r := s.w[i] * (s.y[i] - fit[i])
		fp += r * r
	}
	return fp
}

// search bisects log10(lambda/scale) until the residual is within splineTol
// of target. The residual grows monotonically with lambda, from the
// least-squares spline below target to the polynomial above it.
func (s *splineSystem) search(target float64) ([]float64, error) {
	acc := splineTol * target
	at := func(v float64) ([]float64, float64, error) {
		return s.solve(s.scale * math.Pow(10, v))
	}

	lo, hi := -12.0, 12.0
	for {
		y, fp, err := at(lo)
		if err != nil {
			return nil, err
		}
		if math.Abs(fp-target) <= acc {
			return y, nil
		}
		if fp < target {
			break
		}
		if hi, lo = lo, lo-4; lo < -60 {
			return nil, fmt.Errorf("%w: residual stays above smoothing factor %v", ErrFitFailed, target)
		}
	}
	for {
		y, fp, err := at(hi)
		if err != nil {
			return nil, err
		}
		if math.Abs(fp-target) <= acc {
			return y, nil
		}
		if fp > target {
			break
		}
		if lo, hi = hi, hi+4; hi > 60 {
			return nil, fmt.Errorf("%w: residual stays below smoothing factor %v", ErrFitFailed, target)
		}
	}

	for it := 0; it < splineMaxIter; it++ {
		mid := (lo + hi) / 2
		y, fp, err := at(mid)
		if err != nil {
			return nil, err
		}
		if math.Abs(fp-target) <= acc {
			return y, nil
		}
		if fp < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return nil, fmt.Errorf("%w: residual did not converge to smoothing factor %v", ErrFitFailed, target)
}
