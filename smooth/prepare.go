package smooth

import (
	"fmt"
	"math"
	"sort"
)

// Points is a set of observations sorted by X. W is nil unless weights were
// supplied.
type Points struct {
	X, Y, W []float64
}

// Len returns the number of points.
func (p Points) Len() int { return len(p.X) }

// Distinct reports whether all X values differ.
func (p Points) Distinct() bool {
	for i := 1; i < len(p.X); i++ {
		if p.X[i] == p.X[i-1] {
			return false
		}
	}
	return true
}

// Prepare validates xs, ys and the optional weights, sorts them by x (keeping
// the input order of equal x values) and, when average is set, replaces every
// run of equal x values with a single point carrying the mean y and mean
// weight. The inputs are not modified.
func Prepare(xs, ys, weights []float64, average bool) (Points, error) {
	if len(xs) != len(ys) {
		return Points{}, fmt.Errorf("%w: %d xs, %d ys", ErrLengthMismatch, len(xs), len(ys))
	}
	if weights != nil && len(weights) != len(xs) {
		return Points{}, fmt.Errorf("%w: %w: %d weights for %d points", ErrWeights, ErrLengthMismatch, len(weights), len(xs))
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return Points{}, fmt.Errorf("%w: point %d (%v, %v)", ErrNonFinite, i, xs[i], ys[i])
		}
	}

	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	p := Points{X: make([]float64, len(xs)), Y: make([]float64, len(xs))}
	if weights != nil {
		p.W = make([]float64, len(xs))
	}
	for i, j := range idx {
		p.X[i] = xs[j]
		p.Y[i] = ys[j]
		if weights != nil {
			p.W[i] = weights[j]
		}
	}
	if !average || p.Distinct() {
		return p, nil
	}
	return p.averaged(), nil
}

func (p Points) averaged() Points {
	var out Points
	for i := 0; i < len(p.X); {
		j := i
		var sy, sw float64
		for ; j < len(p.X) && p.X[j] == p.X[i]; j++ {
			sy += p.Y[j]
			if p.W != nil {
				sw += p.W[j]
			}
		}
		n := float64(j - i)
		out.X = append(out.X, p.X[i])
		out.Y = append(out.Y, sy/n)
		if p.W != nil {
			out.W = append(out.W, sw/n)
		}
		i = j
	}
	return out
}

// distinctCount returns the number of different values in the sorted xs.
func distinctCount(xs []float64) int {
	if len(xs) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[i-1] {
			n++
		}
	}
	return n
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
