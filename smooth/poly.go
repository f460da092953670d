package smooth

import (
	"fmt"

	"github.com/sajari/regression"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func fitLinear(pts Points) (*Curve, error) {
	if n := distinctCount(pts.X); n < 2 {
		return nil, fmt.Errorf("%w: linear needs 2 distinct x values, got %d", ErrTooFewPoints, n)
	}
	alpha, beta := stat.LinearRegression(pts.X, pts.Y, nil, false)
	if !finite(alpha) || !finite(beta) {
		return nil, fmt.Errorf("%w: line coefficients (%v, %v)", ErrFitFailed, alpha, beta)
	}
	curve := &Curve{
		X:            append([]float64(nil), pts.X...),
		Y:            make([]float64, pts.Len()),
		Coefficients: []float64{alpha, beta},
		Scale:        1,
	}
	for i, x := range pts.X {
		curve.Y[i] = alpha + beta*x
	}
	return curve, nil
}

// fitPoly fits a polynomial of the given degree on x scaled to zero mean and
// unit deviation. Overdetermined problems go through sajari/regression with
// power feature crosses; exactly determined ones are solved directly.
func fitPoly(pts Points, degree int) (*Curve, error) {
	if n := distinctCount(pts.X); n < degree+1 {
		return nil, fmt.Errorf("%w: degree %d needs %d distinct x values, got %d",
			ErrTooFewPoints, degree, degree+1, n)
	}
	center, scale := stat.PopMeanStdDev(pts.X, nil)
	z := scaled(pts.X, center, scale)

	var (
		coeffs []float64
		err    error
	)
	if pts.Len() > degree+1 {
		coeffs, err = regress(z, pts.Y, degree)
	} else {
		coeffs, err = polyLeastSquares(z, pts.Y, nil, degree)
	}
	if err != nil {
		return nil, err
	}
	if err := checkFinite(coeffs); err != nil {
		return nil, err
	}

	curve := &Curve{
		X:            append([]float64(nil), pts.X...),
		Y:            make([]float64, pts.Len()),
		Coefficients: coeffs,
		Center:       center,
		Scale:        scale,
	}
	for i, v := range z {
		curve.Y[i] = polyval(coeffs, v)
	}
	return curve, nil
}

// regress runs a multiple regression of y on z, z^2, ..., z^degree.
func regress(z, y []float64, degree int) ([]float64, error) {
	r := new(regression.Regression)
	r.SetObserved("y")
	r.SetVar(0, "x")
	for d := 2; d <= degree; d++ {
		r.AddCross(regression.PowCross(0, float64(d)))
	}
	for i := range z {
		r.Train(regression.DataPoint(y[i], []float64{z[i]}))
	}
	if err := r.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFitFailed, err)
	}
	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = r.Coeff(i)
	}
	return coeffs, nil
}

// polyLeastSquares solves the (optionally weighted) least-squares polynomial
// problem through a QR factorization of the Vandermonde matrix. Each row is
// multiplied by its weight, so w acts on residuals, not squared residuals.
func polyLeastSquares(z, y, w []float64, degree int) ([]float64, error) {
	a := vandermonde(z, degree)
	b := mat.NewVecDense(len(y), append([]float64(nil), y...))
	if w != nil {
		for i, wi := range w {
			for j := 0; j <= degree; j++ {
				a.Set(i, j, a.At(i, j)*wi)
			}
			b.SetVec(i, b.AtVec(i)*wi)
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	c := mat.NewVecDense(degree+1, nil)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFitFailed, err)
	}
	return c.RawVector().Data, nil
}

func vandermonde(z []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(z), degree+1, nil)
	for i := range z {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*z[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

// polyval evaluates coefficients given in ascending powers with Horner's rule.
func polyval(coeffs []float64, x float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return y
}

func scaled(xs []float64, center, scale float64) []float64 {
	if scale == 0 {
		scale = 1
	}
	z := make([]float64, len(xs))
	for i, x := range xs {
		z[i] = (x - center) / scale
	}
	return z
}
