package models

import (
	"github.com/avelars/shrinkage/dataset"
	"gonum.org/v1/gonum/mat"
)

type OLSOptions struct {
	FitIntercept bool
}

func NewDefaultOLSOptions() *OLSOptions {
	return &OLSOptions{
		FitIntercept: true,
	}
}

// OLS computes ordinary least squares using QR factorization. It serves as
// the unregularized baseline the penalized fits converge to as lambda goes
// to zero.
type OLS struct {
	opt       *OLSOptions
	coef      []float64
	intercept float64
}

func NewOLS(opt *OLSOptions) (*OLS, error) {
	if opt == nil {
		opt = NewDefaultOLSOptions()
	}
	return &OLS{opt: opt}, nil
}

func (o *OLS) Fit(d *dataset.Dataset) error {
	if o.opt == nil {
		return ErrNoOptions
	}
	if d == nil {
		return ErrNoTrainingData
	}

	m := d.NumSamples()
	n := d.NumFeatures()

	x := d.X().Dense()
	if o.opt.FitIntercept {
		withOnes := mat.NewDense(m, n+1, nil)
		ones := make([]float64, m)
		for i := range ones {
			ones[i] = 1.0
		}
		withOnes.SetCol(0, ones)
		for j := 0; j < n; j++ {
			col, err := d.Col(j)
			if err != nil {
				return err
			}
			withOnes.SetCol(j+1, col)
		}
		x = withOnes
		n++
	}

	y := mat.NewDense(1, m, d.Y())

	qr := new(mat.QR)
	qr.Factorize(x)

	q := new(mat.Dense)
	r := new(mat.Dense)
	qr.QTo(q)
	qr.RTo(r)

	yq := new(mat.Dense)
	yq.Mul(y, q)

	// back substitution against the upper triangular R
	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	if o.opt.FitIntercept {
		o.intercept = c[0]
		o.coef = c[1:]
	} else {
		o.coef = c
	}
	return nil
}

func (o *OLS) Predict(x *dataset.Matrix) ([]float64, error) {
	if o.opt == nil {
		return nil, ErrNoOptions
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}
	if o.coef == nil {
		return nil, ErrNotFitted
	}
	return predict(x, o.coef, o.intercept)
}

func (o *OLS) Score(x *dataset.Matrix, y []float64) (float64, error) {
	if o.opt == nil {
		return 0.0, ErrNoOptions
	}
	return score(o, x, y)
}

// Intercept returns the computed intercept if FitIntercept is set to true.
// Defaults to 0.0 if not set.
func (o *OLS) Intercept() float64 {
	return o.intercept
}

// Coef returns a slice of the trained coefficients in the same order as the
// training matrix columns.
func (o *OLS) Coef() []float64 {
	return o.coef
}
