package models

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/avelars/shrinkage/dataset"
	"github.com/avelars/shrinkage/unroll"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CoordDescent fits a linear model with an L1 or L2 coefficient penalty using
// cyclic coordinate descent. Features are visited in increasing column order
// and the intercept, when tracked, is refreshed once per full pass as the
// mean residual. A fit that exhausts its iteration budget is not an error;
// the best-effort coefficients are kept and Result().Converged reports false.
type CoordDescent struct {
	opt *Options

	// column views and per column dot products for the dataset most recently
	// fit, shareable across models fitting the same data
	pre *Precomputed

	coef      []float64
	intercept float64
	result    *Result
}

// Precomputed carries the column views, squared column norms, and degenerate
// column flags for one dataset. Building it once and sharing it across models
// fitting the same dataset, e.g. along a regularization path, avoids
// recomputing the column dot products per fit.
type Precomputed struct {
	data         *dataset.Dataset
	fitIntercept bool

	xcols      [][]float64
	xdot       []float64
	degenerate []bool
}

// Precompute builds the shared fit structures for a dataset. A column is
// flagged degenerate, pinning its coefficient to zero, when its squared norm
// is zero or when it is constant while an intercept will be fit.
func Precompute(d *dataset.Dataset, fitIntercept bool) (*Precomputed, error) {
	if d == nil {
		return nil, ErrNoTrainingData
	}

	n := d.NumFeatures()
	pre := &Precomputed{
		data:         d,
		fitIntercept: fitIntercept,
		xcols:        make([][]float64, n),
		xdot:         make([]float64, n),
		degenerate:   make([]bool, n),
	}
	for j := 0; j < n; j++ {
		col, err := d.Col(j)
		if err != nil {
			return nil, err
		}
		pre.xcols[j] = col
		pre.xdot[j] = unroll.Dot(col, col)
		pre.degenerate[j] = pre.xdot[j] == 0 || (fitIntercept && isConst(col))
	}
	return pre, nil
}

// Result carries fit diagnostics populated by the most recent call to Fit.
type Result struct {
	// Converged is false when the iteration budget ran out before the
	// largest parameter change dropped below the tolerance.
	Converged bool `json:"converged"`

	// Iterations is the number of full coordinate passes performed.
	Iterations int `json:"iterations"`

	// Delta is the largest parameter change observed on the final pass.
	Delta float64 `json:"delta"`

	// DegenerateFeatures lists column indexes whose coefficients were pinned
	// to zero because the column carries no usable signal: an all zero
	// column, or a constant column when an intercept is being fit.
	DegenerateFeatures []int `json:"degenerate_features,omitempty"`
}

// NewCoordDescent initializes a coordinate descent model ready for fitting.
func NewCoordDescent(opt *Options) (*CoordDescent, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &CoordDescent{opt: opt}, nil
}

// Fit the model according to the given training dataset. Coefficients always
// restart from zero, or from WarmStartBeta when provided, so repeated fits on
// identical inputs produce identical results.
func (c *CoordDescent) Fit(d *dataset.Dataset) error {
	if c.opt == nil {
		return ErrNoOptions
	}
	if d == nil {
		return ErrNoTrainingData
	}

	m := d.NumSamples()
	n := d.NumFeatures()

	if c.opt.WarmStartBeta != nil && len(c.opt.WarmStartBeta) != n {
		return fmt.Errorf("warm start beta has %d features instead of %d, %w", len(c.opt.WarmStartBeta), n, ErrWarmStartBetaSize)
	}

	if err := c.precompute(d); err != nil {
		return err
	}

	beta := make([]float64, n)
	if c.opt.WarmStartBeta != nil {
		copy(beta, c.opt.WarmStartBeta)
		for j := range beta {
			if c.pre.degenerate[j] {
				beta[j] = 0
			}
		}
	}

	// residual tracks y - alpha - X*beta throughout the fit. The intercept
	// initializes to the mean residual, which is mean(y) for a zero beta.
	residual := make([]float64, m)
	copy(residual, d.Y())
	for j := 0; j < n; j++ {
		if beta[j] != 0 {
			floats.AddScaled(residual, -beta[j], c.pre.xcols[j])
		}
	}
	alpha := 0.0
	if c.opt.FitIntercept {
		alpha = stat.Mean(residual, nil)
		floats.AddConst(-alpha, residual)
	}

	threshold := c.opt.Lambda / 2.0

	converged := false
	passes := 0
	delta := 0.0
	for i := 0; i < c.opt.Iterations; i++ {
		delta = 0.0

		for j := 0; j < n; j++ {
			if c.pre.degenerate[j] {
				continue
			}
			betaCurr := beta[j]

			// correlation of column j against the residual with beta_j's own
			// contribution added back in
			rho := unroll.Dot(c.pre.xcols[j], residual) + betaCurr*c.pre.xdot[j]

			var betaNext float64
			switch c.opt.Penalty {
			case L2:
				betaNext = rho / (c.pre.xdot[j] + c.opt.Lambda)
			default:
				betaNext = softThreshold(rho, threshold) / c.pre.xdot[j]
			}

			if betaNext != betaCurr {
				floats.AddScaled(residual, betaCurr-betaNext, c.pre.xcols[j])
				beta[j] = betaNext
				delta = math.Max(delta, math.Abs(betaNext-betaCurr))
			}
		}

		if c.opt.FitIntercept {
			// shifting alpha by the mean residual is the same as recomputing
			// alpha = mean(y - X*beta)
			shift := stat.Mean(residual, nil)
			if shift != 0 {
				alpha += shift
				floats.AddConst(-shift, residual)
				delta = math.Max(delta, math.Abs(shift))
			}
		}

		passes = i + 1
		if delta < c.opt.Tolerance {
			converged = true
			break
		}
	}

	if !converged {
		slog.Warn("coordinate descent did not converge within the iteration budget",
			"iterations", passes,
			"delta", delta,
			"tolerance", c.opt.Tolerance)
	}

	c.coef = beta
	c.intercept = alpha
	c.result = &Result{
		Converged:          converged,
		Iterations:         passes,
		Delta:              delta,
		DegenerateFeatures: degenerateIndexes(c.pre.degenerate),
	}
	return nil
}

// precompute reuses the cached structures only when they were built from this
// exact dataset under the same intercept setting; fitting different data
// always rebuilds them.
func (c *CoordDescent) precompute(d *dataset.Dataset) error {
	if c.pre != nil && c.pre.data == d && c.pre.fitIntercept == c.opt.FitIntercept {
		return nil
	}

	pre, err := Precompute(d, c.opt.FitIntercept)
	if err != nil {
		return err
	}
	c.pre = pre
	return nil
}

// SetPrecomputed installs shared fit structures built by Precompute. The next
// Fit on the same dataset uses them instead of recomputing its own.
func (c *CoordDescent) SetPrecomputed(pre *Precomputed) {
	c.pre = pre
}

// Predict using the fitted coefficients.
func (c *CoordDescent) Predict(x *dataset.Matrix) ([]float64, error) {
	if c.opt == nil {
		return nil, ErrNoOptions
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}
	if c.coef == nil {
		return nil, ErrNotFitted
	}
	return predict(x, c.coef, c.intercept)
}

// Score computes the coefficient of determination of the prediction against
// y. A held-out score below zero is a legal result, not an error.
func (c *CoordDescent) Score(x *dataset.Matrix, y []float64) (float64, error) {
	if c.opt == nil {
		return 0.0, ErrNoOptions
	}
	return score(c, x, y)
}

// Intercept returns the fitted intercept if FitIntercept is set to true.
// Defaults to 0.0 if not set.
func (c *CoordDescent) Intercept() float64 {
	return c.intercept
}

// Coef returns a slice of the trained coefficients in the same order as the
// training matrix columns.
func (c *CoordDescent) Coef() []float64 {
	return c.coef
}

// Result returns diagnostics for the most recent fit, or nil before any fit.
func (c *CoordDescent) Result() *Result {
	return c.result
}

// softThreshold zeroes x when its magnitude is at most gamma, otherwise
// shrinks it toward zero by gamma. The dead zone around zero is what lets the
// L1 penalty produce exactly sparse solutions.
func softThreshold(x, gamma float64) float64 {
	switch {
	case x > gamma:
		return x - gamma
	case x < -gamma:
		return x + gamma
	default:
		return 0.0
	}
}

func isConst(col []float64) bool {
	for i := 1; i < len(col); i++ {
		if col[i] != col[0] {
			return false
		}
	}
	return len(col) > 0
}

func degenerateIndexes(degenerate []bool) []int {
	var idx []int
	for j, deg := range degenerate {
		if deg {
			idx = append(idx, j)
		}
	}
	return idx
}

func predict(x *dataset.Matrix, coef []float64, intercept float64) ([]float64, error) {
	m, n := x.Shape()
	if n != len(coef) {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", n, len(coef), ErrFeatureLenMismatch)
	}

	res := make([]float64, m)
	floats.AddConst(intercept, res)
	for j := 0; j < n; j++ {
		if coef[j] == 0 {
			continue
		}
		col, err := x.Col(j)
		if err != nil {
			return nil, err
		}
		floats.AddScaled(res, coef[j], col)
	}
	return res, nil
}

func score(model Model, x *dataset.Matrix, y []float64) (float64, error) {
	if x == nil {
		return 0.0, ErrNoDesignMatrix
	}
	if y == nil {
		return 0.0, ErrNoTarget
	}

	m, _ := x.Shape()
	if m != len(y) {
		return 0.0, fmt.Errorf("design matrix has %d rows and target has %d values, %w", m, len(y), ErrTargetLenMismatch)
	}

	res, err := model.Predict(x)
	if err != nil {
		return 0.0, err
	}

	r2 := stat.RSquaredFrom(res, y, nil)
	if math.IsNaN(r2) {
		r2 = 1.0
	}
	return r2, nil
}
