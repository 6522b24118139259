package models

const (
	DefaultLambda     = 1.0
	DefaultIterations = 1000
	DefaultTolerance  = 1e-4
)

// Penalty selects the coefficient regularization term.
type Penalty string

const (
	// L1 is the lasso penalty, lambda * sum(|beta_j|). Its soft-thresholding
	// update can drive coefficients exactly to zero.
	L1 Penalty = "l1"

	// L2 is the ridge penalty, lambda * sum(beta_j^2). Its closed-form update
	// shrinks coefficients but never thresholds them to zero.
	L2 Penalty = "l2"
)

func (p Penalty) valid() bool {
	return p == L1 || p == L2
}

// Options configures a coordinate descent regression fit.
type Options struct {
	// Penalty picks between the lasso (L1) and ridge (L2) regularizers.
	Penalty Penalty `json:"penalty"`

	// Lambda controls the regularization strength. Must be non-negative.
	// 0.0 results in converging to Ordinary Least Squares (OLS).
	Lambda float64 `json:"lambda"`

	// Iterations is the maximum number of times the fit loops through
	// training all coefficients.
	Iterations int `json:"iterations"`

	// Tolerance is the largest parameter change over a full pass at which
	// the fit is considered converged.
	Tolerance float64 `json:"tolerance"`

	// FitIntercept tracks an unpenalized intercept term alongside the
	// coefficients when set to true.
	FitIntercept bool `json:"fit_intercept"`

	// WarmStartBeta primes the coordinate descent to reduce the training
	// time if a previous fit has been performed.
	WarmStartBeta []float64 `json:"-"`
}

// NewDefaultOptions returns a default set of coordinate descent options.
func NewDefaultOptions() *Options {
	return &Options{
		Penalty:      L1,
		Lambda:       DefaultLambda,
		Iterations:   DefaultIterations,
		Tolerance:    DefaultTolerance,
		FitIntercept: true,
	}
}

// Validate runs basic validation on coordinate descent options.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}

	if o.Penalty == "" {
		o.Penalty = L1
	}
	if !o.Penalty.valid() {
		return nil, ErrUnknownPenalty
	}
	if o.Lambda < 0 {
		return nil, ErrNegativeLambda
	}
	if o.Iterations < 0 {
		return nil, ErrNegativeIterations
	}
	if o.Tolerance < 0 {
		return nil, ErrNegativeTolerance
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	return o, nil
}
