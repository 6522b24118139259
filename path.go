// Package shrinkage fits L1 (lasso) and L2 (ridge) penalized linear models
// by cyclic coordinate descent, and sweeps regularization paths across a
// lambda grid to pick a penalty strength.
package shrinkage

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/avelars/shrinkage/dataset"
	"github.com/avelars/shrinkage/models"
)

var (
	ErrNoLambdas  = errors.New("no lambdas provided to fit with")
	ErrNoPathOpts = errors.New("no initialized path options")
	ErrNotFitted  = errors.New("path has not been fit")
)

// PathOptions configures a regularization path sweep.
type PathOptions struct {
	// Lambdas is the penalty strength grid, one model fit per value.
	Lambdas []float64

	// Penalty picks between the lasso (L1) and ridge (L2) regularizers for
	// every fit on the path.
	Penalty models.Penalty

	// Iterations is the per fit iteration budget.
	Iterations int

	// Tolerance is the per fit convergence tolerance.
	Tolerance float64

	// FitIntercept tracks an unpenalized intercept on every fit.
	FitIntercept bool

	// Parallelization sets how many fits to run concurrently. More will
	// increase memory and compute usage.
	Parallelization int
}

// NewDefaultPathOptions returns a default set of path options.
func NewDefaultPathOptions() *PathOptions {
	return &PathOptions{
		Lambdas:         []float64{models.DefaultLambda},
		Penalty:         models.L1,
		Iterations:      models.DefaultIterations,
		Tolerance:       models.DefaultTolerance,
		FitIntercept:    true,
		Parallelization: 1,
	}
}

// Validate runs basic validation on path options.
func (p *PathOptions) Validate() (*PathOptions, error) {
	if p == nil {
		p = NewDefaultPathOptions()
	}

	if len(p.Lambdas) == 0 {
		return nil, ErrNoLambdas
	}
	for _, lambda := range p.Lambdas {
		if lambda < 0.0 {
			return nil, models.ErrNegativeLambda
		}
	}
	if p.Penalty == "" {
		p.Penalty = models.L1
	}
	if p.Iterations < 0 {
		return nil, models.ErrNegativeIterations
	}
	if p.Tolerance < 0 {
		return nil, models.ErrNegativeTolerance
	}
	if p.Parallelization <= 0 || p.Parallelization > len(p.Lambdas) {
		p.Parallelization = len(p.Lambdas)
	}
	return p, nil
}

// PathPoint records the outcome of a single lambda fit along the path.
type PathPoint struct {
	Lambda    float64   `json:"lambda"`
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coef"`
	R2        float64   `json:"r2"`
	Zeros     int       `json:"zeros"`
	Converged bool      `json:"converged"`
}

// Path fits one coordinate descent model per lambda and tracks the best fit
// by training R2. Fits run on a bounded worker pool; each fit only touches
// its own model so the only shared state is the best-fit bookkeeping.
type Path struct {
	opt *PathOptions

	points []PathPoint

	mu        sync.Mutex
	bestScore float64
	bestIdx   int
	bestModel *models.CoordDescent
}

// NewPath initializes a regularization path sweep.
func NewPath(opt *PathOptions) (*Path, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Path{
		opt:     opt,
		bestIdx: -1,
	}, nil
}

// Fit sweeps the lambda grid over the training dataset.
func (p *Path) Fit(d *dataset.Dataset) error {
	if p.opt == nil {
		return ErrNoPathOpts
	}
	if d == nil {
		return models.ErrNoTrainingData
	}

	p.points = make([]PathPoint, len(p.opt.Lambdas))
	p.bestIdx = -1
	p.bestModel = nil

	// every fit on the path reads the same dataset, so the column views and
	// dot products are computed once and shared
	pre, err := models.Precompute(d, p.opt.FitIntercept)
	if err != nil {
		return err
	}

	sem := make(chan struct{}, p.opt.Parallelization)
	var wg sync.WaitGroup
	for i, lambda := range p.opt.Lambdas {
		sem <- struct{}{}
		wg.Add(1)
		go p.runFit(i, lambda, d, pre, &wg, sem)
	}
	wg.Wait()

	if p.bestModel == nil {
		return ErrNotFitted
	}
	return nil
}

func (p *Path) runFit(i int, lambda float64, d *dataset.Dataset, pre *models.Precomputed, wg *sync.WaitGroup, sem chan struct{}) {
	defer func() {
		wg.Done()
		<-sem
	}()

	opt := &models.Options{
		Penalty:      p.opt.Penalty,
		Lambda:       lambda,
		Iterations:   p.opt.Iterations,
		Tolerance:    p.opt.Tolerance,
		FitIntercept: p.opt.FitIntercept,
	}
	reg, err := models.NewCoordDescent(opt)
	if err != nil {
		slog.Error("unable to initialize coordinate descent model", "lambda", lambda, "error", err.Error())
		return
	}
	reg.SetPrecomputed(pre)

	if err := reg.Fit(d); err != nil {
		slog.Error("unable to fit coordinate descent model", "lambda", lambda, "error", err.Error())
		return
	}

	r2, err := reg.Score(d.X(), d.Y())
	if err != nil {
		slog.Error("unable to compute fit score for coordinate descent model", "lambda", lambda, "error", err.Error())
		return
	}

	coef := reg.Coef()
	zeros := 0
	for _, c := range coef {
		if c == 0 {
			zeros++
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.points[i] = PathPoint{
		Lambda:    lambda,
		Intercept: reg.Intercept(),
		Coef:      coef,
		R2:        r2,
		Zeros:     zeros,
		Converged: reg.Result().Converged,
	}
	if p.bestModel == nil || r2 > p.bestScore {
		p.bestScore = r2
		p.bestIdx = i
		p.bestModel = reg
	}
}

// Best returns the model with the highest training R2 along the path.
func (p *Path) Best() *models.CoordDescent {
	return p.bestModel
}

// BestLambda returns the lambda of the best scoring fit.
func (p *Path) BestLambda() (float64, error) {
	if p.bestIdx < 0 {
		return 0.0, ErrNotFitted
	}
	return p.points[p.bestIdx].Lambda, nil
}

// Points returns the per lambda results in grid order.
func (p *Path) Points() []PathPoint {
	return p.points
}
