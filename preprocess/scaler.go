// Package preprocess implements feature standardization for callers that
// have not already scaled their design matrix upstream.
package preprocess

import (
	"errors"
	"fmt"

	"github.com/avelars/shrinkage/dataset"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmptyMatrix        = errors.New("matrix has no rows or columns")
	ErrNotFitted          = errors.New("scaler has not been fit")
	ErrFeatureLenMismatch = errors.New("number of features does not match fitted scaler")
)

// StandardScaler centers each feature column to zero mean and scales it to
// unit variance. A column with zero spread keeps a scale of 1.0 so the
// transform never divides by zero.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes the per column mean and population standard deviation.
func (s *StandardScaler) Fit(x *dataset.Matrix) error {
	if x == nil {
		return fmt.Errorf("design matrix, %w", dataset.ErrUninitialized)
	}
	m, n := x.Shape()
	if m == 0 || n == 0 {
		return ErrEmptyMatrix
	}

	s.Mean = make([]float64, n)
	s.Scale = make([]float64, n)
	for j := 0; j < n; j++ {
		col, err := x.Col(j)
		if err != nil {
			return err
		}

		mean := stat.Mean(col, nil)
		scale := stat.PopStdDev(col, nil)
		if scale == 0 {
			scale = 1.0
		}

		s.Mean[j] = mean
		s.Scale[j] = scale
	}
	return nil
}

// Transform standardizes x using the fitted statistics, returning a new
// matrix and leaving the input untouched.
func (s *StandardScaler) Transform(x *dataset.Matrix) (*dataset.Matrix, error) {
	if s.Mean == nil || s.Scale == nil {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, fmt.Errorf("design matrix, %w", dataset.ErrUninitialized)
	}
	m, n := x.Shape()
	if n != len(s.Mean) {
		return nil, fmt.Errorf("got %d features but scaler was fit on %d, %w", n, len(s.Mean), ErrFeatureLenMismatch)
	}

	cols := make([][]float64, n)
	for j := 0; j < n; j++ {
		col, err := x.Col(j)
		if err != nil {
			return nil, err
		}
		scaled := make([]float64, m)
		for i, v := range col {
			scaled[i] = (v - s.Mean[j]) / s.Scale[j]
		}
		cols[j] = scaled
	}
	return dataset.NewMatrixFromCols(cols)
}

// FitTransform fits the scaler and standardizes x in one call.
func (s *StandardScaler) FitTransform(x *dataset.Matrix) (*dataset.Matrix, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}

// InverseTransform maps standardized values back to the original units.
func (s *StandardScaler) InverseTransform(x *dataset.Matrix) (*dataset.Matrix, error) {
	if s.Mean == nil || s.Scale == nil {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, fmt.Errorf("design matrix, %w", dataset.ErrUninitialized)
	}
	m, n := x.Shape()
	if n != len(s.Mean) {
		return nil, fmt.Errorf("got %d features but scaler was fit on %d, %w", n, len(s.Mean), ErrFeatureLenMismatch)
	}

	cols := make([][]float64, n)
	for j := 0; j < n; j++ {
		col, err := x.Col(j)
		if err != nil {
			return nil, err
		}
		raw := make([]float64, m)
		for i, v := range col {
			raw[i] = v*s.Scale[j] + s.Mean[j]
		}
		cols[j] = raw
	}
	return dataset.NewMatrixFromCols(cols)
}
