// Package models implements penalized linear regression fit by cyclic
// coordinate descent, along with an ordinary least squares baseline.
package models

import (
	"github.com/avelars/shrinkage/dataset"
)

type Model interface {
	Fit(d *dataset.Dataset) error
	Predict(x *dataset.Matrix) ([]float64, error)
	Score(x *dataset.Matrix, y []float64) (float64, error)
	Intercept() float64
	Coef() []float64
}
