package models

import (
	"math"
	"testing"

	"github.com/avelars/shrinkage/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T, model Model, d *dataset.Dataset, intercept float64, coef []float64, tol float64) {
	t.Helper()

	err := model.Fit(d)
	require.Nil(t, err)

	assert.InDelta(t, intercept, model.Intercept(), tol)
	assert.InDeltaSlice(t, coef, model.Coef(), tol)

	r2, err := model.Score(d.X(), d.Y())
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol)
}

// orthogonalDataset builds a design of standardized sinusoid columns at
// distinct frequencies so every column has zero mean, sum of squares equal
// to the sample count, and zero dot product against every other column. The
// target is intercept + X*beta plus a sinusoid at an unused frequency acting
// as noise orthogonal to all features.
func orthogonalDataset(t *testing.T, n int, beta []float64, intercept, noiseAmp float64) *dataset.Dataset {
	t.Helper()

	cols := make([][]float64, len(beta))
	for j := range beta {
		cols[j] = dataset.GenerateSin(n, j+1, math.Sqrt2)
	}
	x, err := dataset.NewMatrixFromCols(cols)
	require.Nil(t, err)

	var noise dataset.Series
	if noiseAmp > 0 {
		noise = dataset.GenerateSin(n, len(beta)+3, noiseAmp*math.Sqrt2)
	}
	y, err := dataset.GenerateLinear(x, beta, intercept, noise)
	require.Nil(t, err)

	d, err := dataset.New(x, y)
	require.Nil(t, err)
	return d
}

// y = 2 + 3*x0 + 4*x1, exactly linear with correlated columns
func exactDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	d, err := dataset.FromRows([][]float64{
		{0, 0},
		{3, 5},
		{9, 20},
		{12, 6},
		{15, 10},
	}, []float64{2, 31, 109, 62, 87})
	require.Nil(t, err)
	return d
}
