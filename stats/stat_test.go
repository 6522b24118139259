package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/avelars/shrinkage/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutliers(t *testing.T) {
	y := []float64{1, 2, 1, 2, 1, 2, 1, 2, 1, 100}
	idx := DetectOutliers(y, 0.1, 0.8, 1.0)
	assert.Equal(t, []int{9}, idx)

	clean := []float64{1, 2, 1, 2, 1, 2, 1, 2, 1, 2}
	assert.Empty(t, DetectOutliers(clean, 0.1, 0.8, 3.0))

	// a full percentile window anchors the upper fence at the max value
	assert.Empty(t, DetectOutliers([]float64{1, 2, 3, 4, 5}, 0.0, 1.0, 1.5))

	assert.Empty(t, DetectOutliers(nil, 0.25, 0.75, 1.5))
}

func TestVarianceInflationFactor(t *testing.T) {
	n := 200
	a := dataset.GenerateSin(n, 1, math.Sqrt2)
	b := dataset.GenerateSin(n, 2, math.Sqrt2)
	rnd := rand.New(rand.NewPCG(3, 9))

	// c is almost a rescaled copy of a, so a and c should both inflate
	c := make([]float64, n)
	for i := range c {
		c[i] = 2.0*a[i] + 0.01*rnd.NormFloat64()
	}

	vif, err := VarianceInflationFactor(map[string][]float64{
		"a": a,
		"b": b,
		"c": c,
	})
	require.Nil(t, err)

	assert.Greater(t, vif["a"], 10.0)
	assert.Greater(t, vif["c"], 10.0)
	assert.Less(t, vif["b"], 2.0)
}

func TestVarianceInflationFactorValidation(t *testing.T) {
	_, err := VarianceInflationFactor(map[string][]float64{"a": {1, 2}})
	assert.ErrorIs(t, err, ErrMinimumFeatures)

	_, err = VarianceInflationFactor(map[string][]float64{
		"a": {1},
		"b": {1},
	})
	assert.ErrorIs(t, err, ErrFeatureLen)

	_, err = VarianceInflationFactor(map[string][]float64{
		"a": {1, 2, 3},
		"b": {1, 2},
	})
	assert.ErrorIs(t, err, ErrFeatureLenMismatch)
}
