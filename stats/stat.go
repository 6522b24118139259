// Package stats carries tabular diagnostics that are useful before fitting
// a penalized regression, e.g. spotting the collinearity that motivates
// ridge shrinkage in the first place.
package stats

import (
	"errors"
	"math"
	"sort"

	"github.com/avelars/shrinkage/dataset"
	"github.com/avelars/shrinkage/models"
)

var (
	ErrMinimumFeatures    = errors.New("need at least 2 features to compute VIF")
	ErrFeatureLenMismatch = errors.New("some feature length is not consistent")
	ErrFeatureLen         = errors.New("must have at least 2 points per feature")
)

// DetectOutliers finds indexes of target values outside the Tukey fences
// anchored at the given percentile window. The fences sit tukeyFactor inner
// ranges beyond the window, so a factor of 1.5 with a quartile window matches
// the classic boxplot rule.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	if len(y) == 0 {
		return nil
	}
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	sorted := make([]float64, len(y))
	copy(sorted, y)
	sort.Float64s(sorted)

	lowerIdx := int(math.Floor(float64(len(sorted)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(sorted)) * upperPerc))
	if upperIdx >= len(sorted) {
		upperIdx = len(sorted) - 1
	}

	lower := sorted[lowerIdx]
	upper := sorted[upperIdx]
	spread := (upper - lower) * tukeyFactor
	lower -= spread
	upper += spread

	var outlierIdx []int
	for i, v := range y {
		if v >= upper || v <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

// VarianceInflationFactor regresses each named feature on all of the others
// and reports 1/(1-R^2) per feature. Values well above 1 indicate a feature
// that is nearly a linear combination of the rest.
func VarianceInflationFactor(features map[string][]float64) (map[string]float64, error) {
	if len(features) < 2 {
		return nil, ErrMinimumFeatures
	}

	var m int
	for _, feature := range features {
		if len(feature) < 2 {
			return nil, ErrFeatureLen
		}
		if m == 0 {
			m = len(feature)
			continue
		}
		if m != len(feature) {
			return nil, ErrFeatureLenMismatch
		}
	}

	vif := make(map[string]float64, len(features))
	for label, labelFeature := range features {
		cols := make([][]float64, 0, len(features)-1)
		for otherLabel, otherLabelFeature := range features {
			if otherLabel == label {
				continue
			}
			cols = append(cols, otherLabelFeature)
		}

		x, err := dataset.NewMatrixFromCols(cols)
		if err != nil {
			return nil, err
		}
		d, err := dataset.New(x, labelFeature)
		if err != nil {
			return nil, err
		}

		ols, err := models.NewOLS(nil)
		if err != nil {
			return nil, err
		}
		if err := ols.Fit(d); err != nil {
			return nil, err
		}
		r2, err := ols.Score(x, labelFeature)
		if err != nil {
			return nil, err
		}

		if r2 >= 1.0 {
			vif[label] = math.Inf(1)
			continue
		}
		vif[label] = 1.0 / (1.0 - r2)
	}
	return vif, nil
}
