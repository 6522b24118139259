package shrinkage

import (
	"errors"
	"math"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// MSE computes the mean squared error between a prediction and the actuals,
// skipping NaN values.
func MSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, ErrResLenMismatch
	}

	mse := 0.0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		diff := actual[i] - predicted[i]
		mse += diff * diff
	}
	mse /= float64(len(actual))
	return mse, nil
}

// RSquared computes the coefficient of determination between a prediction
// and the actuals. A model worse than the mean baseline scores below zero.
func RSquared(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, ErrResLenMismatch
	}

	mean := 0.0
	for _, v := range actual {
		mean += v
	}
	mean /= float64(len(actual))

	ssRes := 0.0
	ssTot := 0.0
	for i := 0; i < len(actual); i++ {
		resDiff := actual[i] - predicted[i]
		totDiff := actual[i] - mean
		ssRes += resDiff * resDiff
		ssTot += totDiff * totDiff
	}
	if ssTot == 0 {
		// constant target perfectly predicted
		if ssRes == 0 {
			return 1.0, nil
		}
		return math.Inf(-1), nil
	}
	return 1.0 - ssRes/ssTot, nil
}
