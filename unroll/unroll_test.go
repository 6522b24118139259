package unroll

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestDot(t *testing.T) {
	testData := map[string]struct {
		a        []float64
		b        []float64
		expected float64
	}{
		"empty":          {a: nil, b: nil, expected: 0},
		"below batch":    {a: []float64{1, 2, 3}, b: []float64{4, 5, 6}, expected: 32},
		"exact batch":    {a: []float64{1, 2, 3, 4}, b: []float64{1, 1, 1, 1}, expected: 10},
		"batch and tail": {a: []float64{1, 2, 3, 4, 5, 6}, b: []float64{1, 0, 1, 0, 1, 0}, expected: 9},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Dot(td.a, td.b))
		})
	}
}

func TestDotLengthMismatchPanics(t *testing.T) {
	assert.PanicsWithError(t, ErrSliceLengthMismatch.Error(), func() {
		Dot([]float64{1, 2}, []float64{1})
	})
}

func TestDotMatchesFloats(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 7))
	for _, n := range []int{1, 5, 64, 101, 1000} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := 0; i < n; i++ {
			a[i] = rnd.NormFloat64()
			b[i] = rnd.NormFloat64()
		}
		assert.InDelta(t, floats.Dot(a, b), Dot(a, b), 1e-9)
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
	assert.Equal(t, 21.0, Sum([]float64{1, 2, 3, 4, 5, 6}))
}
