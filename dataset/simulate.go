package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Series is a single synthetic feature or target column.
type Series []float64

// Add accumulates src into the series in place.
func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// Scale multiplies every value of the series in place.
func (s Series) Scale(val float64) Series {
	floats.Scale(val, s)
	return s
}

// GenerateConst returns a series of n copies of val.
func GenerateConst(n int, val float64) Series {
	y := make([]float64, n)
	floats.AddConst(val, y)
	return Series(y)
}

// GenerateSin returns amp*sin(2*pi*cycles*i/n) over n samples. With
// amp = sqrt(2) and a whole number of cycles the column has zero mean, unit
// variance, and is orthogonal to any sinusoid of a different integer
// frequency, which makes it a convenient standardized test feature.
func GenerateSin(n, cycles int, amp float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, amp*math.Sin(2.0*math.Pi*float64(cycles)*float64(i)/float64(n)))
	}
	return Series(y)
}

// GenerateCos returns amp*cos(2*pi*cycles*i/n) over n samples.
func GenerateCos(n, cycles int, amp float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, amp*math.Cos(2.0*math.Pi*float64(cycles)*float64(i)/float64(n)))
	}
	return Series(y)
}

// GenerateNoise returns n gaussian samples with the given standard deviation
// drawn from rnd, or from the shared global source when rnd is nil.
func GenerateNoise(n int, stddev float64, rnd *rand.Rand) Series {
	normFloat := rand.NormFloat64
	if rnd != nil {
		normFloat = rnd.NormFloat64
	}
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, normFloat()*stddev)
	}
	return Series(y)
}

// GenerateLinear produces y = intercept + X*beta + noise from a known
// coefficient vector. A nil noise series is treated as zero noise.
func GenerateLinear(x *Matrix, beta []float64, intercept float64, noise Series) (Series, error) {
	if x == nil {
		return nil, fmt.Errorf("design matrix, %w", ErrUninitialized)
	}
	m, n := x.Shape()
	if len(beta) != n {
		return nil, fmt.Errorf("coefficients have length %d for %d feature columns, %w", len(beta), n, ErrColMismatch)
	}
	if noise != nil && len(noise) != m {
		return nil, fmt.Errorf("noise has length %d for %d samples, %w", len(noise), m, ErrRowMismatch)
	}

	y := make([]float64, m)
	floats.AddConst(intercept, y)
	for j := 0; j < n; j++ {
		if beta[j] == 0 {
			continue
		}
		col, err := x.Col(j)
		if err != nil {
			return nil, err
		}
		floats.AddScaled(y, beta[j], col)
	}
	if noise != nil {
		floats.Add(y, noise)
	}
	return Series(y), nil
}
