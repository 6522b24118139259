package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	testData := map[string]struct {
		x   [][]float64
		err error
		m   int
		n   int
	}{
		"valid": {
			x: [][]float64{
				{1, 2, 3},
				{4, 5, 6},
			},
			m: 2, n: 3,
		},
		"empty": {
			x: nil,
			m: 0, n: 0,
		},
		"ragged rows": {
			x: [][]float64{
				{1, 2},
				{3},
			},
			err: ErrColMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			a, err := NewMatrix(td.x)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			m, n := a.Shape()
			assert.Equal(t, td.m, m)
			assert.Equal(t, td.n, n)
		})
	}
}

func TestMatrixColMajorLayout(t *testing.T) {
	a, err := NewMatrix([][]float64{
		{1, 4},
		{2, 5},
		{3, 6},
	})
	require.Nil(t, err)

	col0, err := a.Col(0)
	require.Nil(t, err)
	assert.Equal(t, []float64{1, 2, 3}, col0)

	col1, err := a.Col(1)
	require.Nil(t, err)
	assert.Equal(t, []float64{4, 5, 6}, col1)

	_, err = a.Col(2)
	assert.ErrorIs(t, err, ErrColOutOfBounds)

	row, err := a.Row(1)
	require.Nil(t, err)
	assert.Equal(t, []float64{2, 5}, row)

	_, err = a.Row(3)
	assert.ErrorIs(t, err, ErrRowOutOfBounds)

	val, err := a.At(2, 1)
	require.Nil(t, err)
	assert.Equal(t, 6.0, val)
}

func TestNewMatrixFromCols(t *testing.T) {
	a, err := NewMatrixFromCols([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.Nil(t, err)

	m, n := a.Shape()
	assert.Equal(t, 3, m)
	assert.Equal(t, 2, n)

	col, err := a.Col(1)
	require.Nil(t, err)
	assert.Equal(t, []float64{4, 5, 6}, col)

	_, err = NewMatrixFromCols([][]float64{
		{1, 2, 3},
		{4, 5},
	})
	assert.ErrorIs(t, err, ErrRowMismatch)
}

func TestMatrixDense(t *testing.T) {
	a, err := NewMatrix([][]float64{
		{1, 4},
		{2, 5},
	})
	require.Nil(t, err)

	d := a.Dense()
	m, n := d.Dims()
	assert.Equal(t, 2, m)
	assert.Equal(t, 2, n)
	assert.Equal(t, 4.0, d.At(0, 1))
	assert.Equal(t, 2.0, d.At(1, 0))
}

func TestExtendCols(t *testing.T) {
	a, err := NewMatrix([][]float64{{1}, {2}})
	require.Nil(t, err)
	b, err := NewMatrix([][]float64{{3}, {4}})
	require.Nil(t, err)

	ext, err := ExtendCols(a, b)
	require.Nil(t, err)

	m, n := ext.Shape()
	assert.Equal(t, 2, m)
	assert.Equal(t, 2, n)

	col, err := ext.Col(1)
	require.Nil(t, err)
	assert.Equal(t, []float64{3, 4}, col)

	c, err := NewMatrix([][]float64{{5}})
	require.Nil(t, err)
	_, err = ExtendCols(a, c)
	assert.ErrorIs(t, err, ErrRowMismatch)

	_, err = ExtendCols(nil, b)
	assert.ErrorIs(t, err, ErrUninitialized)
}

func TestNewDataset(t *testing.T) {
	x, err := NewMatrix([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	require.Nil(t, err)

	testData := map[string]struct {
		x   *Matrix
		y   []float64
		err error
	}{
		"valid":          {x: x, y: []float64{1, 2, 3}},
		"nil matrix":     {x: nil, y: []float64{1}, err: ErrUninitialized},
		"row mismatch":   {x: x, y: []float64{1, 2}, err: ErrRowMismatch},
		"no features":    {x: &Matrix{m: 3}, y: []float64{1, 2, 3}, err: ErrNoFeatures},
		"empty features": {x: &Matrix{}, y: nil, err: ErrNoFeatures},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			d, err := New(td.x, td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			assert.Equal(t, 3, d.NumSamples())
			assert.Equal(t, 2, d.NumFeatures())
			assert.Equal(t, td.y, d.Y())

			col, err := d.Col(1)
			require.Nil(t, err)
			assert.Equal(t, []float64{2, 4, 6}, col)
		})
	}
}

func TestDatasetCopiesTarget(t *testing.T) {
	x, err := NewMatrix([][]float64{{1}, {2}})
	require.Nil(t, err)

	y := []float64{1, 2}
	d, err := New(x, y)
	require.Nil(t, err)

	y[0] = 99
	assert.Equal(t, []float64{1, 2}, d.Y())
}
