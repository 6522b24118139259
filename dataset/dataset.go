// Package dataset holds the numeric training data containers consumed by the
// regression models. The design matrix is stored column major since
// coordinate descent walks the data one feature column at a time.
package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNegativeDim    = errors.New("negative dimensions not allowed")
	ErrColMismatch    = errors.New("column size mismatch")
	ErrRowMismatch    = errors.New("row size mismatch")
	ErrNoFeatures     = errors.New("matrix has no feature columns")
	ErrUninitialized  = errors.New("uninitialized matrix")
	ErrRowOutOfBounds = errors.New("row is out of bounds")
	ErrColOutOfBounds = errors.New("column is out of bounds")
)

// Matrix is a dense 2D container stored in column major order, so the j-th
// feature column is a contiguous subslice of the backing slice.
// e.g. [][]float64{{1.0, 2.0}, {1.0, 3.0}, {1.0, 4.0}} is stored as
// {1.0, 1.0, 1.0, 2.0, 3.0, 4.0}.
type Matrix struct {
	arr []float64
	m   int
	n   int
}

// NewMatrix builds a Matrix from row-oriented input, validating that every
// row has the same number of columns.
func NewMatrix(x [][]float64) (*Matrix, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}

	arr := make([]float64, m*n)
	for i, row := range x {
		for j, val := range row {
			arr[j*m+i] = val
		}
	}
	return &Matrix{arr: arr, m: m, n: n}, nil
}

// NewMatrixFromCols builds a Matrix directly from feature columns, each of
// which must have the same number of samples.
func NewMatrixFromCols(cols [][]float64) (*Matrix, error) {
	n := len(cols)

	m := -1
	for j, col := range cols {
		if m >= 0 && len(col) != m {
			return nil, fmt.Errorf("at column %d, %w", j, ErrRowMismatch)
		}
		if m < 0 {
			m = len(col)
		}
	}
	if m < 0 {
		m = 0
	}

	arr := make([]float64, 0, m*n)
	for _, col := range cols {
		arr = append(arr, col...)
	}
	return &Matrix{arr: arr, m: m, n: n}, nil
}

// Zeros returns an m by n Matrix with all values set to 0.0.
func Zeros(m, n int) (*Matrix, error) {
	if m < 0 || n < 0 {
		return nil, ErrNegativeDim
	}
	return &Matrix{arr: make([]float64, m*n), m: m, n: n}, nil
}

// Shape returns the number of rows and columns.
func (a *Matrix) Shape() (int, int) {
	return a.m, a.n
}

// At retrieves a single value at a specific row and column.
func (a *Matrix) At(r, c int) (float64, error) {
	if r < 0 || r >= a.m {
		return 0.0, ErrRowOutOfBounds
	}
	if c < 0 || c >= a.n {
		return 0.0, ErrColOutOfBounds
	}
	return a.arr[c*a.m+r], nil
}

// Col returns a slice view of the specified column. The returned slice
// aliases the matrix backing store and must not be modified by callers that
// expect the matrix to stay immutable.
func (a *Matrix) Col(c int) ([]float64, error) {
	if c < 0 || c >= a.n {
		return nil, ErrColOutOfBounds
	}
	return a.arr[c*a.m : (c+1)*a.m], nil
}

// Row copies the specified row into a new slice.
func (a *Matrix) Row(r int) ([]float64, error) {
	if r < 0 || r >= a.m {
		return nil, ErrRowOutOfBounds
	}
	res := make([]float64, 0, a.n)
	for c := 0; c < a.n; c++ {
		res = append(res, a.arr[c*a.m+r])
	}
	return res, nil
}

// Dense converts the matrix into a row major gonum Dense for routines that
// need full matrix algebra, e.g. QR factorization.
func (a *Matrix) Dense() *mat.Dense {
	if a.m == 0 || a.n == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(a.m, a.n, nil)
	for c := 0; c < a.n; c++ {
		d.SetCol(c, a.arr[c*a.m:(c+1)*a.m])
	}
	return d
}

// ExtendCols returns a new Matrix with the columns of b appended after the
// columns of a. Both must have the same number of rows.
func ExtendCols(a, b *Matrix) (*Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("first matrix argument, %w", ErrUninitialized)
	}
	if b == nil {
		return nil, fmt.Errorf("second matrix argument, %w", ErrUninitialized)
	}
	if a.m != b.m {
		return nil, fmt.Errorf("first matrix with %d rows, and second matrix with %d rows, %w", a.m, b.m, ErrRowMismatch)
	}

	arr := make([]float64, 0, len(a.arr)+len(b.arr))
	arr = append(arr, a.arr...)
	arr = append(arr, b.arr...)
	return &Matrix{arr: arr, m: a.m, n: a.n + b.n}, nil
}

// Dataset pairs a design matrix with its target vector. Construction fails
// fast on any sample count mismatch so the solvers never have to re-validate
// row alignment.
type Dataset struct {
	x *Matrix
	y []float64
}

// New validates and wraps a design matrix and target vector.
func New(x *Matrix, y []float64) (*Dataset, error) {
	if x == nil {
		return nil, fmt.Errorf("design matrix, %w", ErrUninitialized)
	}
	m, n := x.Shape()
	if n == 0 {
		return nil, ErrNoFeatures
	}
	if len(y) != m {
		return nil, fmt.Errorf("design matrix has %d rows and target has %d values, %w", m, len(y), ErrRowMismatch)
	}

	yArr := make([]float64, m)
	copy(yArr, y)
	return &Dataset{x: x, y: yArr}, nil
}

// FromRows builds a Dataset from row-oriented training data.
func FromRows(x [][]float64, y []float64) (*Dataset, error) {
	xm, err := NewMatrix(x)
	if err != nil {
		return nil, err
	}
	return New(xm, y)
}

// NumSamples returns the number of training rows.
func (d *Dataset) NumSamples() int {
	return d.x.m
}

// NumFeatures returns the number of feature columns.
func (d *Dataset) NumFeatures() int {
	return d.x.n
}

// Col returns a view of the j-th feature column.
func (d *Dataset) Col(j int) ([]float64, error) {
	return d.x.Col(j)
}

// X returns the underlying design matrix.
func (d *Dataset) X() *Matrix {
	return d.x
}

// Y returns the target vector.
func (d *Dataset) Y() []float64 {
	return d.y
}
