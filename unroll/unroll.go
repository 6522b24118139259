// Package unroll carries manually unrolled float64 kernels for the hot inner
// loop of coordinate descent, inspired by the SIMD blog post
// https://github.com/camdencheek/simd_blog/blob/main/main.go
package unroll

import (
	"errors"
)

const batch = 4

var ErrSliceLengthMismatch = errors.New("slices must have equal lengths")

// Dot computes the dot product of a and b, processing four lanes per
// iteration with a scalar tail. Panics if the slices differ in length.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(ErrSliceLengthMismatch)
	}

	var sum float64
	i := 0
	for ; i+batch <= len(a); i += batch {
		aTmp := a[i : i+batch : i+batch]
		bTmp := b[i : i+batch : i+batch]
		s0 := aTmp[0] * bTmp[0]
		s1 := aTmp[1] * bTmp[1]
		s2 := aTmp[2] * bTmp[2]
		s3 := aTmp[3] * bTmp[3]
		sum += s0 + s1 + s2 + s3
	}
	for ; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Sum adds up all values of a with the same four lane unroll as Dot.
func Sum(a []float64) float64 {
	var sum float64
	i := 0
	for ; i+batch <= len(a); i += batch {
		aTmp := a[i : i+batch : i+batch]
		sum += aTmp[0] + aTmp[1] + aTmp[2] + aTmp[3]
	}
	for ; i < len(a); i++ {
		sum += a[i]
	}
	return sum
}
