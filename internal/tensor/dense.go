// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math"
)

// Dense is the full-rank reference implementation of Tensor: a flat float64
// array over a grid of dimensions Shape. Truncate is the identity, so Dense
// behaves exactly like classical dense linear algebra. It is the ground
// truth the low-rank formats are tested against.
type Dense struct {
	shape []int
	data  []float64
}

var _ Tensor[*Dense] = (*Dense)(nil)

// NewDense creates a dense tensor over the given grid shape, taking
// ownership of data. The data length must equal the product of the shape
// dimensions.
func NewDense(shape []int, data []float64) (*Dense, error) {
	n := numel(shape)
	if len(data) != n {
		return nil, fmt.Errorf("tensor: data length %d does not match shape %v (%d elements)", len(data), shape, n)
	}
	return &Dense{shape: append([]int(nil), shape...), data: data}, nil
}

// Zeros creates a dense tensor filled with zeros.
func Zeros(shape []int) *Dense {
	return &Dense{shape: append([]int(nil), shape...), data: make([]float64, numel(shape))}
}

// Full creates a dense tensor filled with value.
func Full(shape []int, value float64) *Dense {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Shape returns the grid dimensions.
func (t *Dense) Shape() []int { return append([]int(nil), t.shape...) }

// Data returns the backing array. Mutating it mutates the tensor; solver
// code never does, but test operators use it to act elementwise.
func (t *Dense) Data() []float64 { return t.data }

// Add returns the elementwise sum.
func (t *Dense) Add(other *Dense) *Dense {
	t.mustMatch(other)
	out := Zeros(t.shape)
	for i, v := range t.data {
		out.data[i] = v + other.data[i]
	}
	return out
}

// Sub returns the elementwise difference.
func (t *Dense) Sub(other *Dense) *Dense {
	t.mustMatch(other)
	out := Zeros(t.shape)
	for i, v := range t.data {
		out.data[i] = v - other.data[i]
	}
	return out
}

// Scale returns the tensor multiplied by s.
func (t *Dense) Scale(s float64) *Dense {
	out := Zeros(t.shape)
	for i, v := range t.data {
		out.data[i] = s * v
	}
	return out
}

// Inner returns the Frobenius inner product with other.
func (t *Dense) Inner(other *Dense) float64 {
	t.mustMatch(other)
	var sum float64
	for i, v := range t.data {
		sum += v * other.data[i]
	}
	return sum
}

// Norm returns the Frobenius norm.
func (t *Dense) Norm() float64 {
	return math.Sqrt(t.Inner(t))
}

// Mean returns the arithmetic mean over all grid points.
func (t *Dense) Mean() float64 {
	var sum float64
	for _, v := range t.data {
		sum += v
	}
	return sum / float64(len(t.data))
}

// Truncate is the identity: a dense tensor carries no rank structure.
func (t *Dense) Truncate(rank int, tol float64) *Dense { return t }

// Constant returns the all-ones field over the same grid.
func (t *Dense) Constant() *Dense { return Full(t.shape, 1) }

func (t *Dense) mustMatch(other *Dense) {
	if len(t.shape) != len(other.shape) {
		panic(fmt.Sprintf("tensor: shape mismatch %v vs %v", t.shape, other.shape))
	}
	for i, n := range t.shape {
		if other.shape[i] != n {
			panic(fmt.Sprintf("tensor: shape mismatch %v vs %v", t.shape, other.shape))
		}
	}
}

func numel(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
