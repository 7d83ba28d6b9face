// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/TruongQuocChien/FFTHomPy/internal/tensor"
)

// Tensor is the arithmetic capability a solver iterate must provide.
type Tensor[T any] = tensor.Tensor[T]

// Operator is an implicit linear map applied to a tensor state.
type Operator[T Tensor[T]] = tensor.Operator[T]

// OperatorFunc adapts a plain function to the Operator interface.
type OperatorFunc[T Tensor[T]] = tensor.OperatorFunc[T]

// Dense is the full-rank reference implementation of Tensor.
type Dense = tensor.Dense

// CP is a canonical-polyadic low-rank tensor.
type CP = tensor.CP

// NewDense creates a dense tensor over the given grid shape, taking
// ownership of data.
func NewDense(shape []int, data []float64) (*Dense, error) {
	return tensor.NewDense(shape, data)
}

// Zeros creates a dense tensor filled with zeros.
func Zeros(shape []int) *Dense {
	return tensor.Zeros(shape)
}

// Full creates a dense tensor filled with value.
func Full(shape []int, value float64) *Dense {
	return tensor.Full(shape, value)
}

// NewCP creates a zero CP tensor (no terms) over the given grid shape.
func NewCP(shape []int) *CP {
	return tensor.NewCP(shape)
}

// Rank1 creates a rank-1 CP tensor from one factor vector per dimension.
func Rank1(factors ...[]float64) (*CP, error) {
	return tensor.Rank1(factors...)
}
