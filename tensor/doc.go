// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor defines the tensor capability the iterative solvers
// consume, plus two reference implementations.
//
// # Overview
//
// This package contains:
//   - Tensor[T]: the arithmetic contract of a rank-truncated tensor
//   - Operator[T] / OperatorFunc[T]: the implicit linear map A in A·x = B
//   - Dense: a full-rank reference implementation on a flat array
//   - CP: a canonical-polyadic low-rank implementation
//
// # Basic Usage
//
//	b := tensor.Full([]int{8}, 0) // build a right-hand side
//	copy(b.Data(), samples)
//
//	// The system operator, applied implicitly.
//	op := tensor.OperatorFunc[*tensor.Dense](func(x *tensor.Dense) *tensor.Dense {
//	    return applyStiffness(x)
//	})
//
// # Custom decompositions
//
// Production low-rank formats implement Tensor[T] with T set to their own
// pointer type; the solvers only ever call the interface, so no solver code
// changes. The Constant method must return the unit constant rank-1 field in
// the implementation's own domain representation — the solvers scale it by
// an iterate's mean to enforce the zero-mean constraint.
package tensor
