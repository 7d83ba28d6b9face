// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor defines the capability boundary the iterative solvers
// depend on: a rank-truncated tensor with the arithmetic the solvers need,
// and an implicit linear operator over it.
//
// The solvers never inspect a tensor's decomposition. Everything they do is
// expressed through the Tensor interface, so production low-rank formats
// (canonical, Tucker, tensor-train, Fourier-domain variants) plug in without
// touching the solver code. Two reference implementations live here:
//
//   - Dense: a full-rank flat array. Truncate is the identity. Used as the
//     ground-truth implementation in tests.
//   - CP: a canonical-polyadic sum of rank-1 terms whose rank grows under
//     Add and shrinks under Truncate.
package tensor

// Tensor is the arithmetic capability a solver iterate must provide.
//
// T is the implementing type itself (a pointer type), so arithmetic stays
// fully typed: *CP plus *CP is *CP, never a boxed interface.
//
// All operations return new values; implementations must not mutate the
// receiver or their arguments. Combining tensors of mismatched shape or kind
// is a programmer error and panics.
type Tensor[T any] interface {
	// Add returns the elementwise sum. For low-rank formats the result's
	// rank may grow; callers re-truncate via Truncate.
	Add(other T) T

	// Sub returns the elementwise difference.
	Sub(other T) T

	// Scale returns the tensor multiplied by a scalar.
	Scale(s float64) T

	// Inner returns the Frobenius inner product with other.
	Inner(other T) float64

	// Norm returns the Frobenius norm.
	Norm() float64

	// Mean returns the arithmetic mean over all grid points.
	Mean() float64

	// Truncate returns a reduced-rank approximation. rank <= 0 means no
	// rank bound; tol <= 0 means no tolerance-based dropping. Full-rank
	// implementations may return the receiver unchanged.
	Truncate(rank int, tol float64) T

	// Constant returns the unit constant rank-1 field in the receiver's
	// domain and shape. The solvers scale it by an iterate's mean to
	// project the mean out.
	Constant() T
}

// Operator is an implicit linear map applied to a tensor state. It stands in
// for the system matrix A in A·x = B without ever materializing A.
//
// Linearity is assumed by the residual algebra in every solver, but not
// validated.
type Operator[T Tensor[T]] interface {
	Apply(x T) T
}

// OperatorFunc adapts a plain function to the Operator interface.
//
// Example:
//
//	double := tensor.OperatorFunc[*tensor.Dense](func(x *tensor.Dense) *tensor.Dense {
//	    return x.Scale(2)
//	})
type OperatorFunc[T Tensor[T]] func(x T) T

// Apply calls f(x).
func (f OperatorFunc[T]) Apply(x T) T { return f(x) }
