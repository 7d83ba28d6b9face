// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"reflect"

	"github.com/TruongQuocChien/FFTHomPy/internal/tensor"
)

// correctMean projects the spatial mean out of an iterate: it subtracts the
// constant reference field scaled by the iterate's mean and re-truncates.
// The physical problem class requires a zero-mean solution, so every solver
// applies this after each update.
//
// ref is the unit constant field in the iterate's domain, built once per
// solver invocation from Constant.
func correctMean[T tensor.Tensor[T]](x, ref T, rank int, tol float64) T {
	return ref.Scale(-x.Mean()).Add(x).Truncate(rank, tol)
}

// isNilTensor reports whether an optional tensor field (X0) was left unset.
// Tensor implementations are pointer types, so the zero value is a nil
// pointer.
func isNilTensor[T any](v T) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil())
}
