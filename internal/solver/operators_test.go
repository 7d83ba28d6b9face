// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/TruongQuocChien/FFTHomPy/internal/tensor"
)

// identity returns the identity operator on dense tensors.
func identity() tensor.OperatorFunc[*tensor.Dense] {
	return func(x *tensor.Dense) *tensor.Dense { return x }
}

// stiffness returns the operator a·I + c·L on a 1D periodic grid, where L is
// the circulant second-difference Laplacian. It is symmetric positive
// definite on the zero-mean subspace with eigenvalues
// a + c·2(1−cos(2πk/n)), k = 1…n−1, and it preserves zero-mean fields.
func stiffness(a, c float64) tensor.OperatorFunc[*tensor.Dense] {
	return func(x *tensor.Dense) *tensor.Dense {
		in := x.Data()
		n := len(in)
		out := make([]float64, n)
		for i := range in {
			lap := 2*in[i] - in[(i+n-1)%n] - in[(i+1)%n]
			out[i] = a*in[i] + c*lap
		}
		y, err := tensor.NewDense(x.Shape(), out)
		if err != nil {
			panic(err)
		}
		return y
	}
}

// stiffnessEig returns the extreme eigenvalues of stiffness(a, c) on the
// zero-mean subspace of an n-point grid.
func stiffnessEig(a, c float64, n int) [2]float64 {
	lo := a + c*2*(1-math.Cos(2*math.Pi/float64(n)))
	hi := a + c*2*(1-math.Cos(2*math.Pi*math.Floor(float64(n)/2)/float64(n)))
	return [2]float64{lo, hi}
}

// waves builds a zero-mean right-hand side from two Fourier modes on an
// n-point grid.
func waves(n int) *tensor.Dense {
	data := make([]float64, n)
	for i := range data {
		t := 2 * math.Pi * float64(i) / float64(n)
		data[i] = math.Sin(t) + 0.5*math.Sin(2*t)
	}
	b, err := tensor.NewDense([]int{n}, data)
	if err != nil {
		panic(err)
	}
	return b
}

// sine builds a single zero-mean Fourier mode, an eigenvector of stiffness.
func sine(n int) *tensor.Dense {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}
	b, err := tensor.NewDense([]int{n}, data)
	if err != nil {
		panic(err)
	}
	return b
}
