// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TruongQuocChien/FFTHomPy/internal/tensor"
)

func TestMinimalResidual_ExactOmegaConvergence(t *testing.T) {
	const n = 8
	op := stiffness(1, 1)
	b := waves(n)

	x, rep, err := MinimalResidual(op, b, MinimalResidualConfig[*tensor.Dense]{
		MinimalResidualParams: MinimalResidualParams{
			Tol:     1e-6,
			MaxIter: 200,
		},
	})
	require.NoError(t, err)

	require.True(t, rep.Converged, "residual history: %v", rep.ResNorms)
	assert.Len(t, rep.ResNorms, rep.Iterations+1)
	assert.InDelta(t, 0, x.Mean(), 1e-12)

	// Exact line minimization along the residual never increases its norm.
	for i := 1; i < len(rep.ResNorms); i++ {
		assert.LessOrEqual(t, rep.ResNorms[i], rep.ResNorms[i-1]+1e-12,
			"residual grew at iteration %d", i)
	}

	res := b.Sub(op.Apply(x))
	assert.Less(t, res.Norm(), 1e-5)
}

func TestMinimalResidual_OmegaFallback(t *testing.T) {
	// Spectrum in [15.7, 17.5]: the exact Galerkin step is below the 0.1
	// floor on every iteration, so each step must fall back to the
	// approximate ratio and still make monotonic progress.
	const n = 8
	op := stiffness(15, 1.25)
	b := waves(n)

	x, rep, err := MinimalResidual(op, b, MinimalResidualConfig[*tensor.Dense]{
		MinimalResidualParams: MinimalResidualParams{
			Tol:     1e-8,
			MaxIter: 300,
		},
	})
	require.NoError(t, err)

	require.True(t, rep.Converged, "residual history: %v", rep.ResNorms)
	for i := 1; i < len(rep.ResNorms); i++ {
		assert.Less(t, rep.ResNorms[i], rep.ResNorms[i-1],
			"residual grew at iteration %d", i)
	}
	assert.InDelta(t, 0, x.Mean(), 1e-12)
}

func TestMinimalResidual_ApproxOmegaEigenvector(t *testing.T) {
	// The right-hand side is an eigenvector, so the approximate ratio is
	// the exact reciprocal eigenvalue and one step solves the system.
	const n = 8
	op := stiffness(1, 1)
	b := sine(n)

	_, rep, err := MinimalResidual(op, b, MinimalResidualConfig[*tensor.Dense]{
		MinimalResidualParams: MinimalResidualParams{
			Tol:         1e-8,
			MaxIter:     50,
			ApproxOmega: true,
		},
	})
	require.NoError(t, err)

	assert.True(t, rep.Converged)
	assert.Equal(t, 1, rep.Iterations)
}

func TestMinimalResidual_DivergenceStopsBeforeRecording(t *testing.T) {
	// A 90° rotation keeps beta orthogonal to the residual: the exact
	// step is zero, the fallback step overshoots, and the residual grows.
	// With divcrit the solver must stop before the grown norm enters the
	// history, leaving the iterate at its last value.
	rotate := tensor.OperatorFunc[*tensor.Dense](func(x *tensor.Dense) *tensor.Dense {
		d := x.Data()
		out, err := tensor.NewDense(x.Shape(), []float64{-d[1], d[0]})
		if err != nil {
			panic(err)
		}
		return out
	})
	b, err := tensor.NewDense([]int{2}, []float64{1, -1})
	require.NoError(t, err)

	x, rep, err := MinimalResidual(rotate, b, MinimalResidualConfig[*tensor.Dense]{
		MinimalResidualParams: MinimalResidualParams{
			Tol:     1e-8,
			MaxIter: 50,
			DivCrit: true,
		},
	})
	require.NoError(t, err)

	assert.False(t, rep.Converged)
	assert.Equal(t, 1, rep.Iterations)
	assert.Equal(t, []float64{2}, rep.ResNorms)
	assert.Equal(t, []float64{2, -2}, x.Data())
}
