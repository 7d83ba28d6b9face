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

func TestChebyshev_RequiresEigRange(t *testing.T) {
	b := waves(8)

	_, _, err := Chebyshev(identity(), b, ChebyshevConfig[*tensor.Dense]{})
	require.ErrorIs(t, err, ErrEigRangeRequired)
}

func TestChebyshev_ZeroRHS(t *testing.T) {
	b := tensor.Zeros([]int{4})

	x, rep, err := Chebyshev(identity(), b, ChebyshevConfig[*tensor.Dense]{
		ChebyshevParams: ChebyshevParams{EigRange: [2]float64{1, 1}},
	})
	require.NoError(t, err)

	// With a zero right-hand side the initial normalized residual is
	// already zero: no iterations, a single-entry history, and the
	// initial guess comes back as the solution.
	assert.Equal(t, 0, rep.Iterations)
	assert.True(t, rep.Converged)
	assert.Equal(t, []float64{0}, rep.ResNorms)
	assert.Equal(t, 0.0, x.Norm())
}

func TestChebyshev_SPDConvergence(t *testing.T) {
	const n = 8
	op := stiffness(1, 1)
	b := waves(n)

	var calls int
	x, rep, err := Chebyshev(op, b, ChebyshevConfig[*tensor.Dense]{
		ChebyshevParams: ChebyshevParams{
			Tol:      1e-9,
			MaxIter:  500,
			EigRange: stiffnessEig(1, 1, n),
		},
		Callback: func(*tensor.Dense) { calls++ },
	})
	require.NoError(t, err)

	require.True(t, rep.Converged, "residual history: %v", rep.ResNorms)
	assert.Greater(t, rep.Iterations, 1)
	assert.Len(t, rep.ResNorms, rep.Iterations+1)
	assert.Less(t, rep.ResNorms[rep.Iterations], 1e-9)
	assert.Equal(t, rep.Iterations, calls, "callback once per completed iteration")

	// The mean-correction projector must leave a numerically zero-mean
	// iterate.
	assert.InDelta(t, 0, x.Mean(), 1e-12)

	// The returned iterate really solves the system.
	res := b.Sub(op.Apply(x))
	assert.Less(t, res.Norm(), 1e-8)
}

func TestChebyshev_IdentityRoundTripOneIteration(t *testing.T) {
	// Identity operator, rank-1 zero-mean right-hand side, zero initial
	// guess, loose tolerance: one iteration lands exactly on B.
	b, err := tensor.Rank1([]float64{1, -1}, []float64{1, 1})
	require.NoError(t, err)

	x, rep, err := Chebyshev(
		tensor.OperatorFunc[*tensor.CP](func(x *tensor.CP) *tensor.CP { return x }),
		b,
		ChebyshevConfig[*tensor.CP]{
			ChebyshevParams: ChebyshevParams{
				Tol:      1e-3,
				EigRange: [2]float64{1, 1},
			},
			X0: tensor.NewCP([]int{2, 2}),
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Iterations)
	assert.True(t, rep.Converged)
	assert.Equal(t, 1, x.Rank())

	want := b.Dense().Data()
	got := x.Dense().Data()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

func TestChebyshev_AlreadyConvergedInitialGuess(t *testing.T) {
	b := waves(8)

	// x0 = B with the identity operator has a zero residual up front.
	x, rep, err := Chebyshev(identity(), b, ChebyshevConfig[*tensor.Dense]{
		ChebyshevParams: ChebyshevParams{EigRange: [2]float64{1, 1}},
		X0:              b,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Iterations)
	assert.True(t, rep.Converged)
	assert.Len(t, rep.ResNorms, 1)
	assert.Equal(t, b, x)
}
