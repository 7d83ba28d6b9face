// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"go.uber.org/zap"

	"github.com/TruongQuocChien/FFTHomPy/internal/tensor"
)

// omegaFloor is the magnitude below which the exact Galerkin step size is
// considered untrustworthy: beta and the residual are then nearly
// orthogonal and the iterate would stall, so the approximate ratio is used
// for that step instead.
const omegaFloor = 1e-1

// MinimalResidualConfig configures the minimal residual solver.
type MinimalResidualConfig[T tensor.Tensor[T]] struct {
	MinimalResidualParams

	// X0 is the initial guess. When nil the right-hand side is used.
	X0 T

	// Norm overrides the residual norm. Fourier-domain tensor
	// implementations supply their domain norm here; nil means
	// Tensor.Norm.
	Norm func(x T) float64

	// Logger receives divergence and non-convergence diagnostics. Nil
	// means no logging.
	Logger *zap.Logger
}

// MinimalResidual solves A·x = B by steepest residual descent: each step
// moves along the current residual with a step size omega that minimizes the
// new residual norm.
//
// With ApproxOmega the step size is the cheap ratio ‖r‖/‖Ar‖; otherwise it
// is the exact value ⟨Ar, r⟩/‖Ar‖², falling back to the ratio whenever the
// exact value's magnitude drops below 0.1. The residual is updated cheaply
// from the previous one and recomputed exactly every 10th iteration to
// control drift. With DivCrit the iteration stops as soon as the residual
// norm grows, before the grown norm enters the history.
func MinimalResidual[T tensor.Tensor[T]](op tensor.Operator[T], b T, cfg MinimalResidualConfig[T]) (T, Report, error) {
	cfg.MinimalResidualParams = cfg.MinimalResidualParams.withDefaults()
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	norm := cfg.Norm
	if norm == nil {
		norm = func(t T) float64 { return t.Norm() }
	}

	x := b
	if !isNilTensor(cfg.X0) {
		x = cfg.X0
	}

	residuum := b.Sub(op.Apply(x))
	var tr tracker
	tr.seed(norm(residuum))
	beta := op.Apply(residuum)

	ref := x.Constant()

	normRes := tr.latest()
	for normRes > cfg.Tol && !tr.exhausted(cfg.MaxIter) {
		tr.begin()

		var omega float64
		if cfg.ApproxOmega {
			omega = normRes / norm(beta)
		} else {
			nb := norm(beta)
			omega = beta.Inner(residuum) / (nb * nb)
			if math.Abs(omega) < omegaFloor {
				omega = normRes / nb
			}
		}

		x = x.Add(residuum.Scale(omega))
		x = correctMean(x, ref, cfg.Rank, cfg.TruncTol)

		// Every 10th iteration the residual is recomputed exactly;
		// in between the recursive update is enough.
		if tr.kit%10 == 0 {
			residuum = b.Sub(op.Apply(x))
		} else {
			residuum = residuum.Sub(beta.Scale(omega)).Truncate(cfg.Rank, cfg.TruncTol)
		}

		normRes = norm(residuum)
		if cfg.DivCrit && tr.diverging(normRes) {
			logger.Warn("minimal residual solver diverging, stopping",
				zap.Int("iterations", tr.kit),
				zap.Float64("residual", normRes),
				zap.Float64("previous", tr.latest()))
			break
		}
		tr.record(normRes)

		beta = op.Apply(residuum)
	}

	rep := tr.report(cfg.Tol)
	if !rep.Converged {
		logger.Warn("minimal residual solver did not converge",
			zap.Int("iterations", rep.Iterations),
			zap.Float64("residual", tr.latest()),
			zap.Float64("tol", cfg.Tol))
	}
	return x, rep, nil
}
