// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"go.uber.org/zap"

	"github.com/TruongQuocChien/FFTHomPy/internal/tensor"
	"github.com/TruongQuocChien/FFTHomPy/internal/timing"
)

// RichardsonConfig configures the Richardson variants.
type RichardsonConfig[T tensor.Tensor[T]] struct {
	RichardsonParams

	// X0 is the initial guess. When nil, B scaled by the step size is
	// used.
	X0 T

	// Norm overrides the residual norm; nil means Tensor.Norm.
	Norm func(x T) float64

	// Logger receives divergence and non-convergence diagnostics. Nil
	// means no logging.
	Logger *zap.Logger
}

// Richardson solves A·x = B with the fixed-step iteration
//
//	x ← x + (1/alpha)·(B − A(x))
//
// The recorded history starts with ‖B‖ and then holds the raw residual norm
// of each completed iteration. With DivCrit the divergence check runs before
// the update, so a diverging step is never committed: the returned iterate
// is the last stable one. Alpha must be a finite nonzero real
// (ErrInvalidAlpha otherwise).
func Richardson[T tensor.Tensor[T]](op tensor.Operator[T], b T, cfg RichardsonConfig[T]) (T, Report, error) {
	cfg.RichardsonParams = cfg.RichardsonParams.withDefaults()
	omega, err := stepSize(cfg.Alpha)
	if err != nil {
		var zero T
		return zero, Report{}, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	norm := cfg.Norm
	if norm == nil {
		norm = func(t T) float64 { return t.Norm() }
	}

	x := b.Scale(omega)
	if !isNilTensor(cfg.X0) {
		x = cfg.X0
	}

	var tr tracker
	tr.seed(norm(b))

	ref := x.Constant()

	normRes := math.Inf(1)
	for normRes > cfg.Tol && !tr.exhausted(cfg.MaxIter) {
		tr.begin()
		residuum := b.Sub(op.Apply(x))
		normRes = norm(residuum)
		if cfg.DivCrit && tr.diverging(normRes) {
			logger.Warn("richardson solver diverging, stopping",
				zap.Int("iterations", tr.kit),
				zap.Float64("residual", normRes),
				zap.Float64("previous", tr.latest()))
			break
		}

		x = x.Add(residuum.Scale(omega))
		x = correctMean(x, ref, cfg.Rank, cfg.TruncTol)

		tr.record(normRes)
	}

	rep := tr.report(cfg.Tol)
	if !rep.Converged {
		logger.Warn("richardson solver did not converge",
			zap.Int("iterations", rep.Iterations),
			zap.Float64("residual", tr.latest()),
			zap.Float64("tol", cfg.Tol))
	}
	return x, rep, nil
}

// RichardsonDebug is the diagnostic twin of Richardson: the entry iterate is
// truncated eagerly, no divergence check runs, every major sub-step is
// measured on the stopwatch, and one exact residual norm is appended after
// the loop exits however it terminated. It trades early-exit safety for
// deterministic, fully measured timing and is meant for performance
// analysis, not production convergence safety.
//
// A nil stopwatch allocates one logging through cfg.Logger.
func RichardsonDebug[T tensor.Tensor[T]](op tensor.Operator[T], b T, cfg RichardsonConfig[T], sw *timing.Stopwatch) (T, Report, error) {
	cfg.RichardsonParams = cfg.RichardsonParams.withDefaults()
	omega, err := stepSize(cfg.Alpha)
	if err != nil {
		var zero T
		return zero, Report{}, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	norm := cfg.Norm
	if norm == nil {
		norm = func(t T) float64 { return t.Norm() }
	}
	if sw == nil {
		sw = timing.New(logger)
	}

	x := b.Scale(omega)
	if !isNilTensor(cfg.X0) {
		x = cfg.X0
	}
	x = x.Truncate(cfg.Rank, cfg.TruncTol)

	var tr tracker
	tr.seed(norm(b))

	ref := x.Constant()

	normRes := math.Inf(1)
	for normRes > cfg.Tol && !tr.exhausted(cfg.MaxIter) {
		tr.begin()

		stop := sw.Measure("apply")
		ax := op.Apply(x)
		stop()

		stop = sw.Measure("residual")
		residuum := b.Sub(ax)
		stop()

		stop = sw.Measure("update")
		x = x.Add(residuum.Scale(omega)).Truncate(cfg.Rank, cfg.TruncTol)
		x = correctMean(x, ref, cfg.Rank, cfg.TruncTol)
		stop()

		stop = sw.Measure("norm")
		normRes = norm(residuum)
		stop()

		tr.record(normRes)
	}

	// Trailing exact residual of the final iterate, regardless of how the
	// loop terminated.
	tr.record(norm(b.Sub(op.Apply(x))))

	return x, tr.report(cfg.Tol), nil
}

// stepSize validates alpha and returns the update step 1/alpha.
func stepSize(alpha float64) (float64, error) {
	if alpha == 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, ErrInvalidAlpha
	}
	return 1 / alpha, nil
}
