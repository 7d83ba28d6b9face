// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solver provides iterative solvers for linear systems A·x = B over
// rank-truncated low-rank tensors.
//
// # Overview
//
// This package contains four iteration drivers:
//   - Chebyshev: two-term Chebyshev semi-iteration (needs the operator's
//     eigenvalue range)
//   - MinimalResidual: steepest residual descent with exact or approximate
//     step-size estimation
//   - Richardson: fixed-step iteration with optional divergence detection
//   - RichardsonDebug: the Richardson iteration with every sub-step timed,
//     for performance analysis
//
// Every variant interleaves the numerical update with low-rank
// re-truncation and a mean-correction projection, so the returned iterate
// always satisfies the zero-mean constraint of the underlying physical
// problem.
//
// # Basic Usage
//
//	op := tensor.OperatorFunc[*tensor.Dense](applyStiffness)
//
//	x, rep, err := solver.Chebyshev(op, b, solver.ChebyshevConfig[*tensor.Dense]{
//	    ChebyshevParams: solver.ChebyshevParams{
//	        Tol:      1e-8,
//	        EigRange: [2]float64{0.5, 12.0},
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//	if !rep.Converged {
//	    log.Printf("best effort after %d iterations", rep.Iterations)
//	}
//
// # Parameters from YAML
//
// Scalar parameter blocks load from a YAML document in the shape every
// solver config embeds:
//
//	s, err := solver.LoadSettingsFile("solvers.yaml")
//	x, rep, err := solver.Richardson(op, b, solver.RichardsonConfig[*tensor.Dense]{
//	    RichardsonParams: s.Richardson,
//	})
//
// # Diagnostics
//
// Configs accept a *zap.Logger; convergence reports, divergence stops and
// the diagnostic variant's scope timings are logged through it. Without a
// logger the solvers are silent. Non-convergence is never an error: the
// best-effort iterate and the full residual history come back in the Report
// either way.
package solver
