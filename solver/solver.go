// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"io"

	"go.uber.org/zap"

	"github.com/TruongQuocChien/FFTHomPy/internal/solver"
	"github.com/TruongQuocChien/FFTHomPy/internal/tensor"
	"github.com/TruongQuocChien/FFTHomPy/internal/timing"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrEigRangeRequired = solver.ErrEigRangeRequired
	ErrInvalidAlpha     = solver.ErrInvalidAlpha
)

// Defaults applied to unset scalar parameters.
const (
	DefaultTol     = solver.DefaultTol
	DefaultMaxIter = solver.DefaultMaxIter
)

// Report summarizes one solver invocation.
type Report = solver.Report

// Parameter blocks and configs.

// ChebyshevParams is the scalar parameter block of the Chebyshev solver.
type ChebyshevParams = solver.ChebyshevParams

// ChebyshevConfig configures the two-term Chebyshev solver.
type ChebyshevConfig[T tensor.Tensor[T]] = solver.ChebyshevConfig[T]

// MinimalResidualParams is the scalar parameter block of the minimal
// residual solver.
type MinimalResidualParams = solver.MinimalResidualParams

// MinimalResidualConfig configures the minimal residual solver.
type MinimalResidualConfig[T tensor.Tensor[T]] = solver.MinimalResidualConfig[T]

// RichardsonParams is the scalar parameter block of the Richardson variants.
type RichardsonParams = solver.RichardsonParams

// RichardsonConfig configures the Richardson variants.
type RichardsonConfig[T tensor.Tensor[T]] = solver.RichardsonConfig[T]

// Settings bundles the per-algorithm parameter blocks loaded from YAML.
type Settings = solver.Settings

// Stopwatch accumulates the diagnostic variant's named scope timings.
type Stopwatch = timing.Stopwatch

// Chebyshev solves A·x = B with the two-term Chebyshev semi-iteration.
//
// Example:
//
//	x, rep, err := solver.Chebyshev(op, b, solver.ChebyshevConfig[*tensor.Dense]{
//	    ChebyshevParams: solver.ChebyshevParams{EigRange: [2]float64{1.5, 5}},
//	})
func Chebyshev[T tensor.Tensor[T]](op tensor.Operator[T], b T, cfg ChebyshevConfig[T]) (T, Report, error) {
	return solver.Chebyshev(op, b, cfg)
}

// MinimalResidual solves A·x = B by steepest residual descent.
func MinimalResidual[T tensor.Tensor[T]](op tensor.Operator[T], b T, cfg MinimalResidualConfig[T]) (T, Report, error) {
	return solver.MinimalResidual(op, b, cfg)
}

// Richardson solves A·x = B with the fixed-step iteration x ← x + (1/alpha)·(B − A(x)).
func Richardson[T tensor.Tensor[T]](op tensor.Operator[T], b T, cfg RichardsonConfig[T]) (T, Report, error) {
	return solver.Richardson(op, b, cfg)
}

// RichardsonDebug runs the Richardson iteration with every sub-step timed on
// sw. A nil stopwatch allocates one logging through the config's logger.
func RichardsonDebug[T tensor.Tensor[T]](op tensor.Operator[T], b T, cfg RichardsonConfig[T], sw *Stopwatch) (T, Report, error) {
	return solver.RichardsonDebug(op, b, cfg, sw)
}

// NewStopwatch creates a stopwatch for RichardsonDebug. A nil logger
// disables logging.
func NewStopwatch(logger *zap.Logger) *Stopwatch {
	return timing.New(logger)
}

// LoadSettings parses solver settings from YAML and fills in defaults.
func LoadSettings(r io.Reader) (Settings, error) {
	return solver.LoadSettings(r)
}

// LoadSettingsFile reads solver settings from a YAML file.
func LoadSettingsFile(path string) (Settings, error) {
	return solver.LoadSettingsFile(path)
}
