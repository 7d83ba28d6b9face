// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import "errors"

// Sentinel errors returned by the solver entry points. Callers match them
// with errors.Is. Fatal conditions are returned before the first iteration;
// the solvers never panic on user input.
var (
	// ErrEigRangeRequired is returned by Chebyshev when the operator's
	// extreme eigenvalues are not supplied. The two-term recurrence has no
	// fallback spectral estimation.
	ErrEigRangeRequired = errors.New("solver: chebyshev requires the operator eigenvalue range")

	// ErrInvalidAlpha is returned by the Richardson variants when the step
	// scale alpha is zero, NaN or infinite.
	ErrInvalidAlpha = errors.New("solver: richardson step scale alpha must be a finite nonzero real")
)
