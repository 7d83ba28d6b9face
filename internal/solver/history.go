// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

// Report summarizes one solver invocation.
type Report struct {
	// ResNorms holds one residual norm per completed iteration plus the
	// initial entry. It is always a slice, even on the zero-iteration path.
	// Chebyshev records norms normalized by the initial residual; the
	// Richardson variants and minimal residual record the norms their loop
	// guards actually compare.
	ResNorms []float64

	// Iterations is the number of iterations started, including one cut
	// short by the divergence criterion.
	Iterations int

	// Converged reports whether the last recorded residual norm is below
	// the configured tolerance.
	Converged bool
}

// tracker keeps the residual-norm history and iteration count for a single
// solver invocation and evaluates its stopping predicates.
type tracker struct {
	norms []float64
	kit   int
}

// seed records the initial residual entry without counting an iteration.
func (t *tracker) seed(norm float64) {
	t.norms = append(t.norms, norm)
}

// begin marks the start of an iteration.
func (t *tracker) begin() {
	t.kit++
}

// record appends a completed iteration's residual norm.
func (t *tracker) record(norm float64) {
	t.norms = append(t.norms, norm)
}

// latest returns the most recently recorded norm.
func (t *tracker) latest() float64 {
	return t.norms[len(t.norms)-1]
}

// converged reports whether the latest norm is below tol.
func (t *tracker) converged(tol float64) bool {
	return t.latest() < tol
}

// exhausted reports whether the iteration budget is spent.
func (t *tracker) exhausted(maxiter int) bool {
	return t.kit >= maxiter
}

// diverging reports whether a freshly computed norm exceeds the last
// recorded one. Callers consult it before recording, so a diverging entry
// never enters the history.
func (t *tracker) diverging(norm float64) bool {
	return norm > t.latest()
}

// report freezes the tracker into the caller-facing Report.
func (t *tracker) report(tol float64) Report {
	return Report{
		ResNorms:   t.norms,
		Iterations: t.kit,
		Converged:  t.converged(tol),
	}
}
