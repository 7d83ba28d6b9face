// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package timing provides named scoped measurements for the diagnostic
// solver variant.
package timing

import (
	"time"

	"go.uber.org/zap"
)

// Stopwatch accumulates named duration samples. Each measured scope logs at
// Debug level and is kept for aggregation afterwards.
//
// A Stopwatch is not safe for concurrent use; the solvers that feed it are
// strictly sequential.
type Stopwatch struct {
	logger  *zap.Logger
	samples map[string][]time.Duration
}

// New creates a Stopwatch logging through logger. A nil logger disables
// logging.
func New(logger *zap.Logger) *Stopwatch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stopwatch{
		logger:  logger,
		samples: make(map[string][]time.Duration),
	}
}

// Measure starts a named scope and returns the function that closes it:
//
//	stop := sw.Measure("apply")
//	y := op.Apply(x)
//	stop()
func (s *Stopwatch) Measure(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		s.samples[name] = append(s.samples[name], d)
		s.logger.Debug("scope measured",
			zap.String("scope", name),
			zap.Duration("elapsed", d))
	}
}

// Samples returns the recorded durations of a scope in measurement order.
func (s *Stopwatch) Samples(name string) []time.Duration {
	return append([]time.Duration(nil), s.samples[name]...)
}

// Total returns the summed duration of a scope.
func (s *Stopwatch) Total(name string) time.Duration {
	var total time.Duration
	for _, d := range s.samples[name] {
		total += d
	}
	return total
}

// Scopes returns the names of all measured scopes.
func (s *Stopwatch) Scopes() []string {
	names := make([]string, 0, len(s.samples))
	for name := range s.samples {
		names = append(names, name)
	}
	return names
}
