// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults shared by every solver variant.
const (
	// DefaultTol is the residual tolerance used when none is configured.
	DefaultTol = 1e-6

	// DefaultMaxIter is the iteration ceiling used when none is configured.
	DefaultMaxIter = 10_000_000
)

// ChebyshevParams is the scalar parameter block of the Chebyshev solver.
// The zero value of Tol and MaxIter means "use the default"; EigRange has no
// default and must be set.
type ChebyshevParams struct {
	// Tol is the tolerance on the normalized residual norm.
	Tol float64 `yaml:"tol"`
	// MaxIter bounds the number of iterations.
	MaxIter int `yaml:"maxiter"`
	// EigRange holds the extreme eigenvalues (min, max) of the symmetric
	// positive operator spectrum. Required.
	EigRange [2]float64 `yaml:"eigrange,flow"`
	// Rank and TruncTol are the truncation targets applied after each
	// combining operation; zero means unbounded.
	Rank     int     `yaml:"rank"`
	TruncTol float64 `yaml:"trunc_tol"`
}

func (p ChebyshevParams) withDefaults() ChebyshevParams {
	if p.Tol == 0 {
		p.Tol = DefaultTol
	}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultMaxIter
	}
	return p
}

// MinimalResidualParams is the scalar parameter block of the minimal
// residual solver.
type MinimalResidualParams struct {
	Tol      float64 `yaml:"tol"`
	MaxIter  int     `yaml:"maxiter"`
	Rank     int     `yaml:"rank"`
	TruncTol float64 `yaml:"trunc_tol"`
	// ApproxOmega selects the cheap ‖r‖/‖Ar‖ step size instead of the
	// exact Galerkin value.
	ApproxOmega bool `yaml:"approx_omega"`
	// DivCrit stops the iteration when the residual norm grows.
	DivCrit bool `yaml:"divcrit"`
}

func (p MinimalResidualParams) withDefaults() MinimalResidualParams {
	if p.Tol == 0 {
		p.Tol = DefaultTol
	}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultMaxIter
	}
	return p
}

// RichardsonParams is the scalar parameter block of the Richardson variants.
type RichardsonParams struct {
	// Alpha is the reciprocal step scale: the update step is 1/alpha.
	// Required; must be finite and nonzero.
	Alpha    float64 `yaml:"alpha"`
	Tol      float64 `yaml:"tol"`
	MaxIter  int     `yaml:"maxiter"`
	Rank     int     `yaml:"rank"`
	TruncTol float64 `yaml:"trunc_tol"`
	// DivCrit stops the iteration before committing a diverging step. The
	// diagnostic variant ignores it.
	DivCrit bool `yaml:"divcrit"`
}

func (p RichardsonParams) withDefaults() RichardsonParams {
	if p.Tol == 0 {
		p.Tol = DefaultTol
	}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultMaxIter
	}
	return p
}

// Settings bundles the per-algorithm parameter blocks as loaded from a YAML
// document:
//
//	chebyshev:
//	  tol: 1.0e-8
//	  eigrange: [0.5, 12.0]
//	minimal_residual:
//	  approx_omega: false
//	  divcrit: true
//	richardson:
//	  alpha: 6.25
type Settings struct {
	Chebyshev       ChebyshevParams       `yaml:"chebyshev"`
	MinimalResidual MinimalResidualParams `yaml:"minimal_residual"`
	Richardson      RichardsonParams      `yaml:"richardson"`
}

// LoadSettings parses solver settings from YAML and fills in defaults.
func LoadSettings(r io.Reader) (Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parse solver settings: %w", err)
	}
	s.Chebyshev = s.Chebyshev.withDefaults()
	s.MinimalResidual = s.MinimalResidual.withDefaults()
	s.Richardson = s.Richardson.withDefaults()
	return s, nil
}

// LoadSettingsFile reads solver settings from a YAML file.
func LoadSettingsFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open solver settings: %w", err)
	}
	defer f.Close()
	return LoadSettings(f)
}
