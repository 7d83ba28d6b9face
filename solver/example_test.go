// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver_test

import (
	"fmt"
	"strings"

	"github.com/TruongQuocChien/FFTHomPy/solver"
	"github.com/TruongQuocChien/FFTHomPy/tensor"
)

func Example() {
	// Identity operator and a zero-mean right-hand side: one Chebyshev
	// iteration from a zero guess recovers B exactly.
	b, _ := tensor.NewDense([]int{2}, []float64{1, -1})
	op := tensor.OperatorFunc[*tensor.Dense](func(x *tensor.Dense) *tensor.Dense {
		return x
	})

	x, rep, err := solver.Chebyshev(op, b, solver.ChebyshevConfig[*tensor.Dense]{
		ChebyshevParams: solver.ChebyshevParams{
			Tol:      1e-3,
			EigRange: [2]float64{1, 1},
		},
		X0: tensor.Zeros([]int{2}),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("converged: %t after %d iteration(s)\n", rep.Converged, rep.Iterations)
	fmt.Printf("x = %v\n", x.Data())
	// Output:
	// converged: true after 1 iteration(s)
	// x = [1 -1]
}

func ExampleLoadSettings() {
	doc := `
richardson:
  alpha: 6.25
  divcrit: true
`
	s, err := solver.LoadSettings(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("alpha=%v tol=%v divcrit=%t\n", s.Richardson.Alpha, s.Richardson.Tol, s.Richardson.DivCrit)
	// Output:
	// alpha=6.25 tol=1e-06 divcrit=true
}
