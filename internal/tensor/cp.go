// Copyright 2026 The FFTHomPy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math"
	"sort"
)

// CP is a canonical-polyadic low-rank tensor: a sum of rank-1 terms, each
// term a list of one factor vector per grid dimension. The value at grid
// point (i₁, …, i_d) is the sum over terms of the product of factor entries.
//
// Addition concatenates term lists, so rank grows under arithmetic and is
// brought back down by Truncate. Truncation here is greedy term dropping by
// term norm, not an optimal recompression; it is enough to exercise the
// rank-growth/re-truncation cycle the solvers are built around. Production
// decompositions with proper recompression plug in through the Tensor
// interface instead.
//
// Factor slices are shared between values and never mutated, so copies are
// cheap.
type CP struct {
	shape []int
	terms [][][]float64 // terms[r][d] has length shape[d]
}

var _ Tensor[*CP] = (*CP)(nil)

// NewCP creates a zero CP tensor (no terms) over the given grid shape.
func NewCP(shape []int) *CP {
	return &CP{shape: append([]int(nil), shape...)}
}

// Rank1 creates a rank-1 CP tensor from one factor vector per dimension.
func Rank1(factors ...[]float64) (*CP, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("tensor: rank-1 term needs at least one factor")
	}
	shape := make([]int, len(factors))
	for d, f := range factors {
		if len(f) == 0 {
			return nil, fmt.Errorf("tensor: empty factor in dimension %d", d)
		}
		shape[d] = len(f)
	}
	t := NewCP(shape)
	t.terms = [][][]float64{factors}
	return t, nil
}

// Shape returns the grid dimensions.
func (t *CP) Shape() []int { return append([]int(nil), t.shape...) }

// Rank returns the current number of rank-1 terms.
func (t *CP) Rank() int { return len(t.terms) }

// Add returns the sum; the result's rank is the sum of both ranks.
func (t *CP) Add(other *CP) *CP {
	t.mustMatch(other)
	out := NewCP(t.shape)
	out.terms = make([][][]float64, 0, len(t.terms)+len(other.terms))
	out.terms = append(out.terms, t.terms...)
	out.terms = append(out.terms, other.terms...)
	return out
}

// Sub returns t + (-1)·other.
func (t *CP) Sub(other *CP) *CP {
	return t.Add(other.Scale(-1))
}

// Scale folds the scalar into each term's first factor.
func (t *CP) Scale(s float64) *CP {
	out := NewCP(t.shape)
	out.terms = make([][][]float64, len(t.terms))
	for r, term := range t.terms {
		scaled := make([][]float64, len(term))
		first := make([]float64, len(term[0]))
		for i, v := range term[0] {
			first[i] = s * v
		}
		scaled[0] = first
		copy(scaled[1:], term[1:])
		out.terms[r] = scaled
	}
	return out
}

// Inner returns the Frobenius inner product. For CP tensors it separates
// into per-dimension dot products, costing O(rank² · Σ N_d) instead of the
// full grid size.
func (t *CP) Inner(other *CP) float64 {
	t.mustMatch(other)
	var sum float64
	for _, a := range t.terms {
		for _, b := range other.terms {
			prod := 1.0
			for d := range a {
				prod *= dot(a[d], b[d])
			}
			sum += prod
		}
	}
	return sum
}

// Norm returns the Frobenius norm. Cancellation between terms can push the
// separated inner product slightly negative; it is clamped at zero.
func (t *CP) Norm() float64 {
	return math.Sqrt(math.Max(t.Inner(t), 0))
}

// Mean returns the arithmetic mean over all grid points, separated per term.
func (t *CP) Mean() float64 {
	var sum float64
	for _, term := range t.terms {
		prod := 1.0
		for _, f := range term {
			prod *= mean(f)
		}
		sum += prod
	}
	return sum
}

// Truncate drops weak terms: terms are ordered by decreasing norm, then cut
// at the rank bound and below tol relative to the strongest term.
func (t *CP) Truncate(rank int, tol float64) *CP {
	if len(t.terms) == 0 {
		return t
	}
	norms := make([]float64, len(t.terms))
	order := make([]int, len(t.terms))
	for r, term := range t.terms {
		n := 1.0
		for _, f := range term {
			n *= math.Sqrt(dot(f, f))
		}
		norms[r] = n
		order[r] = r
	}
	sort.Slice(order, func(i, j int) bool { return norms[order[i]] > norms[order[j]] })

	cutoff := 0.0
	if tol > 0 {
		cutoff = tol * norms[order[0]]
	}
	out := NewCP(t.shape)
	for _, r := range order {
		if rank > 0 && len(out.terms) >= rank {
			break
		}
		if norms[r] <= cutoff {
			break
		}
		out.terms = append(out.terms, t.terms[r])
	}
	return out
}

// Constant returns the rank-1 all-ones field over the same grid.
func (t *CP) Constant() *CP {
	term := make([][]float64, len(t.shape))
	for d, n := range t.shape {
		f := make([]float64, n)
		for i := range f {
			f[i] = 1
		}
		term[d] = f
	}
	out := NewCP(t.shape)
	out.terms = [][][]float64{term}
	return out
}

// Dense materializes the full grid. Intended for tests and small problems.
func (t *CP) Dense() *Dense {
	out := Zeros(t.shape)
	idx := make([]int, len(t.shape))
	for i := range out.data {
		for _, term := range t.terms {
			prod := 1.0
			for d, f := range term {
				prod *= f[idx[d]]
			}
			out.data[i] += prod
		}
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < t.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return out
}

func (t *CP) mustMatch(other *CP) {
	if len(t.shape) != len(other.shape) {
		panic(fmt.Sprintf("tensor: shape mismatch %v vs %v", t.shape, other.shape))
	}
	for i, n := range t.shape {
		if other.shape[i] != n {
			panic(fmt.Sprintf("tensor: shape mismatch %v vs %v", t.shape, other.shape))
		}
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i, v := range a {
		sum += v * b[i]
	}
	return sum
}

func mean(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum / float64(len(a))
}
