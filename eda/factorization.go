package eda

import "iter"

// Factorization is a partition of variable indices {0..L-1} into
// disjoint, non-empty factors.
type Factorization struct {
	factors [][]int
}

// Univariate returns the factorization [[0],[1],...,[len-1]], the
// starting point of ECGA's greedy linkage search.
func Univariate(len int) Factorization {
	factors := make([][]int, len)
	for i := range factors {
		factors[i] = []int{i}
	}

	return Factorization{factors: factors}
}

// Factors returns the non-empty factors in order. Callers must not
// mutate the returned slices.
func (f Factorization) Factors() [][]int {
	return f.factors
}

// Len returns the number of factors.
func (f Factorization) Len() int {
	return len(f.factors)
}

// Join returns a new factorization in which the factors at positions a
// and b are replaced by a single factor holding their concatenation.
func (f Factorization) Join(a, b int) Factorization {
	joined := make([]int, 0, len(f.factors[a])+len(f.factors[b]))
	joined = append(joined, f.factors[a]...)
	joined = append(joined, f.factors[b]...)

	next := make([][]int, 0, len(f.factors)-1)

	for i, factor := range f.factors {
		if i == a || i == b {
			continue
		}

		next = append(next, factor)
	}

	next = append(next, joined)

	return Factorization{factors: next}
}

// JoinAll enumerates Join(a, b) for every 0 <= a < b < Len(), for a
// total of Len()*(Len()-1)/2 candidate factorizations — the merge space
// ECGA's greedy search explores each round.
func (f Factorization) JoinAll() iter.Seq[Factorization] {
	return func(yield func(Factorization) bool) {
		n := f.Len()
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				if !yield(f.Join(a, b)) {
					return
				}
			}
		}
	}
}
