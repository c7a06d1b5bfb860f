// Package combination enumerates size-k subsets of a sequence in sorted order.
package combination

import "gonum.org/v1/gonum/stat/combin"

// Enumerator walks all size-k combinations of the indices 0..n-1. Each combination
// is ascending, so picking elements through Get preserves the relative order of the
// underlying sequence. An Enumerator is restartable through Init.
//
//	e.Init(len(seq), k)
//	for e.Next() {
//	    for i := 0; i < k; i++ {
//	        use(seq[e.Get(i)])
//	    }
//	}
type Enumerator struct {
	gen  *combin.CombinationGenerator
	comb []int
}

// Init restarts the enumerator over combinations of k elements from n.
// If k > n or k < 1 there are no combinations and Next reports false.
func (e *Enumerator) Init(n, k int) {
	if k < 1 || n < k {
		e.gen = nil
		e.comb = e.comb[:0]
		return
	}

	e.gen = combin.NewCombinationGenerator(n, k)
	if cap(e.comb) < k {
		e.comb = make([]int, k)
	}
	e.comb = e.comb[:k]
}

// Next advances to the next combination.
func (e *Enumerator) Next() bool {
	if e.gen == nil {
		return false
	}
	if !e.gen.Next() {
		e.gen = nil
		return false
	}

	e.gen.Combination(e.comb)

	return true
}

// Get returns the i-th index of the current combination.
func (e *Enumerator) Get(i int) int {
	return e.comb[i]
}

// Size returns the number of elements in each combination.
func (e *Enumerator) Size() int {
	return len(e.comb)
}

// Total returns the number of size-k combinations of n elements, or 0 when k > n.
func Total(n, k int) int {
	if k < 0 || n < k {
		return 0
	}
	return combin.Binomial(n, k)
}
