package combin

import (
	"github.com/sp301415/modcomb/num"
)

// Evaluator evaluates combinatoric quantities over a fixed parameter set.
//
// The factorial tables are filled during construction and never written
// afterwards, so a single Evaluator can be shared across goroutines
// without synchronization.
type Evaluator struct {
	// Parameters is the parameter set of this Evaluator.
	Parameters Parameters

	// fact holds i! mod Modulus for i in [0, MaxN).
	fact []uint64
	// factInv holds (i!)^-1 mod Modulus for i in [0, MaxN).
	factInv []uint64
}

// NewEvaluator creates a new Evaluator with precomputed factorial tables.
//
// Factorials are filled by a forward pass. The inverses cost a single
// Fermat exponentiation for the last entry followed by a backward pass
// over the recurrence (i!)^-1 = ((i+1)!)^-1 * (i+1), so the whole build
// is O(MaxN) multiplications.
func NewEvaluator(params Parameters) *Evaluator {
	q := params.modulus
	last := params.maxN - 1

	fact := make([]uint64, params.maxN)
	fact[0] = 1
	for i := 1; i <= last; i++ {
		fact[i] = num.ModMul(fact[i-1], uint64(i), q)
	}

	factInv := make([]uint64, params.maxN)
	factInv[last] = num.ModInverse(fact[last], q)
	for i := last; i >= 1; i-- {
		factInv[i-1] = num.ModMul(factInv[i], uint64(i), q)
	}

	return &Evaluator{
		Parameters: params,

		fact:    fact,
		factInv: factInv,
	}
}

// Factorial returns i! mod Modulus.
// Panics unless 0 <= i < MaxN.
func (e *Evaluator) Factorial(i int) uint64 {
	if i < 0 || i >= e.Parameters.maxN {
		panic("factorial index out of range")
	}
	return e.fact[i]
}

// FactorialInv returns (i!)^-1 mod Modulus.
// Panics unless 0 <= i < MaxN.
func (e *Evaluator) FactorialInv(i int) uint64 {
	if i < 0 || i >= e.Parameters.maxN {
		panic("factorial index out of range")
	}
	return e.factInv[i]
}

// Binomial returns the binomial coefficient C(n, r) mod Modulus,
// as n! * (r!)^-1 * ((n-r)!)^-1 with a reduction after every product.
// Panics unless 0 <= r <= n < MaxN.
func (e *Evaluator) Binomial(n, r int) uint64 {
	if r < 0 || r > n || n >= e.Parameters.maxN {
		panic("binomial arguments out of range")
	}
	q := e.Parameters.modulus
	return num.ModMul(num.ModMul(e.fact[n], e.factInv[r], q), e.factInv[n-r], q)
}

// Permutation returns the number of ordered selections of r out of n
// elements, n! * ((n-r)!)^-1 mod Modulus.
// Panics unless 0 <= r <= n < MaxN.
func (e *Evaluator) Permutation(n, r int) uint64 {
	if r < 0 || r > n || n >= e.Parameters.maxN {
		panic("permutation arguments out of range")
	}
	return num.ModMul(e.fact[n], e.factInv[n-r], e.Parameters.modulus)
}
