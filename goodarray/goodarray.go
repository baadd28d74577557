package goodarray

import (
	"errors"
	"fmt"

	"github.com/sp301415/modcomb/combin"
	"github.com/sp301415/modcomb/num"
)

// ErrInvalidQuery is wrapped by every error returned from a counting query.
var ErrInvalidQuery = errors.New("goodarray: invalid query")

// Counter counts good arrays over a fixed parameter set.
//
// All state is precomputed during construction and read-only afterwards,
// so a single Counter can serve queries from multiple goroutines without
// synchronization.
type Counter struct {
	// Parameters is the parameter set of this Counter.
	Parameters combin.Parameters

	evaluator *combin.Evaluator
}

// NewCounter creates a new Counter with precomputed factorial tables.
func NewCounter(params combin.Parameters) *Counter {
	return &Counter{
		Parameters: params,

		evaluator: combin.NewEvaluator(params),
	}
}

// Count returns the number of sequences of length n over an alphabet of m
// symbols with exactly k adjacent equal pairs, modulo Modulus.
//
// Such a sequence splits into n - k maximal runs of equal symbols: each of
// the k equal pairs glues two neighbors into the same run, and each of the
// remaining n - 1 - k boundaries separates two runs. Choosing which k of
// the n - 1 boundaries are glued gives C(n-1, k) arrangements. The first
// run takes any of the m symbols and every following run differs from its
// left neighbor, so there are m * (m-1)^(n-k-1) labelings. In total,
//
//	C(n-1, k) * m * (m-1)^(n-k-1) mod Modulus.
//
// Count returns an error wrapping ErrInvalidQuery unless 1 <= n <= MaxN,
// 1 <= m <= MaxN and 0 <= k <= n-1.
func (c *Counter) Count(n, m, k int) (uint64, error) {
	if err := c.validate(n, m, k); err != nil {
		return 0, err
	}
	return c.count(n, m, k), nil
}

// count computes the closed form. Arguments must be validated beforehand.
func (c *Counter) count(n, m, k int) uint64 {
	q := c.Parameters.Modulus()

	cuts := c.evaluator.Binomial(n-1, k)
	runs := num.ModExp(uint64(m-1), uint64(n-k-1), q)
	return num.ModMul(num.ModMul(cuts, uint64(m), q), runs, q)
}

func (c *Counter) validate(n, m, k int) error {
	maxN := c.Parameters.MaxN()
	switch {
	case n < 1 || n > maxN:
		return fmt.Errorf("%w: n = %d not in [1, %d]", ErrInvalidQuery, n, maxN)
	case m < 1 || m > maxN:
		return fmt.Errorf("%w: m = %d not in [1, %d]", ErrInvalidQuery, m, maxN)
	case k < 0 || k > n-1:
		return fmt.Errorf("%w: k = %d not in [0, %d]", ErrInvalidQuery, k, n-1)
	}
	return nil
}
