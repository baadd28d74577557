package combin

import (
	"fmt"
	"math/bits"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
)

// GenParametersLiteral generates a ParametersLiteral over a fresh prime
// modulus of bit length logQ supporting sequences of length up to maxN.
//
// The modulus is congruent to 1 modulo twice the smallest power of two
// covering maxN, so counts computed under it can feed number-theoretic
// transforms of that size. Since every generated modulus exceeds 2*maxN,
// the returned literal always compiles.
func GenParametersLiteral(logQ, maxN int) (ParametersLiteral, error) {
	if maxN < 1 {
		return ParametersLiteral{}, fmt.Errorf("maxN must be at least 1")
	}

	logN := bits.Len(uint(maxN - 1))
	if logQ < logN+2 || logQ > 61 {
		return ParametersLiteral{}, fmt.Errorf("logQ must be in [%d, 61]", logN+2)
	}

	q, _, err := rlwe.GenModuli(logN+1, []int{logQ}, nil)
	if err != nil {
		return ParametersLiteral{}, err
	}

	return ParametersLiteral{
		Modulus: q[0],
		MaxN:    maxN,
	}, nil
}
