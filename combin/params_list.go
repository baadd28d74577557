package combin

import "github.com/consensys/gnark-crypto/field/goldilocks"

var (
	// ParamsN100000P1000000007 is a parameters set for counting sequences of
	// length up to 10^5 over the prime 10^9 + 7.
	ParamsN100000P1000000007 = ParametersLiteral{
		Modulus: 1_000_000_007,
		MaxN:    100_000,
	}

	// ParamsN100000P998244353 is a parameters set for counting sequences of
	// length up to 10^5 over the prime 998244353 = 119 * 2^23 + 1,
	// whose multiplicative group supports transforms of length up to 2^23.
	ParamsN100000P998244353 = ParametersLiteral{
		Modulus: 998_244_353,
		MaxN:    100_000,
	}

	// ParamsN100000Goldilocks is a parameters set for counting sequences of
	// length up to 10^5 over the Goldilocks prime 2^64 - 2^32 + 1,
	// matching proof systems built on that field.
	ParamsN100000Goldilocks = ParametersLiteral{
		Modulus: goldilocks.Modulus().Uint64(),
		MaxN:    100_000,
	}
)
