package combin

import (
	"github.com/sp301415/modcomb/num"
)

// ParametersLiteral is a structure for counting parameters.
type ParametersLiteral struct {
	// Modulus is the prime every result is reduced by.
	Modulus uint64
	// MaxN is the factorial table size.
	// Tables hold the indices 0 through MaxN-1,
	// which supports counting sequences of length up to MaxN.
	MaxN int
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
// Preset parameters are guaranteed to be compiled without panics.
//
// The inverse-factorial recurrence needs every table index to be
// invertible, so the literal must satisfy MaxN < Modulus.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case p.MaxN < 1:
		panic("MaxN must be at least 1")
	case !num.IsPrime(p.Modulus):
		panic("Modulus is not a prime")
	case uint64(p.MaxN) >= p.Modulus:
		panic("MaxN must be smaller than Modulus")
	}

	return Parameters{
		modulus: p.Modulus,
		maxN:    p.MaxN,
	}
}

// Parameters is a read-only structure for counting parameters.
type Parameters struct {
	// modulus is the prime every result is reduced by.
	modulus uint64
	// maxN is the factorial table size.
	maxN int
}

// Modulus returns the prime every result is reduced by.
func (p Parameters) Modulus() uint64 {
	return p.modulus
}

// MaxN returns the factorial table size.
func (p Parameters) MaxN() int {
	return p.maxN
}
