// Package num implements various utility functions for arithmetic over 64-bit moduli.
package num

import (
	"math/bits"
)

// ModAdd returns a + b mod q.
// Inputs are reduced modulo q before use.
func ModAdd(a, b, q uint64) uint64 {
	a %= q
	b %= q
	s, carry := bits.Add64(a, b, 0)
	if carry == 1 || s >= q {
		s -= q
	}
	return s
}

// ModMul returns a * b mod q.
// The product is taken over the full 128 bits and reduced immediately,
// so any modulus below 2^64 is safe.
func ModMul(a, b, q uint64) uint64 {
	a %= q
	b %= q
	hi, lo := bits.Mul64(a, b)
	_, r := bits.Div64(hi, lo, q)
	return r
}

// ModExp returns x^y mod q using binary exponentiation.
// The zero exponent always gives 1, including ModExp(0, 0, q).
func ModExp(x, y, q uint64) uint64 {
	r := uint64(1)
	x %= q
	for y > 0 {
		if y&1 == 1 {
			r = ModMul(r, x, q)
		}
		x = ModMul(x, x, q)
		y >>= 1
	}
	return r
}

// ModInverse returns the modular inverse of x modulo a prime q,
// computed as x^(q-2) mod q by Fermat's little theorem.
// Panics if x is divisible by q, since no inverse exists then.
// For composite q the result is meaningless.
func ModInverse(x, q uint64) uint64 {
	x %= q
	if x == 0 {
		panic("modular inverse does not exist")
	}
	return ModExp(x, q-2, q)
}
