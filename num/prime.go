package num

import (
	"math/bits"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// sieveBound bounds the sieve of small primes used for trial division.
// Trial division alone decides every value up to sieveBound^2.
const sieveBound = 1 << 12

// smallPrimes returns the primes below sieveBound, sieved once per process.
var smallPrimes = sync.OnceValue(func() []uint64 {
	composite := bitset.New(sieveBound)
	for p := uint(2); p*p < sieveBound; p++ {
		if composite.Test(p) {
			continue
		}
		for c := p * p; c < sieveBound; c += p {
			composite.Set(c)
		}
	}

	primes := make([]uint64, 0, 600)
	for p, ok := composite.NextClear(2); ok && p < sieveBound; p, ok = composite.NextClear(p + 1) {
		primes = append(primes, uint64(p))
	}
	return primes
})

// millerRabinBases is a witness set deciding primality exactly
// for every integer below 3.3 * 10^24, which covers uint64.
var millerRabinBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether v is prime.
// The answer is exact over the whole uint64 range:
// trial division by the sieved small primes,
// then a deterministic Miller-Rabin round per witness base.
func IsPrime(v uint64) bool {
	if v < 2 {
		return false
	}

	for _, p := range smallPrimes() {
		if v == p {
			return true
		}
		if v%p == 0 {
			return false
		}
		if p*p > v {
			return true
		}
	}

	// v has no prime factor below sieveBound here,
	// so every witness base is nonzero modulo v.
	d := v - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)

	for _, a := range millerRabinBases {
		x := ModExp(a, d, v)
		if x == 1 || x == v-1 {
			continue
		}

		witness := true
		for i := 0; i < s-1; i++ {
			x = ModMul(x, x, v)
			if x == v-1 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}

	return true
}
