package factor

import (
	"math/big"
	"math/bits"
)

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mulMod computes a*b mod m without overflow via the 128-bit
// intermediate product. Requires a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModPow computes base^exp mod m by square and multiply.
func ModPow(base, exp, m int64) int64 {
	if m == 1 {
		return 0
	}
	b := uint64(base) % uint64(m)
	e := uint64(exp)
	mod := uint64(m)
	result := uint64(1) % mod
	for e > 0 {
		if e&1 == 1 {
			result = mulMod(result, b, mod)
		}
		b = mulMod(b, b, mod)
		e >>= 1
	}
	return int64(result)
}

// IsPrime reports whether n is prime. ProbablyPrime(0) is exact for
// every input below 2^64, which covers the whole int64 domain.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(n).ProbablyPrime(0)
}
