package factor

import (
	"math/big"
	"math/bits"
)

// PrimePowerFactor returns p when n = p^k for some k >= 2, by exact
// integer k-th root extraction for every k up to floor(log2 n).
// Order finding cannot split prime powers cleanly, so they are handled
// by direct root extraction before the attempt loop runs.
//
// k runs descending: the largest exponent with an exact root yields the
// prime itself, while a smaller k would only yield a power of it
// (n = p^4 has the exact square root p^2).
func PrimePowerFactor(n int64) (int64, bool) {
	if n < 4 {
		return 0, false
	}
	maxK := bits.Len64(uint64(n)) - 1 // floor(log2 n)
	for k := maxK; k >= 2; k-- {
		if root, exact := kthRoot(n, k); exact {
			return root, true
		}
	}
	return 0, false
}

// kthRoot finds the integer k-th root of n by binary search and reports
// whether it is exact. Intermediate powers go through big.Int so large
// n cannot silently wrap, unlike floating-point root extraction.
func kthRoot(n int64, k int) (int64, bool) {
	lo, hi := int64(1), int64(1)<<uint(bits.Len64(uint64(n))/k+1)
	bigN := big.NewInt(n)
	for lo <= hi {
		mid := lo + (hi-lo)/2
		p := new(big.Int).Exp(big.NewInt(mid), big.NewInt(int64(k)), nil)
		switch p.Cmp(bigN) {
		case 0:
			return mid, true
		case -1:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return hi, false
}
