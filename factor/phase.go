package factor

import "math/big"

// DecodePhase converts a measured exponent-register value into a
// candidate multiplicative order of x mod n.
//
// The measurement encodes an eigenphase estimate measured/2^bits. Its
// best rational approximation s/r with r <= n is recovered by continued
// fractions. A zero numerator carries no order information. A non-zero
// candidate denominator still has to pass exact verification
// x^r mod n == 1: phase estimation is probabilistic and a convergent
// denominator is only a guess until confirmed by integer arithmetic.
func DecodePhase(measured uint64, bits int, x, n int64) (int64, bool) {
	num := new(big.Int).SetUint64(measured)
	den := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	s, r := limitDenominator(num, den, big.NewInt(n))
	if s.Sign() == 0 {
		return 0, false
	}
	order := r.Int64()
	if ModPow(x, order, n) != 1 {
		return 0, false
	}
	return order, true
}

// limitDenominator returns the closest rational to num/den whose
// denominator does not exceed bound, via continued-fraction convergents
// and the final semiconvergent. Ties prefer the last full convergent.
func limitDenominator(num, den, bound *big.Int) (*big.Int, *big.Int) {
	g := new(big.Int).GCD(nil, nil, num, den)
	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)
	if d.Cmp(bound) <= 0 {
		return n, d
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	for {
		a := new(big.Int).Quo(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(bound) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}

	// Best semiconvergent under the bound versus the last convergent.
	k := new(big.Int).Quo(new(big.Int).Sub(bound, q0), q1)
	sp := new(big.Int).Add(p0, new(big.Int).Mul(k, p1))
	sq := new(big.Int).Add(q0, new(big.Int).Mul(k, q1))

	exact := new(big.Rat).SetFrac(num, den)
	semiErr := new(big.Rat).Sub(new(big.Rat).SetFrac(sp, sq), exact)
	convErr := new(big.Rat).Sub(new(big.Rat).SetFrac(p1, q1), exact)
	if convErr.Abs(convErr).Cmp(semiErr.Abs(semiErr)) <= 0 {
		return p1, q1
	}
	return sp, sq
}
