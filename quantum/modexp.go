package quantum

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

var ErrBadGateParams = errors.New("bad modular exponentiation parameters")

// ModularExp is the arithmetic gate computing modular exponentiation
// with a constant base and modulus:
//
//	V|y>|e> = |y * x^e mod n>|e>   0 <= y < n
//	V|y>|e> = |y>|e>               n <= y
//
// where y lives in the target register and e in the exponent register.
// The gate acts as the identity on target values outside the residue
// range, since the register can represent more integers than the group
// holds. Immutable once constructed.
type ModularExp struct {
	Target   Register
	Exponent Register
	Base     int64
	Modulus  int64
}

// NewModularExp validates that the target register can hold every
// residue mod modulus and returns the gate.
func NewModularExp(target, exponent Register, base, modulus int64) (*ModularExp, error) {
	if target.Width() < bits.Len64(uint64(modulus)) {
		return nil, fmt.Errorf("%w: register with %d qubits is too small for modulus %d",
			ErrBadGateParams, target.Width(), modulus)
	}
	return &ModularExp{
		Target:   target,
		Exponent: exponent,
		Base:     base,
		Modulus:  modulus,
	}, nil
}

// Registers returns the gate parameters in declaration order:
// target, exponent, base, modulus.
func (g *ModularExp) Registers() []any {
	return []any{g.Target, g.Exponent, g.Base, g.Modulus}
}

// WithRegisters re-parameterizes the gate. It expects exactly four
// values in Registers order and rejects any value of the wrong kind,
// naming the offending argument.
func (g *ModularExp) WithRegisters(regs ...any) (*ModularExp, error) {
	if len(regs) != 4 {
		return nil, fmt.Errorf("%w: expected 4 registers (target, exponent, base and modulus), got %d",
			ErrBadGateParams, len(regs))
	}
	target, ok := regs[0].(Register)
	if !ok {
		return nil, fmt.Errorf("%w: target must be a qubit register, not %T", ErrBadGateParams, regs[0])
	}
	exponent, ok := regs[1].(Register)
	if !ok {
		return nil, fmt.Errorf("%w: exponent must be a qubit register, not %T", ErrBadGateParams, regs[1])
	}
	base, ok := regs[2].(int64)
	if !ok {
		return nil, fmt.Errorf("%w: base must be a constant integer, not %T", ErrBadGateParams, regs[2])
	}
	modulus, ok := regs[3].(int64)
	if !ok {
		return nil, fmt.Errorf("%w: modulus must be a constant integer, not %T", ErrBadGateParams, regs[3])
	}
	return NewModularExp(target, exponent, base, modulus)
}

// Apply computes the classical action of the gate on concrete register
// values: (target * base^exponent) mod modulus, or target unchanged when
// it lies outside the residue range.
func (g *ModularExp) Apply(target, exponent uint64) uint64 {
	if target >= uint64(g.Modulus) {
		return target
	}
	pow := new(big.Int).Exp(
		big.NewInt(g.Base),
		new(big.Int).SetUint64(exponent),
		big.NewInt(g.Modulus),
	)
	out := new(big.Int).Mul(new(big.Int).SetUint64(target), pow)
	out.Mod(out, big.NewInt(g.Modulus))
	return out.Uint64()
}

func (g *ModularExp) String() string {
	return fmt.Sprintf("ModExp(t*%d**e %% %d)", g.Base, g.Modulus)
}
