package factor

import (
	"errors"
	"fmt"

	"github.com/O33ero/qfactor/quantum"
)

var (
	ErrInvalidMethod  = errors.New("invalid order finding method")
	ErrInvalidElement = errors.New("invalid multiplicative group element")
	ErrNoSampler      = errors.New("quantum order finder needs a sampler")
)

// Method selects the order-finding strategy.
type Method string

const (
	QuantumMethod   Method = "quantum"
	ClassicalMethod Method = "classical"
)

// Methods lists the supported order-finding strategies.
func Methods() []string {
	return []string{string(QuantumMethod), string(ClassicalMethod)}
}

// OrderFinder computes the multiplicative order of x mod n: the
// smallest positive r with x^r mod n == 1. ok is false when a single
// run produced no usable information, which the caller absorbs by
// retrying. An error means x is not a group element (x < 2, x >= n, or
// gcd(x, n) > 1) or the backend refused the circuit.
type OrderFinder interface {
	Order(x, n int64) (r int64, ok bool, err error)
}

// NewOrderFinder builds the finder for a method, wiring the sampler
// into the quantum variant.
func NewOrderFinder(method Method, sampler quantum.Sampler) (OrderFinder, error) {
	switch method {
	case QuantumMethod:
		if sampler == nil {
			return nil, ErrNoSampler
		}
		return &QuantumOrderFinder{Sampler: sampler}, nil
	case ClassicalMethod:
		return &NaiveOrderFinder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
}

func checkGroupElement(x, n int64) error {
	if x < 2 || n <= x || GCD(x, n) > 1 {
		return fmt.Errorf("%w: x=%d for modulus n=%d", ErrInvalidElement, x, n)
	}
	return nil
}

// QuantumOrderFinder runs Shor's order-finding subroutine: build the
// phase-estimation circuit, take a single shot from the sampler, and
// decode the readout. Measurement variance is absorbed by the caller's
// retry loop, not by averaging shots.
type QuantumOrderFinder struct {
	Sampler quantum.Sampler
}

func (f *QuantumOrderFinder) Order(x, n int64) (int64, bool, error) {
	if err := checkGroupElement(x, n); err != nil {
		return 0, false, err
	}
	circuit, err := quantum.NewOrderFindingCircuit(x, n)
	if err != nil {
		return 0, false, err
	}
	measurement, err := f.Sampler.Sample(circuit)
	if err != nil {
		return 0, false, err
	}
	readout, found := measurement["exponent"]
	if !found {
		return 0, false, fmt.Errorf("sampler returned no exponent readout for n=%d", n)
	}
	r, ok := DecodePhase(readout.Value, readout.Bits, x, n)
	return r, ok, nil
}

// NaiveOrderFinder computes the order by sequential multiplication.
// Reference oracle for tests and a fallback when no quantum backend is
// wanted; always succeeds for a valid group element since the order
// divides phi(n).
type NaiveOrderFinder struct{}

func (NaiveOrderFinder) Order(x, n int64) (int64, bool, error) {
	if err := checkGroupElement(x, n); err != nil {
		return 0, false, err
	}
	m := uint64(n)
	b := uint64(x)
	r, y := int64(1), b
	for y != 1 {
		y = mulMod(y, b, m)
		r++
	}
	return r, true, nil
}
