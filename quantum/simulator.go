package quantum

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"sync"
	"time"
)

var (
	ErrUnsupportedCircuit = errors.New("unsupported circuit for simulated backend")
	ErrTooManyQubits      = errors.New("too many qubits for simulated backend")
)

// DefaultMaxQubits bounds the width of the measured register the
// simulator will sample. 2L+3 exponent qubits means moduli up to 10 bits
// fit the default budget.
const DefaultMaxQubits = 24

// Sampler obtains exactly one measurement from a circuit. The returned
// distribution must be consistent with the circuit's quantum state.
type Sampler interface {
	Sample(c *Circuit) (Measurement, error)
}

// Simulator samples order-finding circuits from their exact measurement
// distribution. It is not a general statevector simulator: it
// recognizes the phase-estimation shape built by NewOrderFindingCircuit
// and draws the exponent readout from the closed-form post-QFT
// distribution (uniform eigenstate index s in [0, r), then the phase
// estimation kernel over the 2^t basis states).
//
// Safe for concurrent use; the random source is mutex-guarded.
type Simulator struct {
	MaxQubits int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator returns a simulator seeded with the given value.
// A zero seed picks a time-based one.
func NewSimulator(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		MaxQubits: DefaultMaxQubits,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Sample performs a single shot of the order-finding circuit and
// returns the exponent-register readout under the circuit's
// measurement key.
func (s *Simulator) Sample(c *Circuit) (Measurement, error) {
	var gate *ModularExp
	var key string
	var measuredBits int
	for _, op := range c.Ops {
		switch op.Type {
		case OpModExp:
			gate = op.Gate
		case OpMeasure:
			key = op.Key
			measuredBits = len(op.Qubits)
		}
	}
	if gate == nil || key == "" {
		return nil, fmt.Errorf("%w: needs a modular exponentiation and a measurement", ErrUnsupportedCircuit)
	}
	maxQubits := s.MaxQubits
	if maxQubits == 0 {
		maxQubits = DefaultMaxQubits
	}
	if measuredBits > maxQubits {
		return nil, fmt.Errorf("%w: %d measured qubits exceed budget %d (modulus %d)",
			ErrTooManyQubits, measuredBits, maxQubits, gate.Modulus)
	}

	r := multiplicativeOrder(gate.Base, gate.Modulus)
	if r == 0 {
		return nil, fmt.Errorf("%w: base %d is not invertible mod %d", ErrUnsupportedCircuit, gate.Base, gate.Modulus)
	}

	s.mu.Lock()
	eigenstate := s.rng.Int63n(r)
	u := s.rng.Float64()
	s.mu.Unlock()

	m := samplePhaseKernel(eigenstate, r, measuredBits, u)
	return Measurement{key: {Value: m, Bits: measuredBits}}, nil
}

// multiplicativeOrder returns the order of x mod n, or 0 when x is not
// coprime to n. The simulator is allowed to know the answer; the
// quantum algorithm under test is not.
func multiplicativeOrder(x, n int64) int64 {
	if x < 1 || n < 2 {
		return 0
	}
	m := uint64(n)
	b := uint64(x) % m
	y := b
	for r := int64(1); r <= n; r++ {
		if y == 1 {
			return r
		}
		y = mulMod(y, b, m)
	}
	return 0
}

// mulMod computes a*b mod m through the 128-bit intermediate product,
// so moduli near the int64 ceiling cannot wrap. Requires a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// samplePhaseKernel inverts the CDF of the phase-estimation
// distribution for eigenphase s/r over t readout bits:
//
//	P(m) = sin^2(pi*M*d) / (M^2 * sin^2(pi*d)),  d = s/r - m/M, M = 2^t
//
// u is a uniform variate in [0, 1).
func samplePhaseKernel(s, r int64, t int, u float64) uint64 {
	M := uint64(1) << t
	phase := float64(s) / float64(r)
	acc := 0.0
	for m := uint64(0); m < M; m++ {
		d := phase - float64(m)/float64(M)
		sd := math.Sin(math.Pi * d)
		var p float64
		if sd == 0 {
			p = 1
		} else {
			q := math.Sin(math.Pi*float64(M)*d) / (float64(M) * sd)
			p = q * q
		}
		acc += p
		if acc >= u {
			return m
		}
	}
	// Rounding left a sliver of probability unassigned; the nearest
	// basis state below the phase gets it.
	return uint64(phase * float64(M))
}
