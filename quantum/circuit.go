package quantum

import (
	"fmt"
	"math/bits"
	"strings"
)

// Qubit identifies a single wire of a circuit. Qubits are numbered
// consecutively across all registers, like line qubits.
type Qubit int

// Register is an ordered, named group of qubits holding one unsigned
// integer in big-endian qubit order.
type Register struct {
	Name   string
	Qubits []Qubit
}

// NewRegister allocates width consecutive qubits starting at offset.
func NewRegister(name string, offset, width int) Register {
	qs := make([]Qubit, width)
	for i := range qs {
		qs[i] = Qubit(offset + i)
	}
	return Register{Name: name, Qubits: qs}
}

// Width returns the number of qubits in the register.
func (r Register) Width() int {
	return len(r.Qubits)
}

// OpType enumerates the gate operations a circuit can contain.
type OpType string

const (
	OpX          OpType = "X"
	OpH          OpType = "H"
	OpModExp     OpType = "ModExp"
	OpInverseQFT OpType = "QFT^-1"
	OpMeasure    OpType = "M"
)

// Op is a single gate operation over an ordered set of qubits.
// Gate is set for OpModExp, Key for OpMeasure.
type Op struct {
	Type   OpType
	Qubits []Qubit
	Gate   *ModularExp
	Key    string
}

// Circuit is an ordered sequence of gate operations over named
// registers. Immutable once built.
type Circuit struct {
	Registers []Register
	Ops       []Op
}

// Register looks up a register by name.
func (c *Circuit) Register(name string) (Register, bool) {
	for _, r := range c.Registers {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

// String renders one line per operation, e.g.
//
//	X(3)
//	H(4..14)
//	ModExp(t*7**e % 15)(0..14)
//	QFT^-1(4..14)
//	M('exponent')(4..14)
func (c *Circuit) String() string {
	var sb strings.Builder
	for _, op := range c.Ops {
		switch op.Type {
		case OpModExp:
			fmt.Fprintf(&sb, "%s(%s)\n", op.Gate, qubitSpan(op.Qubits))
		case OpMeasure:
			fmt.Fprintf(&sb, "M(%q)(%s)\n", op.Key, qubitSpan(op.Qubits))
		default:
			fmt.Fprintf(&sb, "%s(%s)\n", op.Type, qubitSpan(op.Qubits))
		}
	}
	return sb.String()
}

func qubitSpan(qs []Qubit) string {
	if len(qs) == 0 {
		return ""
	}
	if len(qs) == 1 {
		return fmt.Sprint(int(qs[0]))
	}
	return fmt.Sprintf("%d..%d", int(qs[0]), int(qs[len(qs)-1]))
}

// Readout is a single observed register value with its bit-width.
type Readout struct {
	Value uint64
	Bits  int
}

// Measurement maps a measurement key to its observed readout.
// Produced exactly once per circuit execution (single shot).
type Measurement map[string]Readout

// NewOrderFindingCircuit builds the phase-estimation circuit whose
// exponent-register measurement encodes an eigenphase s/r of
//
//	U|y> = |y*x mod n>   0 <= y < n
//	U|y> = |y>           n <= y
//
// The target register (width L = bit length of n) is initialized to the
// integer 1, the exponent register (width 2L+3) is placed in uniform
// superposition, one modular exponentiation is applied, and an inverse
// Fourier transform over the exponent register precedes the measurement.
// Only the exponent register is measured, under the key "exponent".
func NewOrderFindingCircuit(x, n int64) (*Circuit, error) {
	L := bits.Len64(uint64(n))
	target := NewRegister("target", 0, L)
	exponent := NewRegister("exponent", L, 2*L+3)

	gate, err := NewModularExp(target, exponent, x, n)
	if err != nil {
		return nil, err
	}

	ops := make([]Op, 0, exponent.Width()+4)
	// |0..01> on the target: X on the least significant qubit.
	ops = append(ops, Op{Type: OpX, Qubits: []Qubit{target.Qubits[L-1]}})
	for _, q := range exponent.Qubits {
		ops = append(ops, Op{Type: OpH, Qubits: []Qubit{q}})
	}
	all := append(append([]Qubit{}, target.Qubits...), exponent.Qubits...)
	ops = append(ops,
		Op{Type: OpModExp, Qubits: all, Gate: gate},
		Op{Type: OpInverseQFT, Qubits: exponent.Qubits},
		Op{Type: OpMeasure, Qubits: exponent.Qubits, Key: "exponent"},
	)

	return &Circuit{
		Registers: []Register{target, exponent},
		Ops:       ops,
	}, nil
}
