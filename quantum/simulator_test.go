package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────── sampling ────────

func TestSimulatorSample_ReadoutShape(t *testing.T) {
	c, err := NewOrderFindingCircuit(7, 15)
	require.NoError(t, err)

	sim := NewSimulator(1)
	m, err := sim.Sample(c)
	require.NoError(t, err)

	readout, ok := m["exponent"]
	require.True(t, ok)
	assert.Equal(t, 11, readout.Bits)
	assert.Less(t, readout.Value, uint64(1)<<11)
}

func TestSimulatorSample_Deterministic(t *testing.T) {
	c, err := NewOrderFindingCircuit(4, 21)
	require.NoError(t, err)

	a := NewSimulator(99)
	b := NewSimulator(99)
	for i := 0; i < 10; i++ {
		ma, err := a.Sample(c)
		require.NoError(t, err)
		mb, err := b.Sample(c)
		require.NoError(t, err)
		assert.Equal(t, ma, mb, "shot %d", i)
	}
}

func TestSimulatorSample_PeaksNearEigenphases(t *testing.T) {
	// 7 has order 4 mod 15, so readouts concentrate on multiples of
	// 2^11 / 4 = 512. With an 11-bit register the eigenphases are
	// exactly representable and every shot lands on a peak.
	c, err := NewOrderFindingCircuit(7, 15)
	require.NoError(t, err)

	sim := NewSimulator(7)
	for i := 0; i < 50; i++ {
		m, err := sim.Sample(c)
		require.NoError(t, err)
		assert.Zero(t, m["exponent"].Value%512, "shot %d: %d", i, m["exponent"].Value)
	}
}

// ──────── refusals ────────

func TestSimulatorSample_TooManyQubits(t *testing.T) {
	// 1025 needs 11 target qubits, hence 25 measured qubits.
	c, err := NewOrderFindingCircuit(2, 1025)
	require.NoError(t, err)

	sim := NewSimulator(1)
	_, err = sim.Sample(c)
	assert.ErrorIs(t, err, ErrTooManyQubits)
}

func TestSimulatorSample_RaisedBudget(t *testing.T) {
	c, err := NewOrderFindingCircuit(2, 1025)
	require.NoError(t, err)

	sim := NewSimulator(1)
	sim.MaxQubits = 32
	m, err := sim.Sample(c)
	require.NoError(t, err)
	assert.Equal(t, 25, m["exponent"].Bits)
}

func TestSimulatorSample_UnsupportedCircuit(t *testing.T) {
	sim := NewSimulator(1)
	_, err := sim.Sample(&Circuit{})
	assert.ErrorIs(t, err, ErrUnsupportedCircuit)
}

// ──────── helpers ────────

func TestMultiplicativeOrder(t *testing.T) {
	tests := []struct {
		x, n, want int64
	}{
		{7, 15, 4},
		{2, 15, 4},
		{4, 15, 2},
		{10, 33, 2},
		{2, 7, 3},
		{1, 5, 1},
		{6, 15, 0}, // shares a factor, no order
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, multiplicativeOrder(tt.x, tt.n), "x=%d n=%d", tt.x, tt.n)
	}
}

func TestMultiplicativeOrder_LargeModulus(t *testing.T) {
	// n-1 squares to 1 mod n; the intermediate product is ~2^124 and
	// must not wrap.
	n := int64(1)<<62 - 1
	assert.Equal(t, int64(2), multiplicativeOrder(n-1, n))
}

func TestSamplePhaseKernel_ExactPhase(t *testing.T) {
	// Eigenphase 1/2 over 3 bits is exactly m/8 with m=4; the kernel
	// is a delta there, so any variate maps to 4.
	for _, u := range []float64{0.01, 0.5, 0.999} {
		assert.Equal(t, uint64(4), samplePhaseKernel(1, 2, 3, u), "u=%v", u)
	}
}

func TestSamplePhaseKernel_ZeroEigenstate(t *testing.T) {
	assert.Equal(t, uint64(0), samplePhaseKernel(0, 3, 5, 0.5))
}
