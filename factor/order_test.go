package factor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/O33ero/qfactor/quantum"
)

// ──────── NaiveOrderFinder ────────

func TestNaiveOrder_TenModThirtyThree(t *testing.T) {
	r, ok, err := NaiveOrderFinder{}.Order(10, 33)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), r)
}

func TestNaiveOrder_SevenModFifteen(t *testing.T) {
	r, ok, err := NaiveOrderFinder{}.Order(7, 15)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(4), r)
}

func TestNaiveOrder_IsMinimal(t *testing.T) {
	for _, tc := range []struct{ x, n int64 }{
		{2, 15}, {4, 15}, {7, 15}, {10, 33}, {2, 33}, {5, 21},
	} {
		r, ok, err := NaiveOrderFinder{}.Order(tc.x, tc.n)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(1), ModPow(tc.x, r, tc.n), "x=%d n=%d r=%d", tc.x, tc.n, r)
		for s := int64(1); s < r; s++ {
			assert.NotEqual(t, int64(1), ModPow(tc.x, s, tc.n), "smaller s=%d also satisfies", s)
		}
	}
}

func TestNaiveOrder_InvalidElement(t *testing.T) {
	for _, tc := range []struct{ x, n int64 }{
		{1, 15},  // x < 2
		{15, 15}, // x == n
		{20, 15}, // x > n
		{6, 15},  // gcd(x, n) > 1
	} {
		_, _, err := NaiveOrderFinder{}.Order(tc.x, tc.n)
		assert.ErrorIs(t, err, ErrInvalidElement, "x=%d n=%d", tc.x, tc.n)
	}
}

// ──────── QuantumOrderFinder ────────

type stubSampler struct {
	m   quantum.Measurement
	err error
}

func (s stubSampler) Sample(*quantum.Circuit) (quantum.Measurement, error) {
	return s.m, s.err
}

func TestQuantumOrder_DecodesStubbedReadout(t *testing.T) {
	// eigenphase 1/4 over the 11 exponent qubits of the n=15 circuit.
	f := &QuantumOrderFinder{Sampler: stubSampler{
		m: quantum.Measurement{"exponent": {Value: 512, Bits: 11}},
	}}
	r, ok, err := f.Order(7, 15)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(4), r)
}

func TestQuantumOrder_NoInformation(t *testing.T) {
	f := &QuantumOrderFinder{Sampler: stubSampler{
		m: quantum.Measurement{"exponent": {Value: 0, Bits: 11}},
	}}
	_, ok, err := f.Order(7, 15)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuantumOrder_SamplerError(t *testing.T) {
	wantErr := errors.New("backend down")
	f := &QuantumOrderFinder{Sampler: stubSampler{err: wantErr}}
	_, _, err := f.Order(7, 15)
	assert.ErrorIs(t, err, wantErr)
}

func TestQuantumOrder_MissingReadout(t *testing.T) {
	f := &QuantumOrderFinder{Sampler: stubSampler{m: quantum.Measurement{}}}
	_, _, err := f.Order(7, 15)
	assert.Error(t, err)
}

func TestQuantumOrder_InvalidElement(t *testing.T) {
	f := &QuantumOrderFinder{Sampler: stubSampler{}}
	_, _, err := f.Order(5, 15)
	assert.ErrorIs(t, err, ErrInvalidElement)
}

// ──────── NewOrderFinder ────────

func TestNewOrderFinder(t *testing.T) {
	f, err := NewOrderFinder(ClassicalMethod, nil)
	require.NoError(t, err)
	assert.IsType(t, &NaiveOrderFinder{}, f)

	f, err = NewOrderFinder(QuantumMethod, quantum.NewSimulator(1))
	require.NoError(t, err)
	assert.IsType(t, &QuantumOrderFinder{}, f)

	_, err = NewOrderFinder(QuantumMethod, nil)
	assert.ErrorIs(t, err, ErrNoSampler)

	_, err = NewOrderFinder("annealing", nil)
	assert.ErrorIs(t, err, ErrInvalidMethod)
}
