package runlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/O33ero/qfactor/factor"
)

func TestAttemptLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logAttempt := AttemptLogger(path)

	logAttempt(factor.Attempt{Index: 1, Base: 7, Outcome: factor.OutcomeOddOrder, Order: 3})
	logAttempt(factor.Attempt{Index: 2, Base: 4, Outcome: factor.OutcomeFactor, Order: 2, Factor: 3})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "#1")
	assert.Contains(t, s, "odd-order")
	assert.Contains(t, s, "factor=3")
}

func TestResultLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	ResultLogger(path, &factor.Result{
		N: 15, Found: true, Factor: 3, Cofactor: 5,
		Method: factor.QuantumMethod, Duration: 42 * time.Millisecond,
	})
	ResultLogger(path, &factor.Result{
		N: 13, Prime: true, Method: factor.QuantumMethod,
	})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "n=15 p=3 q=5")
	assert.Contains(t, s, "n=13 found=false prime=true")
}
