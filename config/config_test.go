package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestInitConfig_Defaults(t *testing.T) {
	tmp := isolate(t)
	InitConfig()

	assert.Equal(t, "quantum", Method())
	assert.Equal(t, 5, MaxAttempts())
	assert.Equal(t, 1, Workers())
	assert.False(t, TablePrintDefault())
	assert.Equal(t, 24, SimulatorQubits())

	// A default file is written to the run directory on first use.
	_, err := os.Stat(filepath.Join(tmp, "qf_config.yaml"))
	assert.NoError(t, err)
}

func TestInitConfig_ReadsExistingFile(t *testing.T) {
	tmp := isolate(t)
	content := "preference:\n  method: classical\n  maxAttempts: 12\nsimulator:\n  maxQubits: 30\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "qf_config.yaml"), []byte(content), 0o644))

	InitConfig()

	assert.Equal(t, "classical", Method())
	assert.Equal(t, 12, MaxAttempts())
	assert.Equal(t, 30, SimulatorQubits())
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 1, Workers())
}
