package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/O33ero/qfactor/config"
	"github.com/O33ero/qfactor/factor"
	"github.com/O33ero/qfactor/quantum"
)

func setConfigDefaults(t *testing.T) {
	t.Helper()
	viper.Set(config.KeyMethod, "quantum")
	viper.Set(config.KeyMaxAttempts, 5)
	viper.Set(config.KeyWorkers, 1)
	viper.Set(config.KeySimulatorQubits, 24)
	t.Cleanup(viper.Reset)
}

func TestBuildConfig_FlagsWin(t *testing.T) {
	setConfigDefaults(t)

	cfg := buildConfig("classical", 20, 4, 42)
	assert.Equal(t, factor.ClassicalMethod, cfg.Method)
	assert.Equal(t, 20, cfg.MaxAttempts)
	assert.Equal(t, 4, cfg.Workers)
	require.NotNil(t, cfg.Rand)
	require.NotNil(t, cfg.Sampler)
}

func TestBuildConfig_ConfigFileFallback(t *testing.T) {
	setConfigDefaults(t)
	viper.Set(config.KeyMethod, "classical")
	viper.Set(config.KeyMaxAttempts, 7)
	viper.Set(config.KeyWorkers, 2)

	cfg := buildConfig("", 0, 0, 0)
	assert.Equal(t, factor.ClassicalMethod, cfg.Method)
	assert.Equal(t, 7, cfg.MaxAttempts)
	assert.Equal(t, 2, cfg.Workers)
}

func TestBuildConfig_QubitBudgetFromConfig(t *testing.T) {
	setConfigDefaults(t)
	viper.Set(config.KeySimulatorQubits, 30)

	cfg := buildConfig("quantum", 0, 0, 1)
	sim, ok := cfg.Sampler.(*quantum.Simulator)
	require.True(t, ok)
	assert.Equal(t, 30, sim.MaxQubits)
}

func TestBuildConfig_SeededRunsAgree(t *testing.T) {
	setConfigDefaults(t)

	a := buildConfig("classical", 10, 0, 99)
	b := buildConfig("classical", 10, 0, 99)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Rand.Int63(), b.Rand.Int63(), "draw %d", i)
	}
}
