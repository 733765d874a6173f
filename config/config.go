package config

import "github.com/spf13/viper"

// Viper keys for the qf_config.yaml preference block.
const (
	KeyMethod            = "preference.method"
	KeyMaxAttempts       = "preference.maxAttempts"
	KeyWorkers           = "preference.workers"
	KeyTablePrintDefault = "preference.tablePrintDefault"
	KeySimulatorQubits   = "simulator.maxQubits"
)

// Method returns the configured default order-finding method.
func Method() string {
	return viper.GetString(KeyMethod)
}

// MaxAttempts returns the configured default attempt budget.
func MaxAttempts() int {
	return viper.GetInt(KeyMaxAttempts)
}

// Workers returns the configured default attempt concurrency.
func Workers() int {
	return viper.GetInt(KeyWorkers)
}

// TablePrintDefault reports whether the attempt table is printed
// without an explicit --table flag.
func TablePrintDefault() bool {
	return viper.GetBool(KeyTablePrintDefault)
}

// SimulatorQubits returns the qubit budget for the simulated backend.
func SimulatorQubits() int {
	return viper.GetInt(KeySimulatorQubits)
}
