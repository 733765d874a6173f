package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// InitConfig locates and reads qf_config.yaml, creating a default one
// in the run directory when none exists anywhere on the search path.
func InitConfig() {
	viper.SetConfigName("qf_config")
	viper.SetConfigType("yaml")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" && homeDir != "" {
		xdgConfigHome = filepath.Join(homeDir, ".config")
	}

	configPaths := []string{
		"/etc/qfactor",
		"/usr/local/etc/qfactor",
	}
	if xdgConfigHome != "" {
		configPaths = append(configPaths, filepath.Join(xdgConfigHome, "qfactor"))
	}
	if homeDir != "" {
		configPaths = append(configPaths, filepath.Join(homeDir, ".qfactor"))
	}
	configPaths = append(configPaths, ".")

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault(KeyMethod, "quantum")
	viper.SetDefault(KeyMaxAttempts, 5)
	viper.SetDefault(KeyWorkers, 1)
	viper.SetDefault(KeyTablePrintDefault, false)
	viper.SetDefault(KeySimulatorQubits, 24)

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file found, writing default qf_config.yaml to the run directory")
		if err := viper.SafeWriteConfigAs("./qf_config.yaml"); err != nil {
			return
		}
		_ = viper.ReadInConfig()
	}
}
