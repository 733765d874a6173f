package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	EnvDevMode     = GetEnvBool("QFACTOR_DEVMODE", false)
	EnvMethod      = GetEnvDefault("QFACTOR_METHOD", "")
	EnvMaxAttempts = GetEnvInt("QFACTOR_MAXATTEMPTS", 0)
	EnvWorkers     = GetEnvInt("QFACTOR_WORKERS", 0)
	EnvSeed        = GetEnvInt64("QFACTOR_SEED", 0)
	EnvListenAddr  = GetEnvDefault("QFACTOR_LISTENADDR", "")
)

func GetEnvTrimmed(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	val := strings.TrimSpace(v)
	if os.Getenv("QFACTOR_DEBUG") != "" {
		fmt.Println("ENV", key, "detected as", val)
	}
	return val, true
}

func GetEnvBool(key string, def bool) bool {
	if val, ok := GetEnvTrimmed(key); ok {
		switch val {
		case "1":
			return true
		case "0":
			return false
		default:
			return def
		}
	}
	return def
}

func GetEnvDefault(key string, def string) string {
	if val, ok := GetEnvTrimmed(key); ok {
		return val
	}
	return def
}

func GetEnvInt(key string, def int) int {
	if val, ok := GetEnvTrimmed(key); ok {
		num, err := strconv.Atoi(val)
		if err != nil {
			return def
		}
		return num
	}
	return def
}

func GetEnvInt64(key string, def int64) int64 {
	if val, ok := GetEnvTrimmed(key); ok {
		num, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return def
		}
		return num
	}
	return def
}
