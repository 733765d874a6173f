package config

// Overridden at release time via -ldflags.
var (
	Version   = "v1.1.0"
	BuildDate = "unknown"
	CommitID  = "unknown"
)
