package app

import (
	"os"

	"ecodeli-dispatch/internal/config"
	"ecodeli-dispatch/internal/logx"
)

const serviceName = "service-dispatch"

// NewLogger returns the JSON stdout logger at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.New(os.Stdout, cfg.LogLevel, serviceName)
}

// bootLogger is used before configuration is available.
func bootLogger() logx.Logger {
	return logx.New(os.Stderr, "info", serviceName)
}
