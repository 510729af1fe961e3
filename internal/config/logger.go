package config

import "go.uber.org/zap"

// NewLogger builds the service logger. Debug log level switches to the
// human-readable development config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.LogLevel == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
