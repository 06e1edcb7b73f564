package main

import (
	"fmt"

	"github.com/peterbourgon/ff/v4"
)

type Config struct {
	LogLevel string
}

const defaultLogLevel = "info"

// LoadConfig reads LOG_LEVEL from the environment.
func LoadConfig() (Config, error) {
	fs := ff.NewFlagSet(functionName)
	logLevel := fs.StringLong("log-level", defaultLogLevel, "log level: debug, info, warn or error")

	if err := ff.Parse(fs, nil, ff.WithEnvVars()); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return Config{LogLevel: *logLevel}, nil
}
