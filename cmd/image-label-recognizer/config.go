package main

import (
	"fmt"

	"github.com/peterbourgon/ff/v4"
)

type Config struct {
	TableName string
	LogLevel  string
}

const (
	defaultTableName = "ImageRecognitionResults"
	defaultLogLevel  = "info"
)

// LoadConfig reads TABLE_NAME and LOG_LEVEL from the environment.
func LoadConfig() (Config, error) {
	fs := ff.NewFlagSet(functionName)
	tableName := fs.StringLong("table-name", defaultTableName, "DynamoDB table for recognition records")
	logLevel := fs.StringLong("log-level", defaultLogLevel, "log level: debug, info, warn or error")

	if err := ff.Parse(fs, nil, ff.WithEnvVars()); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if *tableName == "" {
		return Config{}, fmt.Errorf("table name must not be empty")
	}

	return Config{
		TableName: *tableName,
		LogLevel:  *logLevel,
	}, nil
}
