// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger configures the zap global logger for CI tooling, reading its
// format and level from the pipeline environment
package logger

import (
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/toolhive-ci/env"
)

// Environment variables that control logging.
const (
	// EnvUnstructuredLogs selects console output unless it parses as false.
	EnvUnstructuredLogs = "UNSTRUCTURED_LOGS"
	// EnvGitHubActions is set to "true" by the GitHub Actions runner.
	EnvGitHubActions = "GITHUB_ACTIONS"
	// EnvRunnerDebug is set to "1" when step debug logging is enabled on the runner.
	EnvRunnerDebug = "RUNNER_DEBUG"
)

// Debugf logs a message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func Sync() {
	// stderr returns EINVAL on sync on some platforms
	_ = zap.L().Sync()
}

// DebugProvider is an interface for checking if debug mode is enabled.
// The CLI backs it with its --debug flag.
type DebugProvider interface {
	IsDebug() bool
}

// defaultDebugProvider provides a default implementation that returns false.
type defaultDebugProvider struct{}

func (*defaultDebugProvider) IsDebug() bool {
	return false
}

// Initialize configures the global logger from the process environment.
func Initialize() {
	InitializeWithOptions(&env.OSReader{}, &defaultDebugProvider{})
}

// InitializeWithOptions configures the global logger from envReader and debugProvider.
// If UNSTRUCTURED_LOGS is unset or true, entries are plain console lines with
// only time and level; otherwise they are JSON. Output always goes to stderr
// so that stdout stays free for values printed by the CLI.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) {
	zap.ReplaceGlobals(zap.Must(newConfig(envReader, debugProvider).Build()))
}

func newConfig(envReader env.Reader, debugProvider DebugProvider) zap.Config {
	var config zap.Config
	if unstructuredLogsWithEnv(envReader) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if envBool(envReader, EnvGitHubActions) {
			// escape codes show up verbatim in downloaded Actions logs
			config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
	}
	config.OutputPaths = []string{"stderr"}

	if debugProvider.IsDebug() || envBool(envReader, EnvRunnerDebug) {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return config
}

func unstructuredLogsWithEnv(envReader env.Reader) bool {
	unstructuredLogs, err := strconv.ParseBool(envReader.Getenv(EnvUnstructuredLogs))
	if err != nil {
		// unset, "" or garbage all fall back to unstructured output
		return true
	}
	return unstructuredLogs
}

func envBool(envReader env.Reader, key string) bool {
	v, err := strconv.ParseBool(envReader.Getenv(key))
	return err == nil && v
}
