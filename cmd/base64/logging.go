package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnv names the environment variable consulted when --verbose is not set
const LogLevelEnv = "BASE64_LOG_LEVEL"

// NewLogger writes console formatted logs to w
func NewLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	))
}

// LogLevel resolves the level from the verbose flag, falling back to LogLevelEnv
func LogLevel(cmd *cobra.Command) (zapcore.Level, error) {
	if flag := cmd.Flag("verbose"); flag != nil && flag.Changed {
		if flag.Value.String() == "true" {
			return zapcore.DebugLevel, nil
		}
		return zapcore.InfoLevel, nil
	}

	value, has := os.LookupEnv(LogLevelEnv)
	if !has || len(value) == 0 {
		return zapcore.InfoLevel, nil
	}

	level, err := zapcore.ParseLevel(value)
	if err != nil {
		return level, UsageError(fmt.Errorf("invalid %s: %w", LogLevelEnv, err))
	}

	return level, nil
}
