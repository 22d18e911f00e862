package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "FWREPORT_LOG_LEVEL"

// New builds a console logger writing to w. An empty level yields a no-op
// logger.
func New(level string, w io.Writer) *zap.Logger {
	if strings.TrimSpace(level) == "" {
		return zap.NewNop()
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), ParseLevel(level))
	return zap.New(core, zap.AddCaller())
}

// ParseLevel maps a level name to a zap level. Unknown names map to info,
// since a value was set explicitly.
func ParseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// Initialize sets the global logger to level, writing to stderr so report
// output on stdout stays clean. If level is empty, FWREPORT_LOG_LEVEL is
// used; if that is empty too, logging is silent.
func Initialize(level string) {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	logger = New(level, zapcore.Lock(os.Stderr))
}

// InitializeFromEnv initializes the logger from FWREPORT_LOG_LEVEL.
func InitializeFromEnv() {
	Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// LogToolRun logs the outcome of one external tool invocation
func LogToolRun(l *zap.Logger, tool string, args []string, exitCode int, duration time.Duration) {
	l.Info("tool invocation complete",
		zap.String("tool", tool),
		zap.Strings("args", args),
		zap.Int("exit_code", exitCode),
		zap.Duration("duration", duration),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
