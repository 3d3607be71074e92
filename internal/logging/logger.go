package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is read from the caller and UI goroutines concurrently.
var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "TEXTTERM_LOG_LEVEL"

// LogFileEnvVar overrides the log destination. The TUI owns stdout, so logs
// always go to a file unless a path of "stderr" is given explicitly.
const LogFileEnvVar = "TEXTTERM_LOG_FILE"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks TEXTTERM_LOG_LEVEL; if path is empty, it
// checks TEXTTERM_LOG_FILE. If no level is set, logging is disabled
// (silent mode) and path is ignored.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger.Store(zap.NewNop())
		return nil
	}
	if path == "" {
		return fmt.Errorf("log level %q set but no log file given", level)
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	if path != "stderr" && path != "stdout" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}

	// Plain level names: the output is a file, not a color terminal
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Store(l)

	return nil
}

// InitializeFromEnv initializes the logger from TEXTTERM_LOG_LEVEL and
// TEXTTERM_LOG_FILE.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// SetLogger replaces the global logger. A nil logger restores the silent
// default. Tests use it with zaptest/observer cores to assert on emitted
// entries.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	return logger.Load()
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogReadSession logs a read session lifecycle event
// ("started", "completed", "cancelled", "closed").
func LogReadSession(event string, fields ...zap.Field) {
	Debug("Read session event", append([]zap.Field{zap.String("event", event)}, fields...)...)
}

// LogParseOutcome logs the result of converting typed input.
func LogParseOutcome(status string, input string) {
	fields := []zap.Field{zap.String("status", status)}
	if input != "" {
		fields = append(fields, zap.String("input", printable(input)))
	}
	Debug("Typed read parsed", fields...)
}

// LogDesignChange logs a design replacement
func LogDesignChange(backColor, textColor, font string) {
	Info("Design applied",
		zap.String("back_color", backColor),
		zap.String("text_color", textColor),
		zap.String("font", font),
	)
}

// Helper functions

// printable limits s to 256 runes and replaces control characters with '.'.
func printable(s string) string {
	runes := []rune(s)
	truncated := false
	if len(runes) > 256 {
		runes = runes[:256]
		truncated = true
	}
	var b strings.Builder
	for _, r := range runes {
		if r < 32 || r == 127 {
			b.WriteByte('.')
		} else {
			b.WriteRune(r)
		}
	}
	if truncated {
		b.WriteString("...")
	}
	return b.String()
}

// Sync flushes any buffered log entries
func Sync() {
	_ = GetLogger().Sync()
}
