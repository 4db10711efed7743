// Package logger is the process-wide log for mcmaps. Output goes to stderr
// through a zap console core. Only errors print unless --verbose lowers
// the level to debug, which then traces manifest upgrades, search
// dispatch and store access.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type sink struct {
	mu      sync.RWMutex
	verbose bool
	w       io.Writer
	sugar   *zap.SugaredLogger
}

var (
	level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	std   = &sink{w: os.Stderr, sugar: build(os.Stderr)}
)

var encoderConfig = zapcore.EncoderConfig{
	LevelKey:   "level",
	MessageKey: "msg",
	LineEnding: zapcore.DefaultLineEnding,
	EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + l.CapitalString() + "]")
	},
}

func build(w io.Writer) *zap.SugaredLogger {
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)).Sugar()
}

// SetVerbose switches between debug output and errors only.
func SetVerbose(v bool) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.verbose = v
	if v {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.ErrorLevel)
}

// IsVerbose reports whether debug output is on.
func IsVerbose() bool {
	std.mu.RLock()
	defer std.mu.RUnlock()
	return std.verbose
}

// SetOutput redirects every level, including Section headers. Tests pass a
// buffer; the default is os.Stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	_ = std.sugar.Sync()
	std.w = w
	std.sugar = build(w)
}

func logf(lvl zapcore.Level, format string, args []any) {
	std.mu.RLock()
	defer std.mu.RUnlock()
	std.sugar.Logf(lvl, format, args...)
}

// Debug traces internal steps; shown only in verbose mode.
func Debug(format string, args ...any) { logf(zapcore.DebugLevel, format, args) }

// Info reports progress; shown only in verbose mode.
func Info(format string, args ...any) { logf(zapcore.InfoLevel, format, args) }

// Warn reports a recoverable problem; shown only in verbose mode.
func Warn(format string, args ...any) { logf(zapcore.WarnLevel, format, args) }

// Error is printed whether or not verbose mode is on.
func Error(format string, args ...any) { logf(zapcore.ErrorLevel, format, args) }

// Section writes a "=== name ===" banner in verbose mode.
func Section(name string) {
	std.mu.RLock()
	defer std.mu.RUnlock()
	if std.verbose {
		fmt.Fprintf(std.w, "\n=== %s ===\n", name)
	}
}
