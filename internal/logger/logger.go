// Package logger writes leveled diagnostics to stderr.
//
// Debug, Info, Warn and Section are silent unless verbose mode is on
// (the --verbose flag). Error always writes. Stdout is never touched so
// the MCP stdio transport and JSON output stay clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(always bool, level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if always || verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}

// Debug logs request-level detail such as upstream URLs and timings.
func Debug(format string, args ...any) {
	logf(false, "DEBUG", format, args...)
}

// Info logs lifecycle events.
func Info(format string, args ...any) {
	logf(false, "INFO", format, args...)
}

// Warn logs a degraded but recoverable condition.
func Warn(format string, args ...any) {
	logf(false, "WARN", format, args...)
}

// Error logs a failure regardless of verbose mode.
func Error(format string, args ...any) {
	logf(true, "ERROR", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
