// Package logging wraps charmbracelet/log for the CLI and driver.
//
// The lexer, parser and lowering never log; only orchestration code does.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Имена полей, общие для всех сообщений драйвера.
const (
	FieldPath   = "path"
	FieldPhase  = "phase"
	FieldTokens = "tokens"
	FieldItems  = "items"
	FieldFiles  = "files"
	FieldJobs   = "jobs"
	FieldCache  = "cache"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// New creates a stderr logger with the given level
// ("debug", "info", "warn", "error"; anything else means info).
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "ferrite",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to log.Level, case-insensitively.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the package-level logger, creating it at info level.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}
