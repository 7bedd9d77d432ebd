package logger

import (
	"log"
	"strings"

	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarning
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarning
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// StdLogger is a leveled logger over the standard log package.
type StdLogger struct {
	min level
}

// NewStdLogger creates a logger that drops messages below minLevel.
func NewStdLogger(minLevel string) usecasecontract.IAppLogger {
	return &StdLogger{min: parseLevel(minLevel)}
}

// Debugf logs a debug message.
func (l *StdLogger) Debugf(format string, args ...interface{}) {
	if l.min <= levelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Infof logs an info message.
func (l *StdLogger) Infof(format string, args ...interface{}) {
	if l.min <= levelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

// Warningf logs a warning message.
func (l *StdLogger) Warningf(format string, args ...interface{}) {
	if l.min <= levelWarning {
		log.Printf("[WARNING] "+format, args...)
	}
}

// Errorf logs an error message.
func (l *StdLogger) Errorf(format string, args ...interface{}) {
	if l.min <= levelError {
		log.Printf("[ERROR] "+format, args...)
	}
}

// Fatalf logs a fatal message and exits.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	log.Fatalf("[FATAL] "+format, args...)
}
