package internal

import (
	"log"
	"os"
)

// LogLevel represents logging verbosity.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Logger provides leveled logging with a component prefix.
type Logger struct {
	level     LogLevel
	component string
}

// NewLogger creates a logger for a component at the given level.
func NewLogger(component string, level LogLevel) *Logger {
	return &Logger{level: level, component: component}
}

// NewDefaultLogger creates a logger whose level comes from LOG_LEVEL.
func NewDefaultLogger(component string) *Logger {
	level := LogLevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		level = LogLevelError
	case "WARN":
		level = LogLevelWarn
	case "DEBUG":
		level = LogLevelDebug
	}
	return &Logger{level: level, component: component}
}

func (l *Logger) Error(format string, args ...any) {
	if l.level >= LogLevelError {
		log.Printf("[ERROR] ["+l.component+"] "+format, args...)
	}
}

func (l *Logger) Warn(format string, args ...any) {
	if l.level >= LogLevelWarn {
		log.Printf("[WARN] ["+l.component+"] "+format, args...)
	}
}

func (l *Logger) Info(format string, args ...any) {
	if l.level >= LogLevelInfo {
		log.Printf("[INFO] ["+l.component+"] "+format, args...)
	}
}

func (l *Logger) Debug(format string, args ...any) {
	if l.level >= LogLevelDebug {
		log.Printf("[DEBUG] ["+l.component+"] "+format, args...)
	}
}
