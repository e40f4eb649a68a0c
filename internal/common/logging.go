// Package common provides the shared logging infrastructure for the
// aggregation layer.
package common

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// base must be initialized in the var block: package-level vars such as
	// FinlabLogger below call NewSafeLogger before init() runs.
	base   = logrus.New()
	baseMu sync.Mutex
)

func init() {
	// Log to stderr so stdout stays clean for command output.
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
}

// SafeLogger is a component-prefixed logger. All output goes to stderr (plus
// the rotating log file when one is configured).
type SafeLogger struct {
	entry *logrus.Entry
}

// NewSafeLogger creates a logger tagged with the given component prefix.
func NewSafeLogger(prefix string) *SafeLogger {
	return &SafeLogger{entry: base.WithField("component", prefix)}
}

// SetLevel sets the minimum level for all loggers. Unknown levels fall back
// to info.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	base.SetLevel(parsed)
}

// EnableFileOutput mirrors log output into a rotating file.
func EnableFileOutput(path string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) error {
	baseMu.Lock()
	defer baseMu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   compress,
	}
	base.SetOutput(io.MultiWriter(os.Stderr, fileWriter))

	return nil
}

// Debug logs a debug message.
func (l *SafeLogger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Info logs an info message.
func (l *SafeLogger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warn logs a warning message.
func (l *SafeLogger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error logs an error message.
func (l *SafeLogger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Global logger instances for convenience.
var (
	FinlabLogger = NewSafeLogger("finlab")
	LoaderLogger = NewSafeLogger("loader")
	CLILogger    = NewSafeLogger("cli")
)
