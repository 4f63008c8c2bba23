package hashext

import (
	"github.com/sirupsen/logrus"
	"io"
)

// Logger is a logrus logger that can also forward
// every message to a hook, e.g. to show progress in a UI.
type Logger struct {
	onLog  func(string)
	logger *logrus.Logger
}

// NewLogger returns a Logger that discards everything until
// SetOutput is called.
func NewLogger() *Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return &Logger{
		onLog:  func(string) {},
		logger: logger,
	}
}

func (l *Logger) SetLevel(level logrus.Level) {
	l.logger.SetLevel(level)
}

func (l *Logger) SetOutput(writer io.Writer) {
	l.logger.SetOutput(writer)
}

func (l *Logger) SetOnLog(hook func(string)) {
	l.onLog = hook
}

// Log writes message at the info level
func (l *Logger) Log(message string) {
	if l.onLog != nil {
		l.onLog(message)
	}

	l.logger.Info(message)
}

// Debug writes message at the debug level.
// The hook is not called for debug messages.
func (l *Logger) Debug(message string) {
	l.logger.Debug(message)
}
