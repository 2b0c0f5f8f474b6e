package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	golog "github.com/fclairamb/go-log"
)

// AppLogger implements the go-log.Logger interface
type AppLogger struct {
	level   LogLevel
	logger  *log.Logger
	writer  *RotatingWriter // nil when not logging to a file
	context []interface{}
	now     func() time.Time
}

// NewAppLogger creates a new application logger writing to logPath.
// An empty logPath discards output.
func NewAppLogger(logPath string, level LogLevel, maxSize int64) (*AppLogger, error) {
	if logPath == "" {
		return NewDiscardLogger(), nil
	}

	rw, err := NewRotatingWriter(logPath, maxSize)
	if err != nil {
		return nil, fmt.Errorf("creating rotating writer: %w", err)
	}

	l := NewWriterLogger(rw, level)
	l.writer = rw
	return l, nil
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer, level LogLevel) *AppLogger {
	return &AppLogger{
		level:  level,
		logger: log.New(w, "", 0), // No flags, timestamps are formatted in log()
		now:    time.Now,
	}
}

// NewDiscardLogger returns a logger that drops everything
func NewDiscardLogger() *AppLogger {
	return NewWriterLogger(io.Discard, LogLevelInfo)
}

func (l *AppLogger) shouldLog(level LogLevel) bool {
	return levelOrder[level] >= levelOrder[l.level]
}

func (l *AppLogger) log(level LogLevel, message string, keyvals ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	all := append(append([]interface{}{}, l.context...), keyvals...)

	var kvStrings []string
	for i := 0; i+1 < len(all); i += 2 {
		key := toString(all[i])
		value := toString(all[i+1])
		kvStrings = append(kvStrings, fmt.Sprintf("%s=%s", key, formatValue(value)))
	}

	timestamp := l.now().UTC().Format("2006-01-02 15:04:05 -0700")
	line := fmt.Sprintf("%s %s: %s", timestamp, level, message)
	if len(kvStrings) > 0 {
		line += " " + strings.Join(kvStrings, " ")
	}
	l.logger.Println(line)
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	str := fmt.Sprintf("%v", v)
	// Collapse newlines, tabs and runs of spaces so an entry stays on one line
	return strings.Join(strings.Fields(str), " ")
}

// Debug implements go-log.Logger
func (l *AppLogger) Debug(message string, keyvals ...interface{}) {
	l.log(LogLevelDebug, message, keyvals...)
}

// Info implements go-log.Logger
func (l *AppLogger) Info(message string, keyvals ...interface{}) {
	l.log(LogLevelInfo, message, keyvals...)
}

// Warn implements go-log.Logger
func (l *AppLogger) Warn(message string, keyvals ...interface{}) {
	l.log(LogLevelWarn, message, keyvals...)
}

// Error implements go-log.Logger
func (l *AppLogger) Error(message string, keyvals ...interface{}) {
	l.log(LogLevelError, message, keyvals...)
}

// Panic implements go-log.Logger. It logs at panic level but does not panic.
func (l *AppLogger) Panic(message string, keyvals ...interface{}) {
	l.log(LogLevelPanic, message, keyvals...)
}

// With implements go-log.Logger. The returned logger shares the writer
// and prefixes every entry with keyvals.
func (l *AppLogger) With(keyvals ...interface{}) golog.Logger {
	return l.WithContext(keyvals...)
}

// WithContext is With returning the concrete type
func (l *AppLogger) WithContext(keyvals ...interface{}) *AppLogger {
	child := *l
	child.context = append(append([]interface{}{}, l.context...), keyvals...)
	child.writer = nil // only the root closes the file
	return &child
}

// IsDebug returns true if the logger is at debug level
func (l *AppLogger) IsDebug() bool {
	return l.level == LogLevelDebug
}

// Close closes the underlying log file, if any
func (l *AppLogger) Close() error {
	if l.writer != nil {
		return l.writer.Close()
	}
	return nil
}
