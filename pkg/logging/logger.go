package logging

import (
	"fmt"
	"log"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a file-backed logger for session diagnostics. A program that
// draws the terminal cannot log to it, so everything goes to a rotating
// log file instead.
type Logger struct {
	logger *log.Logger
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the singleton logger, initializing it with a rotating
// file handler on first use.
func GetLogger() *Logger {
	once.Do(func() {
		logFile := &lumberjack.Logger{
			Filename:   ".consoletk/debug.log",
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		}
		globalLogger = &Logger{
			logger: log.New(logFile, "", log.LstdFlags),
		}
	})
	return globalLogger
}

// Log writes a message to the log file.
func (l *Logger) Log(message string) {
	l.logger.Print(message)
}

// Logf writes a formatted message to the log file.
func (l *Logger) Logf(format string, v ...interface{}) {
	l.logger.Print(fmt.Sprintf(format, v...))
}

// Close flushes and closes the underlying log file.
func (l *Logger) Close() error {
	if logFile, ok := l.logger.Writer().(*lumberjack.Logger); ok {
		return logFile.Close()
	}
	return nil
}
