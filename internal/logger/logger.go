// Package logger provides leveled logging for the game.
// The TUI owns the terminal, so output normally goes to a log file.
package logger

import (
	"io"
	"log"
)

// Logger writes prefixed lines for each level.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// New creates a logger writing every level to w.
func New(w io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(w, "[INFO] ", log.Ldate|log.Ltime|log.Lmicroseconds),
		warnLogger:  log.New(w, "[WARN] ", log.Ldate|log.Ltime|log.Lmicroseconds),
		errorLogger: log.New(w, "[ERROR] ", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(io.Discard)
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Event logs a gameplay event for a session.
func (l *Logger) Event(eventType string, session string, details string) {
	l.infoLogger.Printf("[EVENT:%s] session:%s | %s", eventType, session, details)
}
