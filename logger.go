package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const logFileName = "nissaya_compare.log"

// Logger writes review-session events as slog text lines and counts the
// failures so a summary can be printed once the TUI exits.
type Logger struct {
	mu      sync.Mutex
	level   slog.Level
	file    *os.File
	handler *slog.Logger
	session SessionStats
}

// SessionStats counts what went wrong during one review session
type SessionStats struct {
	Errors   int
	Warnings int
	// Failures counts errors by the operation that logged them, such as
	// "load draft" or "compare drafts".
	Failures      map[string]int
	LastFailure   string
	LastFailureAt time.Time
}

func newSessionLogger(level slog.Level, out io.Writer) *Logger {
	l := &Logger{
		level:   level,
		session: SessionStats{Failures: make(map[string]int)},
	}
	l.setOutputLocked(out)
	return l
}

// NewLogger creates a logger writing to the temp directory, falling back to
// fallbackDir. If neither can be opened the logger writes to stderr and an
// error is returned alongside it.
func NewLogger(level slog.Level, fallbackDir string) (*Logger, error) {
	l := newSessionLogger(level, os.Stderr)

	candidates := []string{filepath.Join(os.TempDir(), logFileName)}
	if fallbackDir != "" {
		candidates = append(candidates, filepath.Join(fallbackDir, logFileName))
	}

	var lastErr error
	for _, path := range candidates {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			lastErr = err
			continue
		}
		l.file = file
		l.setOutputLocked(file)
		return l, nil
	}

	return l, fmt.Errorf("open log file (tried %s): %w", strings.Join(candidates, ", "), lastErr)
}

func (l *Logger) setOutputLocked(out io.Writer) {
	l.handler = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: l.level}))
}

// SetOutput redirects log lines to w
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setOutputLocked(w)
}

// Session returns a copy of the session statistics
func (l *Logger) Session() SessionStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := l.session
	stats.Failures = copyMap(l.session.Failures)
	return stats
}

func (l *Logger) log(level slog.Level, op string, err error, fields map[string]any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ctx := context.Background()
	if !l.handler.Enabled(ctx, level) {
		return
	}
	l.count(level, op, err)

	args := make([]any, 0, 2*len(fields)+2)
	if err != nil {
		args = append(args, "error", err)
	}
	for _, key := range sortedFieldKeys(fields) {
		args = append(args, key, fields[key])
	}
	l.handler.Log(ctx, level, op, args...)
}

func (l *Logger) count(level slog.Level, op string, err error) {
	switch {
	case level >= slog.LevelError:
		l.session.Errors++
		l.session.Failures[op]++
		l.session.LastFailure = op
		if err != nil {
			l.session.LastFailure += ": " + err.Error()
		}
		l.session.LastFailureAt = time.Now()
	case level >= slog.LevelWarn:
		l.session.Warnings++
	}
}

// Debug logs a debug message
func (l *Logger) Debug(op string, fields map[string]any) {
	l.log(slog.LevelDebug, op, nil, fields)
}

// Info logs an info message
func (l *Logger) Info(op string, fields map[string]any) {
	l.log(slog.LevelInfo, op, nil, fields)
}

// Warn logs a warning
func (l *Logger) Warn(op string, fields map[string]any) {
	l.log(slog.LevelWarn, op, nil, fields)
}

// Error logs a failed operation
func (l *Logger) Error(op string, err error, fields map[string]any) {
	l.log(slog.LevelError, op, err, fields)
}

// HasErrors reports whether any operation failed this session
func (l *Logger) HasErrors() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.Errors > 0
}

// Close closes the log file if one is open
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
