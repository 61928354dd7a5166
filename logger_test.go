package main

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerLevelsAndSession(t *testing.T) {
	var buf bytes.Buffer
	logger := newSessionLogger(slog.LevelInfo, &buf)

	logger.Debug("hidden", nil)
	logger.Info("draft loaded", map[string]any{"slot": 2, "name": "chapter1.txt"})
	logger.Warn("watch draft", nil)
	logger.Error("compare drafts", ErrDiffComputationFailed, nil)
	logger.Error("load draft", ErrNotText, nil)
	logger.Error("load draft", ErrNotText, nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message written below info level")
	}
	if !strings.Contains(out, "name=chapter1.txt slot=2") {
		t.Errorf("fields not written in sorted order: %q", out)
	}
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("error level missing: %q", out)
	}

	stats := logger.Session()
	if stats.Errors != 3 || stats.Warnings != 1 {
		t.Errorf("Session() errors=%d warnings=%d, want 3/1", stats.Errors, stats.Warnings)
	}
	if stats.Failures["load draft"] != 2 || stats.Failures["compare drafts"] != 1 {
		t.Errorf("Session() failures = %v", stats.Failures)
	}
	if !strings.HasPrefix(stats.LastFailure, "load draft: ") {
		t.Errorf("LastFailure = %q", stats.LastFailure)
	}
	if !logger.HasErrors() {
		t.Error("HasErrors() = false after an error")
	}
}

func TestLoggerSessionIsACopy(t *testing.T) {
	var buf bytes.Buffer
	logger := newSessionLogger(slog.LevelInfo, &buf)
	logger.Error("load draft", errors.New("boom"), nil)

	stats := logger.Session()
	stats.Failures["load draft"] = 99

	if got := logger.Session().Failures["load draft"]; got != 1 {
		t.Errorf("Session() failures changed through a copy: %d", got)
	}
}

func TestLoggerSkipsStatsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newSessionLogger(slog.LevelError, &buf)

	logger.Warn("watch draft", nil)
	if stats := logger.Session(); stats.Warnings != 0 {
		t.Errorf("warning below level counted: %d", stats.Warnings)
	}
	if buf.Len() != 0 {
		t.Errorf("warning below level written: %q", buf.String())
	}
}

func TestNilLogger(t *testing.T) {
	var logger *Logger

	logger.Info("ignored", nil)
	logger.Error("ignored", errors.New("boom"), nil)
	if logger.HasErrors() {
		t.Error("nil logger HasErrors() = true")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("nil logger Close() error = %v", err)
	}
}

func TestNewLoggerFallsBackToDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", "/nonexistent/nissaya")

	logger, err := NewLogger(slog.LevelDebug, dir)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	if logger.file == nil {
		t.Fatal("NewLogger() did not open a log file")
	}
	if !strings.HasPrefix(logger.file.Name(), dir) {
		t.Errorf("log file = %s, want it under %s", logger.file.Name(), dir)
	}
}
