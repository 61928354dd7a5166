package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportComparison(t *testing.T) {
	dir := t.TempDir()
	left := Document{Content: "a\nb\nc\n", Name: "draft one.txt"}
	right := Document{Content: "a\nx\nc\n", Name: "HEAD:draft.txt"}

	result, err := Compare(Pair{Left: 0, Right: 2}, left.Content, right.Content, LineMode, EngineDifflib)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	path, err := ExportComparison(dir, result, left, right)
	if err != nil {
		t.Fatalf("ExportComparison() error = %v", err)
	}

	wantName := "comparison-draft1-draft_one-vs-draft3-HEAD_draft.diff"
	if filepath.Base(path) != wantName {
		t.Errorf("report name = %q, want %q", filepath.Base(path), wantName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(data)

	for _, want := range []string{
		"# Draft 1: draft one.txt -> Draft 3: HEAD:draft.txt",
		"# lines: +0 -0 ~1, 1 changes",
		"#   change 1 at line 2",
		"--- Draft 1: draft one.txt",
		"+++ Draft 3: HEAD:draft.txt",
		"-b\n",
		"+x\n",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestExportComparisonWordMode(t *testing.T) {
	dir := t.TempDir()
	left := Document{Content: "ka kha ga\n"}
	right := Document{Content: "ka gha ga\n"}

	result, err := Compare(DefaultPair, left.Content, right.Content, WordMode, EngineDifflib)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	path, err := ExportComparison(dir, result, left, right)
	if err != nil {
		t.Fatalf("ExportComparison() error = %v", err)
	}
	if filepath.Base(path) != "comparison-draft1-vs-draft2.diff" {
		t.Errorf("report name = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "# words: +3 -3 characters") {
		t.Errorf("word report missing character summary:\n%s", data)
	}
}

func TestExportComparisonMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	result := ComparisonResult{Pair: DefaultPair}

	if _, err := ExportComparison(dir, result, Document{}, Document{}); err == nil {
		t.Error("ExportComparison() into a missing directory returned nil error")
	}
}
