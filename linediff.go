package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// ErrDiffComputationFailed is returned when a diff engine cannot produce an
// edit script for a document pair.
var ErrDiffComputationFailed = errors.New("diff computation failed")

// DiffEngine selects the line-diff algorithm
type DiffEngine int

const (
	// EngineDifflib uses difflib's SequenceMatcher (Ratcliff/Obershelp)
	EngineDifflib DiffEngine = iota
	// EngineDMP uses diff-match-patch's Myers implementation on line runes
	EngineDMP
)

// String returns the string representation of the engine
func (e DiffEngine) String() string {
	switch e {
	case EngineDifflib:
		return "difflib"
	case EngineDMP:
		return "dmp"
	default:
		return "unknown"
	}
}

// parseDiffEngine parses an engine name given on the command line
func parseDiffEngine(name string) (DiffEngine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "difflib":
		return EngineDifflib, nil
	case "dmp", "myers":
		return EngineDMP, nil
	default:
		return EngineDifflib, fmt.Errorf("unknown diff engine %q", name)
	}
}

// lineDiffFunc produces a line-granular edit script for two documents
type lineDiffFunc func(left, right string) ([]DiffSegment, error)

func (e DiffEngine) lineDiff() lineDiffFunc {
	if e == EngineDMP {
		return lineDiffDMP
	}
	return lineDiffDifflib
}

// LineDiff computes a line edit script with the given engine. Panics raised
// inside the engine are reported as ErrDiffComputationFailed.
func LineDiff(engine DiffEngine, left, right string) (segments []DiffSegment, err error) {
	defer recoverDiffPanic(&err)

	segments, err = engine.lineDiff()(normalizeDocument(left), normalizeDocument(right))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiffComputationFailed, err)
	}
	return segments, nil
}

func recoverDiffPanic(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrDiffComputationFailed, r)
	}
}

// normalizeDocument converts CRLF line endings to LF and terminates the
// last line. Trailing blank lines are kept. A document holding only line
// terminators becomes empty.
func normalizeDocument(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if strings.Trim(content, "\n") == "" {
		return ""
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content
}

// splitLinesKeepNL splits content into lines, each keeping its "\n"
func splitLinesKeepNL(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// lineDiffDifflib computes the edit script using difflib.SequenceMatcher.
func lineDiffDifflib(left, right string) ([]DiffSegment, error) {
	oldLines := splitLinesKeepNL(left)
	newLines := splitLinesKeepNL(right)

	matcher := difflib.NewMatcher(oldLines, newLines)
	return opCodesToSegments(matcher.GetOpCodes(), oldLines, newLines)
}

func opCodesToSegments(opCodes []difflib.OpCode, oldLines, newLines []string) ([]DiffSegment, error) {
	segments := make([]DiffSegment, 0, len(opCodes))

	for _, op := range opCodes {
		switch op.Tag {
		case 'e':
			segments = appendSegment(segments, SegmentUnchanged, oldLines[op.I1:op.I2])
		case 'd':
			segments = appendSegment(segments, SegmentRemoved, oldLines[op.I1:op.I2])
		case 'i':
			segments = appendSegment(segments, SegmentAdded, newLines[op.J1:op.J2])
		case 'r':
			segments = appendSegment(segments, SegmentRemoved, oldLines[op.I1:op.I2])
			segments = appendSegment(segments, SegmentAdded, newLines[op.J1:op.J2])
		default:
			return nil, fmt.Errorf("unsupported opcode tag: %q", op.Tag)
		}
	}

	return segments, nil
}

// appendSegment appends lines as a segment, merging with the previous
// segment when it has the same kind.
func appendSegment(segments []DiffSegment, kind SegmentKind, lines []string) []DiffSegment {
	if len(lines) == 0 {
		return segments
	}

	text := strings.Join(lines, "")
	if n := len(segments); n > 0 && segments[n-1].Kind == kind {
		segments[n-1].Text += text
		return segments
	}
	return append(segments, DiffSegment{Text: text, Kind: kind})
}

// lineDiffDMP computes the edit script with diff-match-patch, encoding every
// distinct line as a single rune so the Myers diff runs over lines.
func lineDiffDMP(left, right string) ([]DiffSegment, error) {
	enc := newTokenEncoder()
	oldRunes := enc.encode(splitLinesKeepNL(left))
	newRunes := enc.encode(splitLinesKeepNL(right))

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	return dmpDiffsToSegments(diffs, enc.decode)
}

func dmpDiffsToSegments(diffs []diffmatchpatch.Diff, decode func(string) []string) ([]DiffSegment, error) {
	segments := make([]DiffSegment, 0, len(diffs))
	for _, d := range diffs {
		kind, err := segmentKindForOperation(d.Type)
		if err != nil {
			return nil, err
		}
		segments = appendSegment(segments, kind, decode(d.Text))
	}
	return segments, nil
}

func segmentKindForOperation(op diffmatchpatch.Operation) (SegmentKind, error) {
	switch op {
	case diffmatchpatch.DiffEqual:
		return SegmentUnchanged, nil
	case diffmatchpatch.DiffInsert:
		return SegmentAdded, nil
	case diffmatchpatch.DiffDelete:
		return SegmentRemoved, nil
	default:
		return SegmentUnchanged, fmt.Errorf("unsupported diff operation: %v", op)
	}
}
