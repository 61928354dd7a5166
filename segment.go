package main

import (
	"fmt"
	"strings"
)

// SegmentKind represents how a piece of text changed between two documents
type SegmentKind int

const (
	SegmentUnchanged SegmentKind = iota
	SegmentAdded
	SegmentRemoved
)

// String returns the string representation of the segment kind
func (k SegmentKind) String() string {
	switch k {
	case SegmentUnchanged:
		return "unchanged"
	case SegmentAdded:
		return "added"
	case SegmentRemoved:
		return "removed"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the three known kinds
func (k SegmentKind) Valid() bool {
	return k == SegmentUnchanged || k == SegmentAdded || k == SegmentRemoved
}

// DiffSegment is one entry of an edit script, in document order
type DiffSegment struct {
	Text string
	Kind SegmentKind
}

// Line is a single line taken from a segment
type Line struct {
	Content string
	Kind    SegmentKind
}

// segmentLines splits a segment into lines that share its kind
func segmentLines(segment DiffSegment) []Line {
	parts := splitSegmentLines(segment.Text)
	lines := make([]Line, 0, len(parts))
	for _, part := range parts {
		lines = append(lines, Line{Content: part, Kind: segment.Kind})
	}
	return lines
}

// splitSegmentLines splits text on "\n" without producing a trailing empty
// line for a terminated blob.
// For example: "a\nb\n" -> ["a", "b"], "a\nb" -> ["a", "b"], "\n" -> [""]
func splitSegmentLines(text string) []string {
	if text == "" {
		return []string{}
	}

	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
