package main

import (
	"fmt"
)

// CompareMode selects line or word granularity
type CompareMode int

const (
	LineMode CompareMode = iota
	WordMode
)

// String returns the string representation of the compare mode
func (m CompareMode) String() string {
	if m == WordMode {
		return "Words"
	}
	return "Lines"
}

// ComparisonResult is everything the views need to draw one comparison.
// Lines and Stats are only set in LineMode, WordStats only in WordMode.
type ComparisonResult struct {
	Pair      Pair
	Mode      CompareMode
	Segments  []DiffSegment
	Lines     Reconciliation
	Stats     Stats
	WordStats WordDiffStats
}

// DiffError reports a failed comparison of a document pair
type DiffError struct {
	Pair Pair
	Err  error
}

func (e *DiffError) Error() string {
	return fmt.Sprintf("compare draft %d with draft %d: %v", e.Pair.Left+1, e.Pair.Right+1, e.Err)
}

func (e *DiffError) Unwrap() error {
	return e.Err
}

// Compare diffs left against right and reconciles the result
func Compare(pair Pair, left, right string, mode CompareMode, engine DiffEngine) (ComparisonResult, error) {
	result := ComparisonResult{Pair: pair, Mode: mode}

	if mode == WordMode {
		segments, err := WordDiff(left, right)
		if err != nil {
			return ComparisonResult{}, &DiffError{Pair: pair, Err: err}
		}
		result.Segments = segments
		result.WordStats = ComputeWordStats(segments)
		return result, nil
	}

	segments, err := LineDiff(engine, left, right)
	if err != nil {
		return ComparisonResult{}, &DiffError{Pair: pair, Err: err}
	}

	lines, err := Reconcile(segments)
	if err != nil {
		return ComparisonResult{}, &DiffError{Pair: pair, Err: err}
	}

	result.Segments = segments
	result.Lines = lines
	result.Stats = ComputeStats(lines.Inline, lines.TotalChanges())
	return result, nil
}

// Comparer hands out generation numbers for comparison requests so that a
// result which finishes after a newer request can be recognised as stale.
type Comparer struct {
	generation uint64
}

// Next starts a new request and returns its generation
func (c *Comparer) Next() uint64 {
	c.generation++
	return c.generation
}

// IsCurrent reports whether generation belongs to the latest request
func (c Comparer) IsCurrent(generation uint64) bool {
	return generation == c.generation
}
