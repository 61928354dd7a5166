package main

import "unicode/utf8"

// Stats summarises a line-mode comparison
type Stats struct {
	Added        int
	Removed      int
	Modified     int
	TotalChanges int
}

// HasChanges reports whether the comparison found any difference
func (s Stats) HasChanges() bool {
	return s.TotalChanges > 0
}

// ComputeStats counts added, removed and modified lines in an inline line
// stream. A run of r removed lines followed directly by a run of a added
// lines counts min(r, a) modifications, with the surplus counted as pure
// removals or additions. totalChanges is the number of change groups.
func ComputeStats(inline []ReconciledLine, totalChanges int) Stats {
	stats := Stats{TotalChanges: totalChanges}

	for i := 0; i < len(inline); {
		switch inline[i].Kind {
		case SegmentRemoved:
			removed := runLength(inline, i, SegmentRemoved)
			i += removed
			added := runLength(inline, i, SegmentAdded)
			i += added

			modified := min(removed, added)
			stats.Modified += modified
			stats.Removed += removed - modified
			stats.Added += added - modified

		case SegmentAdded:
			added := runLength(inline, i, SegmentAdded)
			stats.Added += added
			i += added

		default:
			i++
		}
	}

	return stats
}

// runLength returns the length of the run of kind starting at start
func runLength(lines []ReconciledLine, start int, kind SegmentKind) int {
	n := 0
	for start+n < len(lines) && lines[start+n].Kind == kind {
		n++
	}
	return n
}

// WordDiffStats summarises a word-mode comparison in characters
type WordDiffStats struct {
	AddedChars   int
	RemovedChars int
}

// ComputeWordStats sums the character counts of added and removed segments.
// Characters are counted as runes so Myanmar and Pali text is not counted
// by byte.
func ComputeWordStats(segments []DiffSegment) WordDiffStats {
	var stats WordDiffStats
	for _, segment := range segments {
		switch segment.Kind {
		case SegmentAdded:
			stats.AddedChars += utf8.RuneCountInString(segment.Text)
		case SegmentRemoved:
			stats.RemovedChars += utf8.RuneCountInString(segment.Text)
		}
	}
	return stats
}
