package main

import (
	"errors"
	"fmt"
)

// ErrInvalidSegment is returned when an edit script contains a segment that
// is not tagged unchanged, added or removed.
var ErrInvalidSegment = errors.New("invalid diff segment")

// ReconciledLine is a numbered line in one of the three panels.
// ChangeGroup is 1-based; 0 means the line is not part of a change.
type ReconciledLine struct {
	LineNumber  int
	Content     string
	Kind        SegmentKind
	ChangeGroup int
}

// Reconciliation holds the three panel projections of an edit script and
// the inline line number at which each change group starts.
type Reconciliation struct {
	Left        []ReconciledLine
	Right       []ReconciledLine
	Inline      []ReconciledLine
	ChangeIndex []int
}

// TotalChanges returns the number of change groups
func (r Reconciliation) TotalChanges() int {
	return len(r.ChangeIndex)
}

// Reconcile numbers every line of the edit script for the left, right and
// inline panels and groups contiguous removed/added runs.
//
// A removed run directly followed by an added run forms one group. An added
// run that does not immediately follow a removed line opens its own group.
func Reconcile(segments []DiffSegment) (Reconciliation, error) {
	var r Reconciliation
	group := 0
	prevKind := SegmentUnchanged

	for i, segment := range segments {
		if !segment.Kind.Valid() {
			return Reconciliation{}, fmt.Errorf("segment %d has kind %v: %w", i, segment.Kind, ErrInvalidSegment)
		}

		for _, line := range segmentLines(segment) {
			inlineNum := len(r.Inline) + 1

			switch line.Kind {
			case SegmentUnchanged:
				r.Left = append(r.Left, numberedLine(len(r.Left)+1, line, 0))
				r.Right = append(r.Right, numberedLine(len(r.Right)+1, line, 0))
				r.Inline = append(r.Inline, numberedLine(inlineNum, line, 0))

			case SegmentRemoved:
				if prevKind != SegmentRemoved {
					group++
					r.ChangeIndex = append(r.ChangeIndex, inlineNum)
				}
				r.Left = append(r.Left, numberedLine(len(r.Left)+1, line, group))
				r.Inline = append(r.Inline, numberedLine(inlineNum, line, group))

			case SegmentAdded:
				if prevKind == SegmentUnchanged {
					group++
					r.ChangeIndex = append(r.ChangeIndex, inlineNum)
				}
				r.Right = append(r.Right, numberedLine(len(r.Right)+1, line, group))
				r.Inline = append(r.Inline, numberedLine(inlineNum, line, group))
			}

			prevKind = line.Kind
		}
	}

	return r, nil
}

func numberedLine(number int, line Line, group int) ReconciledLine {
	return ReconciledLine{
		LineNumber:  number,
		Content:     line.Content,
		Kind:        line.Kind,
		ChangeGroup: group,
	}
}
