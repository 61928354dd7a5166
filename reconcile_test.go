package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestReconcileReplacementSharesGroup(t *testing.T) {
	segments := []DiffSegment{
		{Text: "a\n", Kind: SegmentUnchanged},
		{Text: "b\n", Kind: SegmentRemoved},
		{Text: "x\n", Kind: SegmentAdded},
		{Text: "c\n", Kind: SegmentUnchanged},
	}

	r, err := Reconcile(segments)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	wantInline := []ReconciledLine{
		{LineNumber: 1, Content: "a", Kind: SegmentUnchanged},
		{LineNumber: 2, Content: "b", Kind: SegmentRemoved, ChangeGroup: 1},
		{LineNumber: 3, Content: "x", Kind: SegmentAdded, ChangeGroup: 1},
		{LineNumber: 4, Content: "c", Kind: SegmentUnchanged},
	}
	if !reflect.DeepEqual(r.Inline, wantInline) {
		t.Errorf("Reconcile() inline = %+v, want %+v", r.Inline, wantInline)
	}

	wantLeft := []ReconciledLine{
		{LineNumber: 1, Content: "a", Kind: SegmentUnchanged},
		{LineNumber: 2, Content: "b", Kind: SegmentRemoved, ChangeGroup: 1},
		{LineNumber: 3, Content: "c", Kind: SegmentUnchanged},
	}
	if !reflect.DeepEqual(r.Left, wantLeft) {
		t.Errorf("Reconcile() left = %+v, want %+v", r.Left, wantLeft)
	}

	wantRight := []ReconciledLine{
		{LineNumber: 1, Content: "a", Kind: SegmentUnchanged},
		{LineNumber: 2, Content: "x", Kind: SegmentAdded, ChangeGroup: 1},
		{LineNumber: 3, Content: "c", Kind: SegmentUnchanged},
	}
	if !reflect.DeepEqual(r.Right, wantRight) {
		t.Errorf("Reconcile() right = %+v, want %+v", r.Right, wantRight)
	}

	if !reflect.DeepEqual(r.ChangeIndex, []int{2}) {
		t.Errorf("Reconcile() ChangeIndex = %v, want [2]", r.ChangeIndex)
	}
}

func TestReconcileGrouping(t *testing.T) {
	tests := []struct {
		name        string
		segments    []DiffSegment
		changeIndex []int
		groups      []int // ChangeGroup of each inline line
	}{
		{
			name: "isolated addition",
			segments: []DiffSegment{
				{Text: "a\n", Kind: SegmentUnchanged},
				{Text: "b\nc\n", Kind: SegmentAdded},
			},
			changeIndex: []int{2},
			groups:      []int{0, 1, 1},
		},
		{
			name: "removal then unchanged then addition",
			segments: []DiffSegment{
				{Text: "a\n", Kind: SegmentRemoved},
				{Text: "b\n", Kind: SegmentUnchanged},
				{Text: "c\n", Kind: SegmentAdded},
			},
			changeIndex: []int{1, 3},
			groups:      []int{1, 0, 2},
		},
		{
			name: "addition then removal are separate",
			segments: []DiffSegment{
				{Text: "a\n", Kind: SegmentAdded},
				{Text: "b\n", Kind: SegmentRemoved},
			},
			changeIndex: []int{1, 2},
			groups:      []int{1, 2},
		},
		{
			name: "multi-line replacement",
			segments: []DiffSegment{
				{Text: "a\nb\n", Kind: SegmentRemoved},
				{Text: "x\ny\nz\n", Kind: SegmentAdded},
				{Text: "c\n", Kind: SegmentUnchanged},
				{Text: "d\n", Kind: SegmentRemoved},
			},
			changeIndex: []int{1, 7},
			groups:      []int{1, 1, 1, 1, 1, 0, 2},
		},
		{
			name: "split added segments stay in one group",
			segments: []DiffSegment{
				{Text: "a\n", Kind: SegmentRemoved},
				{Text: "x\n", Kind: SegmentAdded},
				{Text: "y\n", Kind: SegmentAdded},
			},
			changeIndex: []int{1},
			groups:      []int{1, 1, 1},
		},
		{
			name:        "empty script",
			segments:    nil,
			changeIndex: nil,
			groups:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Reconcile(tt.segments)
			if err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}
			if !reflect.DeepEqual(r.ChangeIndex, tt.changeIndex) {
				t.Errorf("Reconcile() ChangeIndex = %v, want %v", r.ChangeIndex, tt.changeIndex)
			}
			groups := make([]int, 0, len(r.Inline))
			for _, line := range r.Inline {
				groups = append(groups, line.ChangeGroup)
			}
			if !reflect.DeepEqual(groups, tt.groups) {
				t.Errorf("Reconcile() groups = %v, want %v", groups, tt.groups)
			}
		})
	}
}

func TestReconcileInvalidSegment(t *testing.T) {
	segments := []DiffSegment{
		{Text: "a\n", Kind: SegmentUnchanged},
		{Text: "b\n", Kind: SegmentKind(7)},
	}

	_, err := Reconcile(segments)
	if !errors.Is(err, ErrInvalidSegment) {
		t.Fatalf("Reconcile() error = %v, want ErrInvalidSegment", err)
	}
}

func TestReconcileProperties(t *testing.T) {
	pairs := []struct {
		left  string
		right string
	}{
		{"a\nb\nc\n", "a\nx\nc\n"},
		{"a\n", "a\nb\n"},
		{"a\nb\n", "\n"},
		{"", "one\ntwo\n"},
		{"one\ntwo\n", ""},
		{"a\nb\nc\nd\ne\n", "a\nc\nd\nf\ng\ne\n"},
		{"ပါဠိ\nမြန်မာ\nစာ\n", "ပါဠိ\nမြန်မာ့\nစာ\nအသစ်\n"},
	}

	for _, engine := range []DiffEngine{EngineDifflib, EngineDMP} {
		for _, p := range pairs {
			segments, err := LineDiff(engine, p.left, p.right)
			if err != nil {
				t.Fatalf("LineDiff(%v) error = %v", engine, err)
			}
			r, err := Reconcile(segments)
			if err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}

			unchanged := 0
			for _, line := range r.Inline {
				if line.Kind == SegmentUnchanged {
					unchanged++
				}
			}
			if len(r.Inline) != len(r.Left)+len(r.Right)-unchanged {
				t.Errorf("%v %q->%q: inline = %d, want left+right-unchanged = %d",
					engine, p.left, p.right, len(r.Inline), len(r.Left)+len(r.Right)-unchanged)
			}

			for name, lines := range map[string][]ReconciledLine{"left": r.Left, "right": r.Right, "inline": r.Inline} {
				for i, line := range lines {
					if line.LineNumber != i+1 {
						t.Errorf("%v %q->%q: %s line %d numbered %d", engine, p.left, p.right, name, i, line.LineNumber)
					}
				}
			}

			for i := 1; i < len(r.ChangeIndex); i++ {
				if r.ChangeIndex[i] <= r.ChangeIndex[i-1] {
					t.Errorf("%v %q->%q: ChangeIndex not increasing: %v", engine, p.left, p.right, r.ChangeIndex)
				}
			}

			stats := ComputeStats(r.Inline, r.TotalChanges())
			if stats.TotalChanges != len(r.ChangeIndex) {
				t.Errorf("TotalChanges = %d, want %d", stats.TotalChanges, len(r.ChangeIndex))
			}
			rightOnly := len(r.Right) - unchanged
			leftOnly := len(r.Left) - unchanged
			if stats.Added+stats.Modified > rightOnly {
				t.Errorf("%v %q->%q: added+modified = %d > right-only %d", engine, p.left, p.right, stats.Added+stats.Modified, rightOnly)
			}
			if stats.Removed+stats.Modified > leftOnly {
				t.Errorf("%v %q->%q: removed+modified = %d > left-only %d", engine, p.left, p.right, stats.Removed+stats.Modified, leftOnly)
			}
		}
	}
}

func TestReconcileIdenticalDocuments(t *testing.T) {
	doc := "နမော တဿ ဘဂဝတော\nအရဟတော\nသမ္မာသမ္ဗုဒ္ဓဿ\n"

	segments, err := LineDiff(EngineDifflib, doc, doc)
	if err != nil {
		t.Fatalf("LineDiff() error = %v", err)
	}
	r, err := Reconcile(segments)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	for _, line := range r.Inline {
		if line.Kind != SegmentUnchanged {
			t.Errorf("identical documents produced %v line %q", line.Kind, line.Content)
		}
	}
	if r.TotalChanges() != 0 {
		t.Errorf("TotalChanges() = %d, want 0", r.TotalChanges())
	}
	if len(r.Inline) != 3 {
		t.Errorf("inline length = %d, want 3", len(r.Inline))
	}
}
