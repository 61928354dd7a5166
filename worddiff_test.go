package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"word", []string{"word"}},
		{"ka kha  ga", []string{"ka", " ", "kha", "  ", "ga"}},
		{" lead\n", []string{" ", "lead", "\n"}},
		{"နမော တဿ", []string{"နမော", " ", "တဿ"}},
	}

	for _, tt := range tests {
		if got := tokenizeWords(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("tokenizeWords(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestWordDiffKeepsWordsWhole(t *testing.T) {
	segments, err := WordDiff("the quick fox jumps", "the slow fox jumps")
	if err != nil {
		t.Fatalf("WordDiff() error = %v", err)
	}

	var removed, added []string
	for _, segment := range segments {
		switch segment.Kind {
		case SegmentRemoved:
			removed = append(removed, segment.Text)
		case SegmentAdded:
			added = append(added, segment.Text)
		}
	}

	if !reflect.DeepEqual(removed, []string{"quick"}) {
		t.Errorf("removed = %q, want [\"quick\"]", removed)
	}
	if !reflect.DeepEqual(added, []string{"slow"}) {
		t.Errorf("added = %q, want [\"slow\"]", added)
	}
}

func TestWordDiffReconstructsDocuments(t *testing.T) {
	left := "သုတ္တန် ပါဠိ တော်\nဒုတိယ စာကြောင်း\n"
	right := "သုတ္တန် ပါဠိ\nဒုတိယ စာကြောင်း အသစ်\n"

	segments, err := WordDiff(left, right)
	if err != nil {
		t.Fatalf("WordDiff() error = %v", err)
	}

	var gotLeft, gotRight strings.Builder
	for _, segment := range segments {
		if segment.Kind != SegmentAdded {
			gotLeft.WriteString(segment.Text)
		}
		if segment.Kind != SegmentRemoved {
			gotRight.WriteString(segment.Text)
		}
	}
	if gotLeft.String() != left {
		t.Errorf("left reconstruction = %q, want %q", gotLeft.String(), left)
	}
	if gotRight.String() != right {
		t.Errorf("right reconstruction = %q, want %q", gotRight.String(), right)
	}
}

func TestWordDiffStatsThroughCompare(t *testing.T) {
	result, err := Compare(DefaultPair, "ka kha ga", "ka gha ga", WordMode, EngineDifflib)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	want := WordDiffStats{AddedChars: 3, RemovedChars: 3}
	if result.WordStats != want {
		t.Errorf("Compare() word stats = %+v, want %+v", result.WordStats, want)
	}
	if result.Mode != WordMode {
		t.Errorf("Compare() mode = %v, want %v", result.Mode, WordMode)
	}
	if len(result.Lines.Inline) != 0 {
		t.Errorf("word comparison produced %d inline lines, want 0", len(result.Lines.Inline))
	}
}

func TestWordDiffIdentical(t *testing.T) {
	segments, err := WordDiff("same words here", "same words here")
	if err != nil {
		t.Fatalf("WordDiff() error = %v", err)
	}
	for _, segment := range segments {
		if segment.Kind != SegmentUnchanged {
			t.Errorf("identical input produced %v segment %q", segment.Kind, segment.Text)
		}
	}
	if stats := ComputeWordStats(segments); stats != (WordDiffStats{}) {
		t.Errorf("ComputeWordStats() = %+v, want zero", stats)
	}
}

func TestTokenRuneSkipsSurrogates(t *testing.T) {
	for _, idx := range []int{0, 1, surrogateStart - 1, surrogateStart, surrogateStart + 10, 0x20000} {
		r := tokenRune(idx)
		if r >= surrogateStart && r < surrogateEnd {
			t.Errorf("tokenRune(%d) = %U, inside surrogate range", idx, r)
		}
		if back := tokenIndex(r); back != idx {
			t.Errorf("tokenIndex(tokenRune(%d)) = %d", idx, back)
		}
	}
}

func TestTokenEncoderRoundTrip(t *testing.T) {
	enc := newTokenEncoder()
	tokens := []string{"a", " ", "b", " ", "a"}

	runes := enc.encode(tokens)
	if runes[0] != runes[4] {
		t.Errorf("encode() gave repeated token different runes: %U and %U", runes[0], runes[4])
	}
	if got := enc.decode(string(runes)); !reflect.DeepEqual(got, tokens) {
		t.Errorf("decode(encode()) = %q, want %q", got, tokens)
	}
}
