package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// surrogateStart and surrogateEnd bound the UTF-16 surrogate range, which
// cannot round-trip through a Go string and is skipped when encoding tokens.
const (
	surrogateStart = 0xD800
	surrogateEnd   = 0xE000
)

// WordDiff computes a word-granular edit script. Words and the whitespace
// between them are separate tokens, so segments always split on word
// boundaries.
func WordDiff(left, right string) (segments []DiffSegment, err error) {
	defer recoverDiffPanic(&err)

	left = strings.ReplaceAll(left, "\r\n", "\n")
	right = strings.ReplaceAll(right, "\r\n", "\n")

	enc := newTokenEncoder()
	oldRunes := enc.encode(tokenizeWords(left))
	newRunes := enc.encode(tokenizeWords(right))

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCleanupMerge(diffs)

	segments, err = dmpDiffsToSegments(diffs, enc.decode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiffComputationFailed, err)
	}
	return segments, nil
}

// tokenizeWords splits text into alternating runs of whitespace and
// non-whitespace.
func tokenizeWords(text string) []string {
	var tokens []string
	start := 0
	inSpace := false
	for i, r := range text {
		space := unicode.IsSpace(r)
		if i > start && space != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
		}
		inSpace = space
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// tokenEncoder maps each distinct token to a rune so diff-match-patch can
// diff token sequences.
type tokenEncoder struct {
	tokens []string
	index  map[string]rune
}

func newTokenEncoder() *tokenEncoder {
	return &tokenEncoder{index: make(map[string]rune)}
}

func (e *tokenEncoder) encode(tokens []string) []rune {
	runes := make([]rune, 0, len(tokens))
	for _, token := range tokens {
		r, ok := e.index[token]
		if !ok {
			r = tokenRune(len(e.tokens))
			if r > unicode.MaxRune {
				panic(fmt.Sprintf("too many distinct tokens: %d", len(e.tokens)))
			}
			e.tokens = append(e.tokens, token)
			e.index[token] = r
		}
		runes = append(runes, r)
	}
	return runes
}

func (e *tokenEncoder) decode(s string) []string {
	tokens := make([]string, 0, len(s))
	for _, r := range s {
		idx := tokenIndex(r)
		if idx >= 0 && idx < len(e.tokens) {
			tokens = append(tokens, e.tokens[idx])
		}
	}
	return tokens
}

func tokenRune(idx int) rune {
	r := rune(idx)
	if r >= surrogateStart {
		r += surrogateEnd - surrogateStart
	}
	return r
}

func tokenIndex(r rune) int {
	if r >= surrogateEnd {
		r -= surrogateEnd - surrogateStart
	}
	return int(r)
}
