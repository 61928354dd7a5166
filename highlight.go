package main

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// SyntaxHighlighter colours unchanged lines according to the draft's file
// type. Plain .txt drafts resolve to the plaintext lexer and pass through
// untouched; marked-up drafts (.md, .xml, .html) get highlighted.
type SyntaxHighlighter struct {
	style *chroma.Style

	mu      sync.Mutex
	lexers  map[string]chroma.Lexer
	noLexer map[string]bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter() *SyntaxHighlighter {
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	return &SyntaxHighlighter{
		style:   style,
		lexers:  make(map[string]chroma.Lexer),
		noLexer: make(map[string]bool),
	}
}

// Highlight highlights one line of a draft named fileName
func (h *SyntaxHighlighter) Highlight(line, fileName string) string {
	if h == nil || line == "" {
		return line
	}

	lexer := h.getLexer(fileName)
	if lexer == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	// lexers may append a newline the line never had
	tokens := iterator.Tokens()
	if n := len(tokens); n > 0 {
		tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
	}

	var result strings.Builder
	for _, token := range tokens {
		result.WriteString(h.styleToken(token))
	}
	return result.String()
}

// getLexer returns the lexer for a draft name, caching lookups
func (h *SyntaxHighlighter) getLexer(fileName string) chroma.Lexer {
	if fileName == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if lexer, ok := h.lexers[fileName]; ok {
		return lexer
	}
	if h.noLexer[fileName] {
		return nil
	}

	lexer := lexers.Match(filepath.Base(fileName))
	if lexer == nil {
		lexer = lexers.Get(strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), "."))
	}
	if lexer == nil {
		h.noLexer[fileName] = true
		return nil
	}

	lexer = chroma.Coalesce(lexer)
	h.lexers[fileName] = lexer
	return lexer
}

// styleToken applies lipgloss styling to a chroma token
func (h *SyntaxHighlighter) styleToken(token chroma.Token) string {
	content := token.Value
	entry := h.style.Get(token.Type)
	if entry == (chroma.StyleEntry{}) {
		return content
	}

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	return style.Render(content)
}
