package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"
)

// MaxFileSize is the largest draft we will load (10MB)
const MaxFileSize = 10 * 1024 * 1024

// ErrNotText is returned for files that are not valid UTF-8 text
var ErrNotText = errors.New("not valid UTF-8 text")

// documentSource is where a draft comes from: a file on disk or a file at a
// git revision written as REV:path.
type documentSource struct {
	raw  string
	rev  string
	path string
}

// parseDocumentSource interprets raw as REV:path when the whole string does
// not name an existing file and the part before the colon is non-empty.
func parseDocumentSource(raw, cwd string) documentSource {
	src := documentSource{raw: raw, path: raw}
	if _, err := os.Stat(absPath(raw, cwd)); err == nil {
		return src
	}

	rev, path, found := strings.Cut(raw, ":")
	if !found || rev == "" || path == "" {
		return src
	}
	src.rev = rev
	src.path = path
	return src
}

func (s documentSource) isRevision() bool {
	return s.rev != ""
}

// name returns the label shown next to the slot number
func (s documentSource) name() string {
	if s.isRevision() {
		return s.rev + ":" + fileNameFromPath(s.path)
	}
	return fileNameFromPath(s.path)
}

// DocumentLoader reads drafts from disk or from git revisions
type DocumentLoader struct {
	mu     sync.Mutex
	cwd    string
	git    *GitService
	gitErr error
	logger *Logger
}

// NewDocumentLoader creates a loader resolving relative paths against cwd.
// Git access is opened lazily on the first revision source.
func NewDocumentLoader(cwd string, logger *Logger) *DocumentLoader {
	return &DocumentLoader{cwd: cwd, logger: logger}
}

// Load reads raw and returns its content and display name
func (l *DocumentLoader) Load(raw string) (content, name string, err error) {
	src := parseDocumentSource(raw, l.cwd)

	var data []byte
	if src.isRevision() {
		data, err = l.loadRevision(src)
	} else {
		data, err = l.loadFile(src.path)
	}
	if err != nil {
		return "", "", err
	}

	if !utf8.Valid(data) {
		return "", "", fmt.Errorf("%s: %w", raw, ErrNotText)
	}

	l.logger.Debug("document loaded", map[string]any{
		"source": raw,
		"bytes":  len(data),
	})
	return string(data), src.name(), nil
}

func (l *DocumentLoader) loadFile(path string) ([]byte, error) {
	path = absPath(path, l.cwd)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return nil, enforceSizeLimit(path, info.Size(), l.logger)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := enforceSizeLimit(path, int64(len(data)), l.logger); err != nil {
		return nil, err
	}
	return data, nil
}

func (l *DocumentLoader) loadRevision(src documentSource) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.git == nil && l.gitErr == nil {
		l.git, l.gitErr = NewGitService(l.cwd)
		if l.gitErr != nil {
			l.logger.Warn("git revisions unavailable", map[string]any{
				"cwd":   l.cwd,
				"error": l.gitErr.Error(),
			})
		} else {
			l.logger.Debug("git repository opened", map[string]any{
				"root": l.git.GetRootPath(),
			})
		}
	}
	if l.gitErr != nil {
		return nil, fmt.Errorf("load %s: %w", src.raw, l.gitErr)
	}
	return l.git.ReadRevisionFile(src.rev, src.path, l.cwd, l.logger)
}

// enforceSizeLimit checks a draft size against MaxFileSize
func enforceSizeLimit(path string, size int64, logger *Logger) error {
	if size <= MaxFileSize {
		return nil
	}
	logger.Warn("draft too large to compare", map[string]any{
		"file": path,
		"size": size,
		"max":  MaxFileSize,
	})
	return fmt.Errorf("file %s too large to compare (%d > %d)", path, size, MaxFileSize)
}

func absPath(path, cwd string) string {
	if filepath.IsAbs(path) || cwd == "" {
		return path
	}
	return filepath.Join(cwd, path)
}
