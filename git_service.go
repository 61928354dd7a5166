package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotInRepository is returned when a revision source is used outside a
// git working tree.
var ErrNotInRepository = errors.New("not inside a git repository")

// GitService reads drafts from committed revisions, so a reviewer can
// compare the working file with an earlier proofreading pass.
type GitService struct {
	repo *git.Repository
	root string
}

// NewGitService opens the repository containing dir
func NewGitService(dir string) (*GitService, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotInRepository)
		}
		return nil, fmt.Errorf("open git repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	return &GitService{repo: repo, root: worktree.Filesystem.Root()}, nil
}

// GetRootPath returns the repository root
func (gs *GitService) GetRootPath() string {
	return gs.root
}

// ReadRevisionFile reads path as of revision rev. path is interpreted
// relative to cwd when it is not already relative to the repository root.
func (gs *GitService) ReadRevisionFile(rev, path, cwd string, logger *Logger) ([]byte, error) {
	commit, err := gs.resolveCommit(rev)
	if err != nil {
		return nil, err
	}

	repoPath, err := gs.repoRelativePath(path, cwd)
	if err != nil {
		return nil, err
	}

	file, err := commit.File(repoPath)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%s does not exist at %s: %w", repoPath, rev, err)
		}
		return nil, fmt.Errorf("get %s at %s: %w", repoPath, rev, err)
	}

	reader, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("open %s at %s: %w", repoPath, rev, err)
	}
	content, err := readAll(reader)
	reader.Close()
	if err != nil {
		return nil, fmt.Errorf("read %s at %s: %w", repoPath, rev, err)
	}

	if err := enforceSizeLimit(rev+":"+repoPath, int64(len(content)), logger); err != nil {
		return nil, err
	}
	return content, nil
}

func (gs *GitService) resolveCommit(rev string) (*object.Commit, error) {
	hash, err := gs.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}

	commit, err := gs.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("get commit %s: %w", hash.String()[:7], err)
	}
	return commit, nil
}

// repoRelativePath converts path to the slash-separated form go-git expects
func (gs *GitService) repoRelativePath(path, cwd string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(cwd, path)
	}

	rel, err := filepath.Rel(gs.root, abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s against repository root: %w", path, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the repository %s", path, gs.root)
	}
	return filepath.ToSlash(rel), nil
}
