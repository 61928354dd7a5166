package main

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the burst of events editors emit on save
const watchDebounce = 50 * time.Millisecond

// FSChangeMsg is sent when a loaded draft changes on disk
type FSChangeMsg struct {
	source string
	time   time.Time
}

// Watcher reloads drafts when they are edited outside the application.
// Directories are watched rather than files because editors often save by
// renaming a temporary file over the original.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	dirs    map[string]int
	files   map[string]string // absolute path -> source as typed
	closed  bool
}

// NewWatcher creates a file system watcher with nothing watched yet
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: fsWatcher,
		dirs:    make(map[string]int),
		files:   make(map[string]string),
	}, nil
}

// Watch starts watching the file behind source
func (w *Watcher) Watch(source, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, ok := w.files[abs]; ok {
		return nil
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[abs] = source
	return nil
}

// Unwatch stops watching the file behind source
func (w *Watcher) Unwatch(source string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for abs, s := range w.files {
		if s != source {
			continue
		}
		delete(w.files, abs)
		dir := filepath.Dir(abs)
		w.dirs[dir]--
		if w.dirs[dir] <= 0 {
			delete(w.dirs, dir)
			_ = w.watcher.Remove(dir)
		}
	}
}

func (w *Watcher) sourceFor(path string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	source, ok := w.files[abs]
	return source, ok
}

// WaitForChange waits for the next change to a watched draft
func (w *Watcher) WaitForChange() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				source, watched := w.sourceFor(event.Name)
				if !watched {
					continue
				}
				time.Sleep(watchDebounce)
				return FSChangeMsg{source: source, time: time.Now()}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}
				return errMsg{err}
			}
		}
	}
}

// Close closes the file system watcher
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
