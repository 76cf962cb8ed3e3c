// Package watcher reports file changes under a directory tree.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/prepress/internal/logger"
)

// EventType classifies a reported file change.
type EventType string

const (
	// EventCreated is a new file appearing under the watched root.
	EventCreated EventType = "created"
	// EventUpdated is an existing file being written to.
	EventUpdated EventType = "updated"
)

// Event is a single observed file change.
type Event struct {
	// Path is the file path as reported by the operating system.
	Path string

	// Type says whether the file was created or updated.
	Type EventType
}

// Watcher reports create and write events for regular files under a
// root directory. Hidden files and directories are ignored, as are
// deletions and renames: the watcher exists to feed files into the
// pipeline, and a removed file has nothing left to process.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher

	mu     sync.Mutex
	closed bool
}

// New returns a watcher for the given root directory.
func New(root string) *Watcher {
	return &Watcher{root: root}
}

// Watch starts watching and returns a channel of file events. The
// channel closes when ctx is cancelled. Subdirectories are watched
// recursively; directories created later are added as they appear.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, errors.New("watcher is closed")
	}

	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", w.root)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := addRecursive(fsWatcher, w.root); err != nil {
		fsWatcher.Close() //nolint:errcheck // Already failing
		return nil, err
	}
	w.watcher = fsWatcher

	events := make(chan Event)
	go w.run(ctx, events)
	return events, nil
}

func (w *Watcher) run(ctx context.Context, events chan<- Event) {
	defer close(events)

	for {
		select {
		case <-ctx.Done():
			return
		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			event := w.handleFsEvent(fsEvent)
			if event == nil {
				continue
			}
			select {
			case events <- *event:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleFsEvent converts an fsnotify event into a file event, or nil
// for events the watcher does not report. New directories are added
// to the watch set instead of being reported.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *Event {
	// Hidden means hidden relative to the root, so a root that lives
	// inside a dot-directory still gets its events.
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || isHidden(rel) {
		return nil
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// Removed or renamed away; nothing to report.
		return nil
	}
	if info.IsDir() {
		if event.Op.Has(fsnotify.Create) {
			if err := w.watcher.Add(event.Name); err != nil {
				logger.Warn("failed to watch %s: %v", event.Name, err)
			}
		}
		return nil
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		return &Event{Path: event.Name, Type: EventCreated}
	case event.Op.Has(fsnotify.Write):
		return &Event{Path: event.Name, Type: EventUpdated}
	}
	return nil
}

// Close stops the underlying watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func addRecursive(fsWatcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if rel, relErr := filepath.Rel(root, path); relErr == nil && rel != "." && isHidden(rel) {
			return filepath.SkipDir
		}
		if err := fsWatcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// isHidden reports whether any element of the path starts with a dot.
// The relative markers "." and ".." do not count as hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
