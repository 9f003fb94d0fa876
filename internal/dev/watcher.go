package dev

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	ChangeAsset ChangeType = iota
	ChangeCSS
	ChangeScript
	ChangeTemplate
)

// String returns the name of the change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeCSS:
		return "css"
	case ChangeScript:
		return "script"
	case ChangeTemplate:
		return "template"
	default:
		return "asset"
	}
}

// Change represents a detected file change.
type Change struct {
	Path string
	Type ChangeType
	Op   fsnotify.Op
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch, recursively.
	Paths []string

	// Ignore patterns to skip (globs).
	Ignore []string

	// Debounce is the quiet period before changes are reported.
	Debounce time.Duration

	// Logger receives watch errors. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher reports file changes under a set of directories.
type Watcher struct {
	config   WatcherConfig
	logger   *slog.Logger
	onChange func(Change)
	onError  func(error)

	mu      sync.Mutex
	running bool
	fsw     *fsnotify.Watcher
	pending []Change
	timer   *time.Timer
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		config: config,
		logger: logger,
	}
}

// OnChange sets the callback for file changes. It is called from the
// watcher goroutine with at most one change per ChangeType per burst.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// OnError sets the callback for watch errors. Errors are logged either way.
func (w *Watcher) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = fn
}

// Start watches until ctx is cancelled or Stop is called. It returns
// ctx.Err() on cancellation and nil after Stop. Roots that do not exist are
// logged and skipped.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		fsw.Close()
		return nil
	}
	w.running = true
	w.fsw = fsw
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.pending = nil
		w.running = false
		w.fsw = nil
		w.mu.Unlock()
	}()

	for _, root := range w.config.Paths {
		err := w.addTree(fsw, root)
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Warn("watch root missing", "path", root)
			continue
		}
		if err != nil {
			fsw.Close()
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			fsw.Close()
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fsw, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.reportError(err)
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	fsw := w.fsw
	w.mu.Unlock()
	if fsw != nil {
		fsw.Close()
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// addTree watches root and every directory below it.
func (w *Watcher) addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && w.shouldIgnore(p) {
			return filepath.SkipDir
		}
		return fsw.Add(p)
	})
}

func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op == fsnotify.Chmod || w.shouldIgnore(event.Name) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(fsw, event.Name); err != nil && !errors.Is(err, fsnotify.ErrClosed) {
				w.reportError(fmt.Errorf("watch %s: %w", event.Name, err))
			}
			return
		}
	}

	w.queue(Change{Path: event.Name, Type: classifyChange(event.Name), Op: event.Op})
}

func (w *Watcher) reportError(err error) {
	w.logger.Warn("watch error", "error", err)
	w.mu.Lock()
	callback := w.onError
	w.mu.Unlock()
	if callback != nil {
		callback(err)
	}
}

// queue records a change and (re)arms the debounce timer.
func (w *Watcher) queue(c Change) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, c)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.config.Debounce, w.flush)
}

// flush reports the first pending change of each type.
func (w *Watcher) flush() {
	w.mu.Lock()
	changes := w.pending
	w.pending = nil
	w.timer = nil
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}

	reportedTypes := make(map[ChangeType]bool)
	for _, change := range changes {
		if !reportedTypes[change.Type] {
			reportedTypes[change.Type] = true
			callback(change)
		}
	}
}

// shouldIgnore checks if a path should be ignored.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	normalized := filepath.ToSlash(fullPath)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if name == pattern {
			return true
		}

		hasPathSep := strings.ContainsAny(pattern, `/\`)
		hasGlob := strings.ContainsAny(pattern, "*?[")

		if hasGlob {
			if hasPathSep {
				if matched, _ := path.Match(filepath.ToSlash(pattern), normalized); matched {
					return true
				}
			} else if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}

		if hasPathSep {
			if pathMatchesSegments(normalized, filepath.ToSlash(pattern)) {
				return true
			}
			continue
		}

		if pathHasSegment(normalized, pattern) {
			return true
		}
	}

	return false
}

func pathHasSegment(path, segment string) bool {
	for _, part := range splitPathSegments(path) {
		if part == segment {
			return true
		}
	}
	return false
}

func pathMatchesSegments(path, pattern string) bool {
	pathParts := splitPathSegments(path)
	patternParts := splitPathSegments(pattern)
	if len(patternParts) == 0 || len(patternParts) > len(pathParts) {
		return false
	}

	for i := 0; i <= len(pathParts)-len(patternParts); i++ {
		match := true
		for j := range patternParts {
			if pathParts[i+j] != patternParts[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

func splitPathSegments(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	result := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			result = append(result, part)
		}
	}
	return result
}

// classifyChange determines the type of change based on file extension.
func classifyChange(path string) ChangeType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return ChangeCSS
	case ".js", ".mjs":
		return ChangeScript
	case ".html", ".tmpl", ".md":
		return ChangeTemplate
	default:
		return ChangeAsset
	}
}
