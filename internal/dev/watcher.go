package dev

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	ChangeAsset ChangeType = iota
	ChangeCSS
	ChangeWasm
)

// Change represents a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Dir is the directory to watch.
	Dir string

	// Ignore patterns to skip (globs, matched against base names).
	Ignore []string

	// Interval is the polling interval.
	Interval time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls a directory tree for changes. Polling keeps the dev
// server dependency-free on every platform; the tree it watches is a
// built app directory, small by construction.
type Watcher struct {
	config     WatcherConfig
	mu         sync.Mutex
	onChange   func(Change)
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 200 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}

	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching. It blocks until the context is canceled or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	// Baseline pass; nothing fires for files that predate the watch.
	w.scan(false)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.scan(true)
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		w.running = false
		close(w.stopCh)
	}
}

// scan walks the tree and fires the callback for new or modified files
// when notify is set.
func (w *Watcher) scan(notify bool) {
	_ = filepath.WalkDir(w.config.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if w.ignored(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		w.mu.Lock()
		prev, seen := w.timestamps[path]
		w.timestamps[path] = info.ModTime()
		onChange := w.onChange
		w.mu.Unlock()

		if notify && onChange != nil && (!seen || info.ModTime().After(prev)) {
			onChange(Change{Path: path, Type: classify(path)})
		}
		return nil
	})
}

func (w *Watcher) ignored(name string) bool {
	for _, pattern := range w.config.Ignore {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func classify(path string) ChangeType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return ChangeCSS
	case ".wasm":
		return ChangeWasm
	default:
		return ChangeAsset
	}
}
