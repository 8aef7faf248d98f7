package dev

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ChangeType classifies a file change by what the browser must do
// about it.
type ChangeType int

const (
	// ChangeCSS can be hot-swapped without a full page reload.
	ChangeCSS ChangeType = iota
	// ChangeSource means the app itself changed and needs a rebuild
	// plus a full reload.
	ChangeSource
	// ChangeAsset covers everything else served to the page.
	ChangeAsset
)

// Change is a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files or directories to watch.
	Paths []string

	// Ignore patterns to skip. Globs match base names; patterns
	// without metacharacters match whole path segments.
	Ignore []string

	// Interval is the polling period.
	Interval time.Duration
}

// DefaultIgnore contains patterns skipped by default.
var DefaultIgnore = []string{
	"*_test.go",
	".git",
	"node_modules",
	"dist",
	".sitewinder",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls the configured paths for modified, added, or removed
// files. Polling keeps the dev server dependency-free on every
// platform at the cost of a short detection delay.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)

	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	modTimes map[string]time.Time
	primed   bool
}

// NewWatcher creates a watcher. Zero-value config fields get defaults.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{
		config:   config,
		modTimes: make(map[string]time.Time),
	}
}

// OnChange sets the callback invoked for each detected change.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until the context is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

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
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning reports whether Start is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scan walks all watch paths once. When report is true, differences
// against the previous scan are delivered to the callback, coalesced
// to one change per type per scan.
func (w *Watcher) scan(report bool) {
	w.mu.Lock()
	callback := w.onChange
	primed := w.primed
	w.mu.Unlock()

	seen := make(map[string]bool)
	var changes []Change

	for _, root := range w.config.Paths {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if w.ignored(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if w.ignored(p) {
				return nil
			}
			seen[p] = true

			w.mu.Lock()
			prev, known := w.modTimes[p]
			w.modTimes[p] = info.ModTime()
			w.mu.Unlock()

			if primed && (!known || info.ModTime().After(prev)) {
				changes = append(changes, Change{Path: p, Type: classify(p)})
			}
			return nil
		})
	}

	// Removed files count as changes of their former type.
	w.mu.Lock()
	for p := range w.modTimes {
		if !seen[p] {
			delete(w.modTimes, p)
			if primed {
				changes = append(changes, Change{Path: p, Type: classify(p)})
			}
		}
	}
	w.primed = true
	w.mu.Unlock()

	if !report || callback == nil {
		return
	}
	reported := make(map[ChangeType]bool)
	for _, c := range changes {
		if !reported[c.Type] {
			reported[c.Type] = true
			callback(c)
		}
	}
}

// ignored checks a full path against the ignore patterns.
func (w *Watcher) ignored(fullPath string) bool {
	name := filepath.Base(fullPath)
	normalized := filepath.ToSlash(fullPath)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.ContainsAny(pattern, "*?[") {
			if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}
		if name == pattern || hasSegment(normalized, pattern) {
			return true
		}
	}
	return false
}

func hasSegment(path, segment string) bool {
	for _, part := range strings.Split(path, "/") {
		if part == segment {
			return true
		}
	}
	return false
}

// classify maps a file extension to the browser action it needs.
func classify(path string) ChangeType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".scss", ".sass", ".less":
		return ChangeCSS
	case ".go", ".wasm":
		return ChangeSource
	default:
		return ChangeAsset
	}
}
