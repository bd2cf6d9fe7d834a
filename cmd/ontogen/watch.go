package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the document watcher
type WatcherConfig struct {
	// Patterns are the document arguments of the generate command: plain
	// paths or glob patterns.
	Patterns []string

	// DebounceDelay is how long to wait for more changes before reporting
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Watcher reports batches of ontology documents whose content changed.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// recursive is set when any pattern descends with "**"; new directories
	// are then watched as they appear.
	recursive bool

	// Debouncing: collect changes before reporting
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Content hashes of the documents seen so far
	hashMu sync.Mutex
	hashes map[string]string

	changes chan []string
}

// NewWatcher creates a watcher for the given document patterns.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 200 * time.Millisecond
	}

	w := &Watcher{
		config:  config,
		watcher: fsw,
		logger:  config.Logger,
		pending: make(map[string]fsnotify.Op),
		hashes:  make(map[string]string),
		changes: make(chan []string, 16),
	}
	for _, p := range config.Patterns {
		if strings.Contains(p, "**") {
			w.recursive = true
		}
	}
	return w, nil
}

// Changes returns the channel of changed document batches. It is closed
// when the watcher stops.
func (w *Watcher) Changes() <-chan []string {
	return w.changes
}

// Start records the current document contents and begins watching.
func (w *Watcher) Start(ctx context.Context) error {
	for _, pattern := range w.config.Patterns {
		base := watchBase(pattern)
		if strings.Contains(pattern, "**") {
			if err := w.addWatchesRecursive(base); err != nil {
				return err
			}
		} else if err := w.watcher.Add(base); err != nil {
			return err
		}
		w.recordExisting(pattern)
	}

	go w.processEvents(ctx)

	w.logger.Info("Watching ontology documents",
		"patterns", strings.Join(w.config.Patterns, ","),
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop stops the watcher. The changes channel is closed once the event
// loop has exited.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// Matches reports whether path is one of the watched documents.
func (w *Watcher) Matches(path string) bool {
	path = filepath.Clean(path)
	for _, pattern := range w.config.Patterns {
		if !containsGlob(pattern) {
			if filepath.Clean(pattern) == path {
				return true
			}
			continue
		}
		if ok, err := doublestar.PathMatch(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// watchBase returns the directory to watch for a pattern.
func watchBase(pattern string) string {
	if !containsGlob(pattern) {
		return filepath.Dir(pattern)
	}
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return filepath.FromSlash(base)
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// recordExisting hashes the documents a pattern currently matches.
func (w *Watcher) recordExisting(pattern string) {
	paths := []string{pattern}
	if containsGlob(pattern) {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return
		}
		paths = matches
	}
	for _, p := range paths {
		if hash, err := hashFile(p); err == nil {
			w.setHash(filepath.Clean(p), hash)
		}
	}
}

// addWatchesRecursive adds watches to all directories below root
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory",
				"path", path,
				"error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

// processEvents handles fsnotify events with debouncing
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.changes)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent processes a single fsnotify event
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	if !w.Matches(path) {
		if w.recursive && event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDirectory(path)
			}
		}
		return
	}

	w.pendingMu.Lock()
	w.pending[path] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Document change detected",
		"path", path,
		"op", event.Op.String())
}

// handleNewDirectory adds a watch to a newly created directory
func (w *Watcher) handleNewDirectory(path string) {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return
	}
	if err := w.addWatchesRecursive(path); err != nil {
		w.logger.Warn("Failed to watch new directory",
			"path", path,
			"error", err)
	}
}

// flushPending reports the pending documents whose content changed.
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	var changed []string
	for path := range toProcess {
		hash, err := hashFile(path)
		if err != nil {
			// Removed or unreadable; the next run reports it.
			if w.deleteHash(path) {
				changed = append(changed, path)
			}
			continue
		}
		if old, ok := w.getHash(path); ok && old == hash {
			continue
		}
		w.setHash(path, hash)
		changed = append(changed, path)
	}

	if len(changed) == 0 {
		return
	}
	sort.Strings(changed)

	select {
	case w.changes <- changed:
		w.logger.Debug("Sent change batch", "documents", len(changed))
	default:
		w.logger.Warn("Change channel full, dropping batch",
			"documents", strings.Join(changed, ","))
	}
}

func (w *Watcher) setHash(path, hash string) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	w.hashes[path] = hash
}

func (w *Watcher) getHash(path string) (string, bool) {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	hash, ok := w.hashes[path]
	return hash, ok
}

func (w *Watcher) deleteHash(path string) bool {
	w.hashMu.Lock()
	defer w.hashMu.Unlock()
	_, ok := w.hashes[path]
	delete(w.hashes, path)
	return ok
}

// hashFile computes the SHA256 hash of a file's content.
func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}

// watch regenerates after every batch of document changes until ctx ends.
func (r *runner) watch(ctx context.Context, patterns []string) error {
	w, err := NewWatcher(WatcherConfig{Patterns: patterns, Logger: r.logger})
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		_ = w.Stop()
		return err
	}
	defer func() { _ = w.Stop() }()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Watch stopped")
			return nil
		case changed, ok := <-w.Changes():
			if !ok {
				return nil
			}
			r.logger.Info("Ontology documents changed", "documents", strings.Join(changed, ","))
			if _, err := r.run(ctx, patterns); err != nil && ctx.Err() == nil {
				r.logger.Error("Generation failed", "error", err)
			}
		}
	}
}
