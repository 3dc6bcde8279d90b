// Package watcher refreshes the board when a document file changes on disk,
// so out-of-band edits show up without restarting the bot.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem events on the document files into a single
// onChange call per burst.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	onChange func()
	logger   *slog.Logger
}

// New watches the named files inside dir. onChange runs on the watch
// goroutine, at most once per quiet period of the debounce duration.
func New(dir string, files []string, debounce time.Duration, onChange func(), logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		watched[filepath.Join(dir, f)] = true
	}

	return &Watcher{
		fsw:      fsw,
		files:    watched,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}, nil
}

// Run processes events until the context is canceled or the watcher closes.
func (w *Watcher) Run(ctx context.Context) {
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.files[event.Name] {
				continue
			}
			// Renames matter too: saves land as temp-file renames.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("document changed on disk", "file", event.Name, "op", event.Op.String())
			fire = time.After(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
