// Package watch notifies subscribers when a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event is sent to subscribers when the watched file changes, or when the
// watcher reports an error.
type Event struct {
	Err  error
	Path string
	Op   fsnotify.Op
}

// Watcher watches a single file. The parent directory is watched so that
// editors replacing the file by rename are noticed.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	listeners []chan<- Event
	mu        sync.Mutex
}

// New creates a [Watcher] for path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	err = w.Add(filepath.Dir(abs))
	if err != nil {
		closeErr := w.Close()
		if closeErr != nil {
			slog.Debug("close watcher", slog.Any("err", closeErr))
		}

		return nil, fmt.Errorf("add path to watcher: %w", err)
	}

	return &Watcher{watcher: w, path: abs}, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Subscribe registers ch to receive events.
func (w *Watcher) Subscribe(ch chan<- Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.listeners = append(w.listeners, ch)
}

// Run forwards events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(evt.Name) != w.path {
				continue
			}

			if evt.Has(fsnotify.Create | fsnotify.Remove | fsnotify.Write | fsnotify.Rename) {
				slog.Debug("file changed",
					slog.String("path", evt.Name),
					slog.String("op", evt.Op.String()),
				)
				w.broadcast(ctx, Event{Path: w.path, Op: evt.Op})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			w.broadcast(ctx, Event{Path: w.path, Err: err})
		}
	}
}

func (w *Watcher) broadcast(ctx context.Context, evt Event) {
	w.mu.Lock()
	listeners := append([]chan<- Event(nil), w.listeners...)
	w.mu.Unlock()

	for _, ch := range listeners {
		select {
		case ch <- evt:
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	if err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	return nil
}
