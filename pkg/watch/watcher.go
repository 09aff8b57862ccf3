// Package watch reports changes to the directory the browser is showing.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/fbrowse/logging"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is how long a burst of changes must settle before an
// Event is emitted.
const DefaultDebounce = 150 * time.Millisecond

// Event signals that the watched directory's listing may have changed.
type Event struct {
	Dir string
	// Name is the last file touched in the burst.
	Name string
}

// Watcher follows a single directory, non-recursively. Bursts of
// filesystem events collapse into one Event per debounce window.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *logrus.Entry
	events   chan Event

	mu      sync.Mutex
	dir     string
	pending *Event
}

// New creates a Watcher. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fsw:      fsw,
		debounce: debounce,
		logger:   logging.NewLogger("watch"),
		events:   make(chan Event, 1),
	}, nil
}

// Watch switches the watcher to dir. An empty dir stops watching.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsw.Remove(w.dir); err != nil {
			w.logger.WithError(err).WithField("path", w.dir).Debug("Failed to remove watch")
		}
	}
	w.dir = ""
	w.pending = nil
	if dir == "" {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.dir = dir
	w.logger.WithField("path", dir).Debug("Watching directory")
	return nil
}

// Dir returns the directory currently watched.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Events delivers debounced change notifications. The channel holds at most
// one undelivered Event; later bursts for the same directory are dropped
// until it is read.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start processes filesystem events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if event.Op == fsnotify.Chmod {
				continue
			}
			if w.record(event.Name) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-timer.C:
			w.flush()
		case <-ctx.Done():
			w.fsw.Close()
			return
		}
	}
}

// record notes a change under the watched directory and reports whether
// it belongs there.
func (w *Watcher) record(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dir == "" || filepath.Dir(name) != filepath.Clean(w.dir) {
		return false
	}
	w.pending = &Event{Dir: w.dir, Name: name}
	return true
}

func (w *Watcher) flush() {
	w.mu.Lock()
	ev := w.pending
	w.pending = nil
	w.mu.Unlock()
	if ev == nil {
		return
	}
	select {
	case w.events <- *ev:
		w.logger.WithField("path", ev.Dir).Debug("Directory changed")
	default:
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
