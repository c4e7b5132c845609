package assets

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// Watcher invalidates a Loader when hand artwork changes on disk and
// reports the change through a callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	loader   *Loader
	onChange func()
	logger   *slog.Logger
	done     chan struct{}
	stopped  chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher for loader's theme directories. onChange may
// be nil.
func NewWatcher(loader *Loader, onChange func(), logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		watcher:  w,
		loader:   loader,
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

// Start watches <root>/day and <root>/night. Directories that do not exist
// are skipped; at least one must be watchable.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	var added int
	var lastErr error
	for _, t := range []theme.Theme{theme.Day, theme.Night} {
		dir := filepath.Join(w.loader.Root(), t.String())
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Debug("not watching asset directory", "dir", dir, "error", err)
			lastErr = err
			continue
		}
		added++
	}
	if added == 0 {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return lastErr
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	defer close(w.stopped)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, "-hand.png") {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.logger.Debug("hand artwork changed", "file", event.Name, "op", event.Op.String())
				w.loader.Invalidate()
				if w.onChange != nil {
					w.onChange()
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("asset watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops watching and waits for the loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.watcher.Close()
	}
	w.running = false
	close(w.done)
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.stopped
	return err
}
