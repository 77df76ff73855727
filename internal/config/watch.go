package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the config file when it changes on disk and hands the
// fresh Config to the registered callback. Editors typically emit bursts of
// write events per save, so reloads are debounced.
type Watcher struct {
	path     string
	onChange func(Config)
	logger   *zap.Logger
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	running bool
	stopped chan struct{}
}

// NewWatcher creates a watcher for the config file at path. onChange is
// invoked from the watch goroutine with each successfully reloaded config;
// reloads that fail validation are logged and dropped.
func NewWatcher(path string, logger *zap.Logger, onChange func(Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     path,
		onChange: onChange,
		logger:   logger,
		debounce: 250 * time.Millisecond,
		watcher:  fw,
	}, nil
}

// Start begins watching. Non-blocking; the watch loop runs until Stop or
// context cancellation. The containing directory is watched rather than the
// file itself so atomic rename-style saves keep working. If the directory
// cannot be watched the watcher stays stopped and Start may be retried.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	w.running = true
	w.stopped = make(chan struct{})
	stopped := w.stopped

	go func() {
		defer close(stopped)
		// Reloads run on this goroutine, behind the debounce timer, so
		// Stop's wait below is a guarantee that no callback outlives it.
		var pending *time.Timer
		var fire <-chan time.Time
		defer func() {
			if pending != nil {
				pending.Stop()
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case <-fire:
				fire = nil
				w.reload()
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(w.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if pending == nil {
					pending = time.NewTimer(w.debounce)
				} else {
					if !pending.Stop() {
						select {
						case <-pending.C:
						default:
						}
					}
					pending.Reset(w.debounce)
				}
				fire = pending.C
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("config watch error", zap.Error(err))
			}
		}
	}()
	return nil
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload rejected", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("config reloaded", zap.String("path", w.path))
	w.onChange(cfg)
}

// Stop closes the underlying filesystem watcher and, if the watch loop is
// running, waits for it to drain. No reload callback fires after Stop
// returns. Safe after a failed Start and idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	stopped := w.stopped
	w.running = false
	w.mu.Unlock()

	_ = w.watcher.Close()
	if running {
		<-stopped
	}
}
