package settings

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"termprefs/internal/debuglog"
)

// Watcher reloads the store when the settings file changes on disk, so
// external edits (hand-editing, another editor instance) show up without a
// restart.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
	store   *Store
}

// NewWatcher starts watching the store's backing file. The parent directory
// is watched rather than the file itself so atomic rename-style saves keep
// being observed.
func NewWatcher(store *Store) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher: fsw,
		done:    make(chan struct{}),
		store:   store,
	}

	dir := filepath.Dir(store.Path())
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	debuglog.InfoLog("settings.Watcher: watching %s for changes", dir)

	go w.watchLoop(fsw)
	return w, nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return
	}
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	w.watcher.Close()
	w.watcher = nil
}

func (w *Watcher) watchLoop(fsw *fsnotify.Watcher) {
	// Debounce to avoid reloading on rapid successive writes
	var debounceTimer *time.Timer
	debounceDuration := 500 * time.Millisecond

	target := filepath.Base(w.store.Path())

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					debuglog.InfoLog("settings.Watcher: %s changed, reloading", target)
					w.store.Reload()
				})
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			debuglog.ErrorLog("settings.Watcher: %v", err)

		case <-w.done:
			debuglog.InfoLog("settings.Watcher: stopped")
			return
		}
	}
}
