// Package watcher notifies on pacman log appends.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// Watcher watches the pacman log for writes and invokes a callback after
// a short debounce, so a burst of writes from one pacman transaction
// produces a single refresh.
type Watcher struct {
	path     string
	onChange func()
	fsw      *fsnotify.Watcher
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a watcher for the log at path. The parent directory is
// watched rather than the file itself, so the watch survives log rotation.
func New(path string, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange cannot be nil")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		path:     path,
		onChange: onChange,
		fsw:      fsw,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins delivering change notifications.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.run()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.onChange)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.stopCh:
			return
		}
	}
}

// Stop halts the watcher. No callbacks are invoked after Stop returns,
// except one already in flight.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.fsw.Close()
	w.wg.Wait()
}
