package poem

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a poems directory for .poem file changes so the library
// can be reloaded while the reader is open.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange chan struct{}
	done     chan struct{}
}

// NewWatcher creates a watcher for the given poems directory.
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		dir:      dir,
		debounce: 100 * time.Millisecond,
		onChange: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	go watcher.loop()
	return watcher, nil
}

// Changes returns a channel that receives a signal when a .poem file is
// written, created, removed, or renamed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.onChange
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".poem" {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// Debounce: editors often fire several events per save.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case w.onChange <- struct{}{}:
				default: // already signaled, skip
				}
			})
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
