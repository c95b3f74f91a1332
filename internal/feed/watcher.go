package feed

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"timeflow/internal/log"
)

// Watcher reloads interest in a schedule file: onChange fires, debounced,
// after the file is written or recreated.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]time.Time
	onChange func(string)
	mu       sync.RWMutex
	done     chan struct{}
}

func NewWatcher(onChange func(string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  watcher,
		files:    make(map[string]time.Time),
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go w.watch()
	return w, nil
}

func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.files[absPath]; exists {
		return nil
	}

	if err := w.watcher.Add(absPath); err != nil {
		return err
	}

	w.files[absPath] = time.Now()
	return nil
}

func (w *Watcher) watch() {
	debounce := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// Editors fire bursts of writes; collapse them. The timer
				// callback runs on its own goroutine, so every access to
				// the debounce map stays behind the lock.
				w.mu.Lock()
				if timer, exists := debounce[event.Name]; exists {
					timer.Stop()
				}

				debounce[event.Name] = time.AfterFunc(100*time.Millisecond, func() {
					w.mu.Lock()
					delete(debounce, event.Name)
					_, watching := w.files[event.Name]
					w.mu.Unlock()

					if watching && w.onChange != nil {
						w.onChange(event.Name)
					}
				})
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("schedule file watcher", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
