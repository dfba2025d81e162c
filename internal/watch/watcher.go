package watch

import (
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"filegrip/internal/eventbus"
)

// Debounce window for coalescing bursts of filesystem events.
const debounce = 200 * time.Millisecond

// Watcher observes the currently displayed directory and publishes a
// DirChangedEvent when its contents change on disk.
type Watcher interface {
	Watch(dir string) error
	Stop()
}

// watcher is the concrete implementation
type watcher struct {
	bus eventbus.EventBus

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	dir     string
	quit    chan struct{}
	running bool
}

// New creates a new directory watcher
func New(bus eventbus.EventBus) Watcher {
	return &watcher{bus: bus}
}

// Watch switches the watcher to the given directory, replacing any
// previous watch.
func (w *watcher) Watch(dir string) error {
	w.mu.Lock()
	if w.running && w.dir == dir {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	w.Stop()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return err
	}

	w.mu.Lock()
	w.fsw = fsw
	w.dir = dir
	w.quit = make(chan struct{})
	w.running = true
	quit := w.quit
	w.mu.Unlock()

	go w.loop(fsw, dir, quit)

	w.bus.Publish(eventbus.WatchStartedEvent{Dir: dir})
	return nil
}

// Stop stops the current watch, if any
func (w *watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.quit)
	w.fsw.Close()
	w.fsw = nil

	w.bus.Publish(eventbus.WatchStoppedEvent{Dir: w.dir})
}

// loop drains fsnotify events and publishes one debounced change event
// per burst.
func (w *watcher) loop(fsw *fsnotify.Watcher, dir string, quit chan struct{}) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch error for %s: %v", dir, err)

		case <-timerC:
			timer = nil
			timerC = nil
			w.bus.Publish(eventbus.DirChangedEvent{Dir: dir})

		case <-quit:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}
