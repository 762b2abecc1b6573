package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a configuration file so the process can
// re-load it between scan cycles. The parent directory is watched rather
// than the file itself; editors commonly replace files by rename, which
// would otherwise drop the watch.
type Watcher struct {
	fw     *fsnotify.Watcher
	path   string
	events chan struct{}
	done   chan struct{}
}

// NewWatcher starts watching a configuration file.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:     fw,
		path:   abs,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events signals each time the watched file is written or replaced. The
// channel is buffered with depth one; bursts coalesce into a single
// signal, which is all a re-load needs.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal to the device; the running
			// configuration simply stays in effect.
		case <-w.done:
			return
		}
	}
}
