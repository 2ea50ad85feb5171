// Package watch reports when a pattern file is rewritten on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// FileWatcher watches one file. Editors often replace a file instead of writing
// it in place, so the parent directory is watched and events are filtered by name.
type FileWatcher struct {
	path    string
	w       *fsnotify.Watcher
	changed chan string
	done    chan struct{}
	once    sync.Once

	OnError func(error)
}

// NewFileWatcher starts watching path. Changed receives path after every write
// to it or create of it, including a rename onto it. Notifications coalesce
// while the reader is busy.
func NewFileWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	// events carry the resolved directory name
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	fw := &FileWatcher{
		path:    abs,
		w:       w,
		changed: make(chan string, 1),
		done:    make(chan struct{}),
		OnError: func(err error) { logrus.WithError(err).Warn("pattern watcher") },
	}
	go fw.loop()
	return fw, nil
}

// Changed delivers the watched path whenever the file changes.
func (fw *FileWatcher) Changed() <-chan string { return fw.changed }

// Path returns the absolute path being watched.
func (fw *FileWatcher) Path() string { return fw.path }

// Close stops the watcher. It is safe to call more than once.
func (fw *FileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		err = fw.w.Close()
		<-fw.done
	})
	return err
}

func (fw *FileWatcher) loop() {
	defer close(fw.done)
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			// a rename onto the path arrives as Create; Rename means it moved away
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			select {
			case fw.changed <- fw.path:
			default:
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			if fw.OnError != nil {
				fw.OnError(err)
			}
		}
	}
}
