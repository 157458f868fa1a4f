package monitor

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Hara602/usbwatch/pkg/event"
)

// FSMonitor watches a mount root (typically /media/<user>) for file activity
// on removable media. Directories appearing under the root are picked up as
// they are created, which covers drives mounted after startup.
type FSMonitor struct {
	watchRoot string
	watcher   *fsnotify.Watcher
	log       *zap.SugaredLogger
}

func NewFSMonitor(rootPath string, log *zap.SugaredLogger) *FSMonitor {
	return &FSMonitor{watchRoot: rootPath, log: log}
}

// addRecursive adds a directory and all of its subdirectories to the watch.
func (f *FSMonitor) addRecursive(path string) {
	err := filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if err := f.watcher.Add(walkPath); err != nil {
				f.log.Warnw("failed to watch directory", "path", walkPath, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		f.log.Warnw("error walking watch root", "path", path, "error", err)
	}
}

func (f *FSMonitor) Start() (<-chan event.Event, error) {
	var err error
	f.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Initial scan picks up drives already mounted when monitoring begins.
	f.addRecursive(f.watchRoot)

	eventChan := make(chan event.Event)

	go func() {
		defer close(eventChan)
		defer f.watcher.Close()

		for {
			select {
			case fsEvent, ok := <-f.watcher.Events:
				if !ok {
					return
				}

				if fsEvent.Op&fsnotify.Chmod == fsnotify.Chmod {
					continue
				}

				if fsEvent.Op&fsnotify.Create == fsnotify.Create {
					// Mounting takes a moment after the directory appears;
					// stat too early and the walk sees an empty directory.
					// TODO: poll the mount table instead of sleeping.
					time.Sleep(1 * time.Second)
					if fi, err := os.Stat(fsEvent.Name); err == nil && fi.IsDir() {
						f.log.Debugw("new mount directory detected", "path", fsEvent.Name)
						f.addRecursive(fsEvent.Name)
					}
				}

				var kind event.Kind
				switch {
				case fsEvent.Op&fsnotify.Write == fsnotify.Write:
					kind = event.FileWrite
				case fsEvent.Op&fsnotify.Create == fsnotify.Create:
					kind = event.FileCreate
				case fsEvent.Op&fsnotify.Remove == fsnotify.Remove:
					kind = event.FileRemove
				case fsEvent.Op&fsnotify.Rename == fsnotify.Rename:
					kind = event.FileRename
				default:
					continue
				}

				eventChan <- event.Event{
					Timestamp: time.Now(),
					Kind:      kind,
					Source:    SourceFS,
					Path:      fsEvent.Name,
				}

			case err, ok := <-f.watcher.Errors:
				if !ok {
					return
				}
				f.log.Warnw("filesystem watcher error", "error", err)
			}
		}
	}()

	return eventChan, nil
}

func (f *FSMonitor) Stop() {
	if f.watcher != nil {
		f.watcher.Close()
	}
}
