package testimonial

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a FileSource whenever its fixture changes on disk
type Watcher struct {
	source   *FileSource
	watcher  *fsnotify.Watcher
	onReload func(err error)
	wg       sync.WaitGroup
}

// Watch starts watching source. onReload runs on the watcher goroutine after
// every reload attempt with its result, and for watcher errors.
func Watch(source *FileSource, onReload func(err error)) (*Watcher, error) {
	if onReload == nil {
		onReload = func(error) {}
	}

	fw, err := createWatcher(filepath.Dir(source.Path()))
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		source:   source,
		watcher:  fw,
		onReload: onReload,
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// createWatcher watches the fixture's directory so that editors replacing
// the file by rename are still seen
func createWatcher(dir string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return watcher, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onReload(fmt.Errorf("watcher error: %w", err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.source.Path() {
		return
	}
	if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
		w.onReload(w.source.Reload())
	}
}
