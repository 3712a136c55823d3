package attackdata

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before it is reparsed.
// Editors often save in several writes.
const debounce = 100 * time.Millisecond

// Watcher reports attack catalogue files that changed on disk. Changed
// delivers parsed catalogues, Errors delivers watch and parse failures.
type Watcher struct {
	fs      *fsnotify.Watcher
	path    string
	Changed chan *Catalog
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts watching the directory containing path and reparses path
// whenever it is written, created or renamed into place.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fw,
		path:    filepath.Clean(path),
		Changed: make(chan *Catalog, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		w.wg.Wait()
		close(w.Changed)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	var quiet <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(ev.Name) != w.path || !isYAML(ev.Name) {
				continue
			}
			// Every event pushes the reparse back.
			quiet = time.After(debounce)
		case <-quiet:
			quiet = nil
			cat, err := LoadFile(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(cat, nil)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) send(cat *Catalog, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Changed <- cat:
	case <-w.closeCh:
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
