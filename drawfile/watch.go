package drawfile

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/gldraw"
)

// Watcher reports changes to a set of files. It watches their directories
// so that editors replacing a file by rename are noticed too.
type Watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]bool
	changes chan string
}

// Watch starts watching files. Typical use passes Pass.Files.
func Watch(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("drawfile: watch: %w", err)
	}
	w := &Watcher{
		fs:      fw,
		files:   make(map[string]bool, len(files)),
		changes: make(chan string, 1),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("drawfile: watch: %w", err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("drawfile: watch %s: %w", dir, err)
		}
	}
	go w.run()
	return w, nil
}

// Changes delivers the path of a changed file. Bursts are coalesced: while
// a change is pending further ones are dropped. The channel is closed by
// Close.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Close stops watching.
func (w *Watcher) Close() error { return w.fs.Close() }

func (w *Watcher) run() {
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			gldraw.Logger().Debug("drawfile: file changed", "file", name, "op", event.Op.String())
			select {
			case w.changes <- name:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			gldraw.Logger().Warn("drawfile: watch error", "err", err)
		}
	}
}
