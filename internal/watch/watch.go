// Package watch reports changes to the data file made by other processes
// (another terminal running todolist, an editor, a sync client).
package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 200 * time.Millisecond

var ErrFileRemoved = errors.New("watched file was removed")

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

func WithOnChange(fn func()) Option {
	return func(w *Watcher) { w.onChange = fn }
}

func WithOnError(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// Watcher watches the directory holding the file, which also catches
// saves done by writing a temp file and renaming it into place.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	onError  func(error)

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	cancel  context.CancelFunc
	pending *time.Timer
	written *stamp // file state after this process's last save
}

// stamp identifies one version of the file on disk.
type stamp struct {
	size    int64
	modTime time.Time
}

func (s stamp) equal(o stamp) bool { return s.size == o.size && s.modTime.Equal(o.modTime) }

func statStamp(path string) (stamp, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return stamp{}, false
	}
	return stamp{size: fi.Size(), modTime: fi.ModTime()}, true
}

func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		onChange: func() {},
		onError:  func(error) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *Watcher) Path() string { return w.path }

// MarkWritten records the file as this process just saved it. Change
// events that leave the file in that state are not reported.
func (w *Watcher) MarkWritten() {
	st, ok := statStamp(w.path)
	w.mu.Lock()
	defer w.mu.Unlock()
	if ok {
		w.written = &st
	} else {
		w.written = nil
	}
}

// Start begins watching until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.fsw, w.cancel = fsw, cancel
	w.mu.Unlock()
	go w.loop(ctx, fsw)
	return nil
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.fsw != nil {
		w.fsw.Close()
		w.fsw = nil
	}
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	target := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			switch {
			case ev.Op.Has(fsnotify.Remove):
				w.onError(ErrFileRemoved)
			case ev.Op.Has(fsnotify.Write), ev.Op.Has(fsnotify.Create), ev.Op.Has(fsnotify.Rename):
				w.trigger()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// trigger collapses a burst of events into one callback.
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	written := w.written
	w.mu.Unlock()
	if written != nil {
		if cur, ok := statStamp(w.path); ok && cur.equal(*written) {
			return
		}
	}
	w.onChange()
}
