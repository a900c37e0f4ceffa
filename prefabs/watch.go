package prefabs

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce drops repeated change notifications for the same file that
// arrive inside this window; editors often write a file several times.
const Debounce = 100 * time.Millisecond

type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	now     func() time.Time
}

// NewWatcher watches the given directories for tunable and script edits.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		now:     time.Now,
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	d := newDebouncer(Debounce, w.now)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(ev.Name) && !isScriptFile(ev.Name) {
				continue
			}
			if !d.allow(ev.Name) {
				continue
			}
			select {
			case w.Events <- ev.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Run forwards every change to onChange until ctx is done. Errors from the
// underlying watcher are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, logger *slog.Logger, onChange func(path string)) {
	if logger == nil {
		logger = slog.Default()
	}
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			logger.Info("prefabs: changed", "path", path)
			onChange(path)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("prefabs: watch error", "err", err)
		}
	}
}

type debouncer struct {
	window time.Duration
	now    func() time.Time
	last   map[string]time.Time
}

func newDebouncer(window time.Duration, now func() time.Time) *debouncer {
	return &debouncer{window: window, now: now, last: make(map[string]time.Time)}
}

func (d *debouncer) allow(name string) bool {
	now := d.now()
	if t, ok := d.last[name]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[name] = now
	return true
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

// IsCharacterFile reports whether a changed path affects the character spec.
func IsCharacterFile(path string) bool {
	base := filepath.Base(path)
	return base == CharacterFile || isScriptFile(path)
}
