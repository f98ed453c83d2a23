package catalogfile

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jaras-platform/jaras/internal/shared/logger"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher calls onChange after the catalog file is written, created or
// replaced. Bursts of events within the debounce window collapse into a
// single call.
type Watcher struct {
	path     string
	onChange func()
	debounce time.Duration
	logger   logger.Interface

	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	stopOnce sync.Once

	mu    sync.Mutex
	timer *time.Timer
}

func NewWatcher(path string, onChange func(), log logger.Interface) *Watcher {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Watcher{
		path:     filepath.Clean(abs),
		onChange: onChange,
		debounce: defaultDebounce,
		logger:   log.With("component", "catalogfile.watcher"),
		stopChan: make(chan struct{}),
	}
}

// Start watches the file's directory so editors that replace the file
// via rename are still seen.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return err
	}
	w.watcher = fw

	go w.handleEvents(fw.Events, fw.Errors)
	w.logger.Infow("watching catalog file for changes", "path", w.path)
	return nil
}

func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if w.watcher != nil {
			_ = w.watcher.Close()
		}
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
}

func (w *Watcher) handleEvents(events <-chan fsnotify.Event, errs <-chan error) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.logger.Debugw("catalog file changed", "event", event.Op.String())
				w.schedule()
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.logger.Errorw("catalog watcher error", "error", err)

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.stopChan:
			return
		default:
		}
		w.logger.Infow("catalog file changed, reloading", "path", w.path)
		w.onChange()
	})
}
