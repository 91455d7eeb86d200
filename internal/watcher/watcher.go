package watcher

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"reel/internal/scanner"
)

const defaultDebounce = 2 * time.Second

// Watcher monitors the scan roots for video file changes and invokes a
// callback after a quiet period, so a burst of writes triggers one rescan
// rather than dozens.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()
	debounce time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// New creates a watcher that calls onChange after storage activity settles.
func New(onChange func(), logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		fsw:      fsw,
		onChange: onChange,
		debounce: defaultDebounce,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start watches the given roots and begins dispatching. Roots that cannot
// be watched are skipped; watching is best-effort like the scan itself.
func (w *Watcher) Start(roots []string) {
	for _, root := range roots {
		if err := w.fsw.Add(root); err != nil {
			w.logger.Debug("cannot watch root", "path", root, "error", err)
		}
	}
	go w.loop()
	w.logger.Info("file watcher started", "roots", len(roots))
}

// Close stops watching. Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	// Ignore temporary and hidden files.
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".tmp") {
		return
	}

	// Directory create/remove also matters: a new folder may bring videos.
	relevant := scanner.IsVideoFile(name) ||
		event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
	if !relevant {
		return
	}

	w.logger.Debug("storage change", "path", event.Name, "op", event.Op.String())

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}
