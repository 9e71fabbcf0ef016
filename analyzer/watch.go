package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback polling cadence when fsnotify is unavailable.
const pollInterval = 2 * time.Second

// Event is one watch-mode analysis run.
type Event struct {
	Result *Result
	Err    error
}

// Watch analyzes path immediately, then re-analyzes it whenever the file
// changes, sending each run on the returned channel. The channel is closed
// when ctx is cancelled.
//
// Uses fsnotify for efficient file watching with polling fallback.
func (a *Analyzer) Watch(ctx context.Context, path string) <-chan Event {
	ch := make(chan Event, 1)

	go func() {
		defer close(ch)

		a.run(ctx, ch, path)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			a.watchPolling(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory (more reliable than watching file directly)
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			a.watchPolling(ctx, ch, path)
			return
		}
		a.watchNotify(ctx, ch, watcher, path)
	}()

	return ch
}

// watchNotify re-runs analysis on fsnotify write/create events for path.
func (a *Analyzer) watchNotify(ctx context.Context, ch chan<- Event, watcher *fsnotify.Watcher, path string) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != baseName {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			a.run(ctx, ch, path)
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// watchPolling re-runs analysis when the file's modification time changes.
func (a *Analyzer) watchPolling(ctx context.Context, ch chan<- Event, path string) {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			a.run(ctx, ch, path)
		}
	}
}

// run performs one analysis and delivers it unless ctx is done.
func (a *Analyzer) run(ctx context.Context, ch chan<- Event, path string) {
	res, err := a.AnalyzeFile(path)
	select {
	case ch <- Event{Result: res, Err: err}:
	case <-ctx.Done():
	}
}
