package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// DefaultDebounceDelay is the quiet period after the last filesystem event
// before a sync is scheduled.
const DefaultDebounceDelay = 500 * time.Millisecond

// DefaultMinInterval is the minimum time between two consecutive syncs.
const DefaultMinInterval = 10 * time.Second

// Options configures a watch run
type Options struct {
	// Root is the worktree directory to observe
	Root string
	// Debounce is the quiet period after the last event (DefaultDebounceDelay if zero)
	Debounce time.Duration
	// MinInterval is the minimum spacing between syncs (DefaultMinInterval if zero)
	MinInterval time.Duration
	// Interval additionally syncs periodically when > 0, even without events
	Interval time.Duration
	// OnSync runs one sync. Errors are reported through OnError and do not stop the watch.
	OnSync func(ctx context.Context) error
	// OnError receives watcher and sync errors. May be nil.
	OnError func(err error)
}

// Run watches the worktree and invokes OnSync until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Root == "" {
		return fmt.Errorf("watch root not set")
	}
	if opts.OnSync == nil {
		return fmt.Errorf("watch callback not set")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounceDelay
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = DefaultMinInterval
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer watcher.Close()

	if err := addWorktreeDirs(watcher, opts.Root); err != nil {
		return err
	}

	kick := make(chan struct{}, 1)
	requestSync := func() {
		select {
		case kick <- struct{}{}:
		default:
		}
	}

	debouncer := NewDebouncer(opts.Debounce, requestSync)
	defer debouncer.Stop()

	limiter := rate.NewLimiter(rate.Every(opts.MinInterval), 1)

	var tick <-chan time.Time
	if opts.Interval > 0 {
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	reportErr := func(err error) {
		if opts.OnError != nil {
			opts.OnError(err)
		}
	}

	// Syncs run in their own goroutine so the event loop keeps draining
	// watcher.Events while a push is in flight. The buffered kick channel
	// collapses anything that arrives in the meantime into one more sync.
	var wg sync.WaitGroup
	defer wg.Wait()
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-kick:
				if err := limiter.Wait(ctx); err != nil {
					return
				}
				if err := opts.OnSync(ctx); err != nil {
					reportErr(err)
				}
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if shouldIgnorePath(opts.Root, ev.Name) {
				continue
			}
			// Newly created directories need their own watch
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addWorktreeDirs(watcher, ev.Name)
				}
			}
			debouncer.Trigger()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			reportErr(fmt.Errorf("watch error: %w", err))

		case <-tick:
			requestSync()
		}
	}
}

// addWorktreeDirs registers root and every directory under it, skipping .git.
func addWorktreeDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// shouldIgnorePath filters events from .git internals and editor lock files.
func shouldIgnorePath(root, name string) bool {
	rel, err := filepath.Rel(root, name)
	if err == nil {
		if rel == ".git" || strings.HasPrefix(rel, ".git"+string(filepath.Separator)) {
			return true
		}
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".lock" || ext == ".swp"
}
