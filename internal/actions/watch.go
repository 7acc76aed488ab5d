package actions

import (
	"context"
	"time"

	"autosync.dev/autosync/internal/runtime"
	"autosync.dev/autosync/internal/watch"
)

// WatchOptions contains options for the watch action
type WatchOptions struct {
	Sync SyncOptions
	// Interval additionally syncs periodically when > 0
	Interval time.Duration
	// MinInterval is the minimum spacing between syncs
	MinInterval time.Duration
}

// WatchAction runs sync whenever the working tree changes, until the context
// is cancelled.
func WatchAction(runCtx context.Context, opts WatchOptions, rt *runtime.Context) error {
	splog := rt.Splog
	splog.Info("watching %s, press Ctrl-C to stop", rt.RepoRoot)

	err := watch.Run(runCtx, watch.Options{
		Root:        rt.RepoRoot,
		MinInterval: opts.MinInterval,
		Interval:    opts.Interval,
		OnSync: func(ctx context.Context) error {
			splog.Debug("change detected, syncing")
			// Watch mode keeps going after a failed sync
			if err := SyncAction(ctx, opts.Sync, rt); err != nil {
				splog.Warn("sync failed: %v", err)
			}
			return nil
		},
		OnError: func(err error) {
			splog.Warn("%v", err)
		},
	})
	if err == context.Canceled {
		return nil
	}
	return err
}
