package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"autosync.dev/autosync/internal/watch"
)

func TestRunSyncsOnChange(t *testing.T) {
	dir := t.TempDir()

	var syncs atomic.Int32
	synced := make(chan struct{}, 8)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watch.Run(ctx, watch.Options{
			Root:        dir,
			Debounce:    20 * time.Millisecond,
			MinInterval: 10 * time.Millisecond,
			OnSync: func(context.Context) error {
				syncs.Add(1)
				synced <- struct{}{}
				return nil
			},
		})
	}()

	// Give the watcher a moment to register
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0600))

	select {
	case <-synced:
	case <-ctx.Done():
		t.Fatal("no sync after file change")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	require.GreaterOrEqual(t, syncs.Load(), int32(1))
}

func TestRunKeepsWatchingDuringSync(t *testing.T) {
	dir := t.TempDir()

	release := make(chan struct{})
	synced := make(chan struct{}, 8)
	var calls atomic.Int32

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watch.Run(ctx, watch.Options{
			Root:        dir,
			Debounce:    20 * time.Millisecond,
			MinInterval: time.Millisecond,
			OnSync: func(context.Context) error {
				n := calls.Add(1)
				synced <- struct{}{}
				if n == 1 {
					// Simulate a slow push
					<-release
				}
				return nil
			},
		})
	}()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one"), 0600))
	select {
	case <-synced:
	case <-ctx.Done():
		t.Fatal("no sync after first change")
	}

	// While the first sync is still running, the event loop must keep
	// consuming events and schedule a follow-up sync
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("two"), 0600))
	time.Sleep(100 * time.Millisecond)
	close(release)

	select {
	case <-synced:
	case <-ctx.Done():
		t.Fatal("no sync for the change made during a running sync")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestRunIgnoresGitDirEvents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0750))

	synced := make(chan struct{}, 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watch.Run(ctx, watch.Options{
			Root:        dir,
			Debounce:    20 * time.Millisecond,
			MinInterval: 10 * time.Millisecond,
			OnSync: func(context.Context) error {
				synced <- struct{}{}
				return nil
			},
		})
	}()

	time.Sleep(100 * time.Millisecond)

	// Writes under .git must not schedule a sync
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "index.lock"), []byte("x"), 0600))

	select {
	case <-synced:
		t.Fatal("sync triggered by .git event")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestRunPeriodicInterval(t *testing.T) {
	dir := t.TempDir()

	synced := make(chan struct{}, 8)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watch.Run(ctx, watch.Options{
			Root:        dir,
			Debounce:    20 * time.Millisecond,
			MinInterval: 10 * time.Millisecond,
			Interval:    50 * time.Millisecond,
			OnSync: func(context.Context) error {
				synced <- struct{}{}
				return nil
			},
		})
	}()

	// No file changes at all: the ticker alone must drive a sync
	select {
	case <-synced:
	case <-ctx.Done():
		t.Fatal("no periodic sync")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
