package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/shield-chat/internal/adapter"
)

type snapshotWatcher struct {
	storeAdapter adapter.StoreAdapter
	onSnapshot   SnapshotHandler
	onError      ErrorHandler

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSnapshotWatcher creates a snapshotWatcher that polls the room listing
// on a ticker and hands every result to the given handlers. The watcher is
// idle until Start is called.
func NewSnapshotWatcher(storeAdapter adapter.StoreAdapter, onSnapshot SnapshotHandler, onError ErrorHandler) SnapshotWatcher {
	return &snapshotWatcher{
		storeAdapter: storeAdapter,
		onSnapshot:   onSnapshot,
		onError:      onError,
	}
}

// Start implements SnapshotWatcher. It stops any previously running watch,
// then launches a background goroutine that lists the room immediately and
// on every tick after that. If interval is zero or negative it defaults to
// 2 seconds. The goroutine exits when ctx is cancelled or Stop is called.
func (w *snapshotWatcher) Start(ctx context.Context, room string, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Second
	}

	w.Stop()

	w.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		// first snapshot without waiting for a tick
		w.poll(watchCtx, room)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				w.poll(watchCtx, room)
			}
		}
	}()
}

// Stop implements SnapshotWatcher. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the watcher is not running (no-op in that case).
func (w *snapshotWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// poll lists the room once and delivers the full snapshot or the failure.
// Nothing is delivered after the watch context is cancelled.
func (w *snapshotWatcher) poll(ctx context.Context, room string) {
	messages, err := w.storeAdapter.ListMessages(ctx, room)

	select {
	case <-ctx.Done():
		return
	default:
	}

	if err != nil {
		if w.onError != nil {
			w.onError(room, err)
		}
		return
	}

	if w.onSnapshot != nil {
		w.onSnapshot(room, messages)
	}
}
