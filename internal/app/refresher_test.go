package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/state"
)

type countingDispatcher struct {
	loads atomic.Int32
}

func (c *countingDispatcher) Dispatch(a catalog.Action) {
	if _, ok := a.(catalog.LoadRequested); ok {
		c.loads.Add(1)
	}
}

func (c *countingDispatcher) DispatchIf(guard func() bool, a catalog.Action) {
	if guard() {
		c.Dispatch(a)
	}
}

var _ state.Dispatcher = (*countingDispatcher)(nil)

func TestStartRefresher_DispatchesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := &countingDispatcher{}

	StartRefresher(ctx, d, 5*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for d.loads.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("refresher dispatched %d loads, want >= 2", d.loads.Load())
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := d.loads.Load()
	time.Sleep(30 * time.Millisecond)
	if got := d.loads.Load(); got != stopped {
		t.Fatalf("refresher kept dispatching after cancel: %d -> %d", stopped, got)
	}
}

func TestStartRefresher_DisabledForZeroInterval(t *testing.T) {
	d := &countingDispatcher{}
	StartRefresher(context.Background(), d, 0)
	time.Sleep(20 * time.Millisecond)
	if got := d.loads.Load(); got != 0 {
		t.Fatalf("loads = %d, want 0", got)
	}
}
