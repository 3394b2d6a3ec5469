package app

import (
	"context"
	"time"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/state"
)

// StartRefresher launches a background goroutine that dispatches a catalog
// load at a fixed cadence. A non-positive interval disables it. It returns
// immediately.
func StartRefresher(ctx context.Context, d state.Dispatcher, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.Dispatch(catalog.LoadRequested{})
			}
		}
	}()
}
