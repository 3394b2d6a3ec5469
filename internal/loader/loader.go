// Package loader implements the asynchronous catalog load as a store effect.
package loader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/state"
)

// DefaultDelay is the simulated latency before a load completes.
const DefaultDelay = time.Second

// Loader answers catalog.LoadRequested with exactly one LoadSucceeded or
// LoadFailed after a delay. A newer request supersedes any load still in
// flight: the older wait is cancelled and its result, if it still arrives, is
// dropped by the store.
type Loader struct {
	fetcher Fetcher
	delay   time.Duration

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	closed     bool
	wg         sync.WaitGroup
}

// Ensure Loader implements state.Effect at compile time.
var _ state.Effect = (*Loader)(nil)

// New builds a Loader. A nil fetcher serves the built-in seed; a negative
// delay is treated as zero.
func New(fetcher Fetcher, delay time.Duration) *Loader {
	if fetcher == nil {
		fetcher = SeedFetcher()
	}
	if delay < 0 {
		delay = 0
	}
	return &Loader{fetcher: fetcher, delay: delay}
}

// Handle implements state.Effect.
func (l *Loader) Handle(a catalog.Action, d state.Dispatcher) {
	if _, ok := a.(catalog.LoadRequested); !ok {
		return
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go l.run(ctx, gen, d)
}

// Close cancels any pending load and waits for its goroutine to exit.
// Results that arrive afterwards are discarded.
func (l *Loader) Close() error {
	l.mu.Lock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()

	l.wg.Wait()
	return nil
}

func (l *Loader) run(ctx context.Context, gen uint64, d state.Dispatcher) {
	defer l.wg.Done()

	if l.delay > 0 {
		timer := time.NewTimer(l.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}

	books, err := l.fetch(ctx)
	if err != nil && ctx.Err() != nil {
		return
	}

	var result catalog.Action = catalog.LoadSucceeded{Books: books}
	if err != nil {
		result = catalog.LoadFailed{Error: err.Error()}
	}
	d.DispatchIf(func() bool { return l.isCurrent(gen) }, result)
}

func (l *Loader) fetch(ctx context.Context) (books []catalog.Book, err error) {
	defer func() {
		if r := recover(); r != nil {
			books = nil
			err = fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return l.fetcher.Fetch(ctx)
}

func (l *Loader) isCurrent(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.closed && l.generation == gen
}
