package loader

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/state"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// terminalCounter counts LoadSucceeded and LoadFailed actions that made it
// through the store's guard.
type terminalCounter struct {
	n atomic.Int32
}

func (c *terminalCounter) Handle(a catalog.Action, _ state.Dispatcher) {
	switch a.(type) {
	case catalog.LoadSucceeded, catalog.LoadFailed:
		c.n.Add(1)
	}
}

func newStore(t *testing.T, l *Loader) (*state.Store, *terminalCounter) {
	t.Helper()
	counter := &terminalCounter{}
	t.Cleanup(func() { _ = l.Close() })
	return state.NewStore(state.WithEffects(l, counter)), counter
}

func settled(s *state.Store) func() bool {
	return func() bool { return !s.State().Loading }
}

func TestLoader_EndToEndSeedLoad(t *testing.T) {
	s, counter := newStore(t, New(SeedFetcher(), 10*time.Millisecond))

	s.Dispatch(catalog.LoadRequested{})
	require.True(t, s.State().Loading)

	require.Eventually(t, settled(s), waitFor, tick)
	assert.Equal(t, []catalog.Book{
		{ID: "1", Title: "1984", Author: "George Orwell"},
		{ID: "2", Title: "Fahrenheit 451", Author: "Ray Bradbury"},
	}, s.State().Books)
	assert.Equal(t, int32(1), counter.n.Load())

	s.Dispatch(catalog.AddRequested{Book: catalog.Book{ID: catalog.IntID(42), Title: "Dune", Author: "Herbert"}})
	books := s.State().Books
	require.Len(t, books, 3)
	assert.Equal(t, catalog.Book{ID: "42", Title: "Dune", Author: "Herbert"}, books[2])
}

func TestLoader_FailureBecomesState(t *testing.T) {
	fetcher := FetcherFunc(func(context.Context) ([]catalog.Book, error) {
		return nil, errors.New("library closed")
	})
	s, counter := newStore(t, New(fetcher, 0))

	s.Dispatch(catalog.LoadRequested{})

	require.Eventually(t, settled(s), waitFor, tick)
	assert.Equal(t, "library closed", s.State().Error)
	assert.Equal(t, int32(1), counter.n.Load())
}

func TestLoader_PanicBecomesFailure(t *testing.T) {
	fetcher := FetcherFunc(func(context.Context) ([]catalog.Book, error) {
		panic("shelf collapsed")
	})
	s, _ := newStore(t, New(fetcher, 0))

	s.Dispatch(catalog.LoadRequested{})

	require.Eventually(t, settled(s), waitFor, tick)
	assert.Contains(t, s.State().Error, "shelf collapsed")
}

func TestLoader_LastRequestWins(t *testing.T) {
	release := []chan struct{}{make(chan struct{}), make(chan struct{})}
	var calls atomic.Int32
	fetcher := FetcherFunc(func(context.Context) ([]catalog.Book, error) {
		n := calls.Add(1) - 1
		<-release[n]
		return []catalog.Book{{ID: catalog.IntID(int(n)), Title: "gen", Author: "a"}}, nil
	})
	l := New(fetcher, 0)
	s, counter := newStore(t, l)

	s.Dispatch(catalog.LoadRequested{})
	require.Eventually(t, func() bool { return calls.Load() == 1 }, waitFor, tick)
	s.Dispatch(catalog.LoadRequested{})
	require.Eventually(t, func() bool { return calls.Load() == 2 }, waitFor, tick)

	close(release[1])
	require.Eventually(t, settled(s), waitFor, tick)
	require.Len(t, s.State().Books, 1)
	assert.Equal(t, catalog.ID("1"), s.State().Books[0].ID)

	// The superseded fetch finishes last and must not overwrite the result.
	close(release[0])
	require.NoError(t, l.Close())

	assert.Equal(t, catalog.ID("1"), s.State().Books[0].ID)
	assert.Equal(t, int32(1), counter.n.Load())
}

func TestLoader_SupersededWaitIsCancelled(t *testing.T) {
	var calls atomic.Int32
	fetcher := FetcherFunc(func(context.Context) ([]catalog.Book, error) {
		calls.Add(1)
		return Seed(), nil
	})
	s, counter := newStore(t, New(fetcher, 50*time.Millisecond))

	s.Dispatch(catalog.LoadRequested{})
	s.Dispatch(catalog.LoadRequested{})
	s.Dispatch(catalog.LoadRequested{})

	require.Eventually(t, settled(s), waitFor, tick)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), counter.n.Load())
}

func TestLoader_CloseDiscardsPendingLoad(t *testing.T) {
	l := New(SeedFetcher(), 50*time.Millisecond)
	s, counter := newStore(t, l)

	s.Dispatch(catalog.LoadRequested{})
	require.NoError(t, l.Close())

	assert.True(t, s.State().Loading)
	assert.Empty(t, s.State().Books)
	assert.Equal(t, int32(0), counter.n.Load())

	// Requests after Close are not accepted.
	s.Dispatch(catalog.LoadRequested{})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), counter.n.Load())
}

func TestLoader_IgnoresOtherActions(t *testing.T) {
	var calls atomic.Int32
	fetcher := FetcherFunc(func(context.Context) ([]catalog.Book, error) {
		calls.Add(1)
		return nil, nil
	})
	s, _ := newStore(t, New(fetcher, 0))

	s.Dispatch(catalog.AddRequested{Book: catalog.Book{ID: "1", Title: "A", Author: "x"}})
	s.Dispatch(catalog.FinishEditRequested{})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}
