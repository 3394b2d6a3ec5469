package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/state"
)

// stateMsg carries a published state into the event loop.
type stateMsg struct {
	state *catalog.State
}

// subscribe forwards store changes into a one-slot channel. Only the newest
// state matters to the view, so a pending older state is replaced rather
// than blocking the dispatching goroutine.
func subscribe(store *state.Store) (<-chan *catalog.State, func()) {
	ch := make(chan *catalog.State, 1)
	unsubscribe := store.Subscribe(func(s *catalog.State) {
		offerLatest(ch, s)
	})
	return ch, unsubscribe
}

// offerLatest puts s into ch, dropping whatever value is waiting there.
func offerLatest(ch chan *catalog.State, s *catalog.State) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// waitForState blocks until the next published state or until ctx ends.
func waitForState(ctx context.Context, ch <-chan *catalog.State) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-ch:
			return stateMsg{state: s}
		case <-ctx.Done():
			return nil
		}
	}
}

// dispatchCmd applies actions in order off the event loop.
func dispatchCmd(d state.Dispatcher, actions ...catalog.Action) tea.Cmd {
	return func() tea.Msg {
		for _, a := range actions {
			d.Dispatch(a)
		}
		return nil
	}
}
