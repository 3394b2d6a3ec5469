package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/state"
)

// List dispatches a load, waits for it to settle and writes the catalog to w
// as a table.
func List(ctx context.Context, store *state.Store, w io.Writer) error {
	settled := make(chan struct{}, 1)
	sel := catalog.NewSelectors()

	store.Dispatch(catalog.LoadRequested{})
	unsubscribe := state.Watch(store, sel.Loading, state.Equal[bool], func(loading bool) {
		if loading {
			return
		}
		select {
		case settled <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-settled:
	}

	current := store.State()
	if current.HasError() {
		return fmt.Errorf("load catalog: %s", sel.Error.Select(current))
	}

	_, err := fmt.Fprintln(w, renderTable(sel.Books.Select(current)))
	return err
}

func renderTable(books []catalog.Book) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "AUTHOR")
	for _, b := range books {
		t.Row(b.ID.String(), b.Title, b.Author)
	}
	return t.Render()
}
