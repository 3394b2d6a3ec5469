package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/loader"
	"github.com/five82/bookshelf/internal/state"
)

func TestList_PrintsSeedCatalog(t *testing.T) {
	ldr := loader.New(loader.SeedFetcher(), 5*time.Millisecond)
	defer ldr.Close()
	store := state.NewStore(state.WithEffects(ldr))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var out bytes.Buffer
	if err := List(ctx, store, &out); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"TITLE", "1984", "George Orwell", "Fahrenheit 451", "Ray Bradbury"} {
		if !strings.Contains(got, want) {
			t.Fatalf("List output missing %q:\n%s", want, got)
		}
	}
}

func TestList_ReportsLoadFailure(t *testing.T) {
	fetcher := loader.FetcherFunc(func(context.Context) ([]catalog.Book, error) {
		return nil, errors.New("no shelf")
	})
	ldr := loader.New(fetcher, 0)
	defer ldr.Close()
	store := state.NewStore(state.WithEffects(ldr))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := List(ctx, store, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "no shelf") {
		t.Fatalf("List error = %v, want it to mention no shelf", err)
	}
}

func TestList_HonoursContext(t *testing.T) {
	ldr := loader.New(loader.SeedFetcher(), time.Hour)
	defer ldr.Close()
	store := state.NewStore(state.WithEffects(ldr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := List(ctx, store, &bytes.Buffer{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("List error = %v, want context.Canceled", err)
	}
}
