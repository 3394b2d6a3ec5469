package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/bookshelf/internal/catalog"
)

// Fetcher produces the books for a load.
type Fetcher interface {
	Fetch(ctx context.Context) ([]catalog.Book, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]catalog.Book, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) ([]catalog.Book, error) {
	return f(ctx)
}

// Seed returns the built-in catalog.
func Seed() []catalog.Book {
	return []catalog.Book{
		{ID: "1", Title: "1984", Author: "George Orwell"},
		{ID: "2", Title: "Fahrenheit 451", Author: "Ray Bradbury"},
	}
}

// SeedFetcher returns a Fetcher serving Seed().
func SeedFetcher() Fetcher {
	return FetcherFunc(func(ctx context.Context) ([]catalog.Book, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Seed(), nil
	})
}

// seedFile is the on-disk layout:
//
//	[[book]]
//	id = "1"
//	title = "1984"
//	author = "George Orwell"
type seedFile struct {
	Books []catalog.Book `toml:"book"`
}

// FileFetcher returns a Fetcher that reads a TOML seed file on every load.
// Missing files, parse errors, blank fields and repeated IDs are reported as
// errors.
func FileFetcher(path string) Fetcher {
	return FetcherFunc(func(ctx context.Context) ([]catalog.Book, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return readSeedFile(path)
	})
}

func readSeedFile(path string) ([]catalog.Book, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("seed file %s not found", path)
		}
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var raw seedFile
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := catalog.ValidateList(raw.Books); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return raw.Books, nil
}
