package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by Book.Validate.
var (
	// ErrMissingTitle is returned when a book has a blank title.
	ErrMissingTitle = errors.New("title is required")

	// ErrMissingAuthor is returned when a book has a blank author.
	ErrMissingAuthor = errors.New("author is required")

	// ErrMissingID is returned when a book has no identifier.
	ErrMissingID = errors.New("id is required")

	// ErrDuplicateID is returned when a list holds two books with one ID.
	ErrDuplicateID = errors.New("duplicate book id")
)

// ID identifies a book within the catalog. Numeric identifiers are stored as
// their decimal text.
type ID string

// IntID converts a numeric identifier.
func IntID(n int) ID {
	return ID(strconv.Itoa(n))
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// Book is a single catalog entry.
type Book struct {
	ID     ID     `toml:"id"`
	Title  string `toml:"title"`
	Author string `toml:"author"`
}

// Validate reports blank fields. The reducer does not call it; input checks
// belong to whoever builds the book.
func (b Book) Validate() error {
	var errs []error
	if strings.TrimSpace(string(b.ID)) == "" {
		errs = append(errs, ErrMissingID)
	}
	if strings.TrimSpace(b.Title) == "" {
		errs = append(errs, ErrMissingTitle)
	}
	if strings.TrimSpace(b.Author) == "" {
		errs = append(errs, ErrMissingAuthor)
	}
	return errors.Join(errs...)
}

// ValidateList checks every book and rejects repeated IDs.
func ValidateList(books []Book) error {
	seen := make(map[ID]struct{}, len(books))
	for i, b := range books {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("book %d: %w", i, err)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("book %d: %w %q", i, ErrDuplicateID, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

func cloneBooks(books []Book) []Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]Book, len(books))
	copy(dup, books)
	return dup
}
