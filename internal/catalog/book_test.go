package catalog

import (
	"errors"
	"testing"
)

func TestBookValidate(t *testing.T) {
	tests := []struct {
		name string
		book Book
		want []error
	}{
		{"complete", Book{ID: "1", Title: "Dune", Author: "Herbert"}, nil},
		{"blank title", Book{ID: "1", Title: "  ", Author: "Herbert"}, []error{ErrMissingTitle}},
		{"blank author", Book{ID: "1", Title: "Dune"}, []error{ErrMissingAuthor}},
		{"empty", Book{}, []error{ErrMissingID, ErrMissingTitle, ErrMissingAuthor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.book.Validate()
			if len(tt.want) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Fatalf("Validate() = %v, want it to wrap %v", err, want)
				}
			}
		})
	}
}

func TestValidateList_RejectsDuplicateIDs(t *testing.T) {
	books := []Book{
		{ID: "1", Title: "A", Author: "x"},
		{ID: "1", Title: "B", Author: "y"},
	}
	err := ValidateList(books)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("ValidateList() = %v, want ErrDuplicateID", err)
	}
}

func TestIntID(t *testing.T) {
	if got := IntID(42); got != "42" {
		t.Fatalf("IntID(42) = %q, want %q", got, "42")
	}
}

func TestStateFind(t *testing.T) {
	s := sampleState()
	b, ok := s.Find(IntID(2))
	if !ok || b.Title != "B" {
		t.Fatalf("Find(2) = %#v, %v; want title B", b, ok)
	}
	if _, ok := s.Find("missing"); ok {
		t.Fatalf("Find(missing) ok = true, want false")
	}
	var nilState *State
	if _, ok := nilState.Find("1"); ok {
		t.Fatalf("nil Find ok = true, want false")
	}
}
