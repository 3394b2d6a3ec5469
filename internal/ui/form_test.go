package ui

import (
	"errors"
	"testing"

	"github.com/five82/bookshelf/internal/catalog"
)

func TestBookFormActions(t *testing.T) {
	newID := func() catalog.ID { return "fresh" }

	add, _ := newBookForm(formAdd, catalog.Book{})
	add.inputs[fieldTitle].SetValue("  Dune ")
	add.inputs[fieldAuthor].SetValue("Frank Herbert")

	b, err := add.book(newID)
	if err != nil {
		t.Fatalf("add book: %v", err)
	}
	if b != (catalog.Book{ID: "fresh", Title: "Dune", Author: "Frank Herbert"}) {
		t.Fatalf("add book = %+v", b)
	}
	if _, ok := add.action(b).(catalog.AddRequested); !ok {
		t.Fatalf("add form action = %T, want AddRequested", add.action(b))
	}

	edit, _ := newBookForm(formEdit, catalog.Book{ID: "7", Title: "Emma", Author: "Jane Austen"})
	b, err = edit.book(newID)
	if err != nil {
		t.Fatalf("edit book: %v", err)
	}
	if b.ID != "7" {
		t.Fatalf("edit kept id %q, want 7", b.ID)
	}
	if a, ok := edit.action(b).(catalog.EditRequested); !ok || a.Book != b {
		t.Fatalf("edit form action = %#v", edit.action(b))
	}
}

func TestBookFormValidation(t *testing.T) {
	f, _ := newBookForm(formAdd, catalog.Book{})
	f.inputs[fieldTitle].SetValue("Dune")

	_, err := f.book(func() catalog.ID { return "x" })
	if !errors.Is(err, catalog.ErrMissingAuthor) {
		t.Fatalf("err = %v, want ErrMissingAuthor", err)
	}
	if errors.Is(err, catalog.ErrMissingTitle) {
		t.Fatalf("title was present, got %v", err)
	}
	if got := formatValidation(err); got != catalog.ErrMissingAuthor.Error() {
		t.Fatalf("formatValidation = %q", got)
	}
}

func TestBookFormFocusWraps(t *testing.T) {
	f, _ := newBookForm(formAdd, catalog.Book{})
	if f.focus != fieldTitle || !f.inputs[fieldTitle].Focused() {
		t.Fatalf("title should start focused")
	}
	f.setFocus(f.focus + 1)
	if f.focus != fieldAuthor || f.inputs[fieldTitle].Focused() {
		t.Fatalf("tab should move to author")
	}
	f.setFocus(f.focus + 1)
	if f.focus != fieldTitle {
		t.Fatalf("focus should wrap to title, got %d", f.focus)
	}
	f.setFocus(f.focus - 1)
	if f.focus != fieldAuthor {
		t.Fatalf("shift+tab should wrap to author, got %d", f.focus)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Dune", 10, "Dune"},
		{"Fahrenheit 451", 8, "Fahre..."},
		{"abcd", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}
