package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector_MemoizesOnStatePointer(t *testing.T) {
	sel := NewSelectors()
	s := sampleState()

	first := sel.Books.Select(s)
	second := sel.Books.Select(s)

	assert.True(t, SameBooks(first, second))
	assert.Equal(t, 1, sel.Books.Recomputations())
}

func TestSelector_RecomputesOnNewState(t *testing.T) {
	sel := NewSelectors()
	s := sampleState()
	_ = sel.Loading.Select(s)

	next := Reduce(s, LoadRequested{})
	assert.True(t, sel.Loading.Select(next))
	assert.Equal(t, 2, sel.Loading.Recomputations())
}

func TestSelector_NilStateYieldsZero(t *testing.T) {
	sel := NewSelectors()
	assert.Nil(t, sel.Books.Select(nil))
	assert.False(t, sel.IsEditing.Select(nil))
	assert.Nil(t, sel.SelectedBook.Select(nil))
	assert.Equal(t, 0, sel.Books.Recomputations())
}

func TestSelectors_ProjectEditState(t *testing.T) {
	sel := NewSelectors()
	book := Book{ID: IntID(2), Title: "B", Author: "y"}
	s := Reduce(sampleState(), StartEditRequested{Book: book})

	assert.True(t, sel.IsEditing.Select(s))
	if assert.NotNil(t, sel.SelectedBook.Select(s)) {
		assert.Equal(t, book, *sel.SelectedBook.Select(s))
	}
	assert.Same(t, sel.SelectedBook.Select(s), sel.SelectedBook.Select(s))
	assert.Equal(t, 2, sel.Count.Select(s))
}

func TestSameBooks(t *testing.T) {
	a := []Book{{ID: "1"}, {ID: "2"}}
	b := make([]Book, len(a))
	copy(b, a)

	assert.True(t, SameBooks(a, a))
	assert.True(t, SameBooks(nil, []Book{}))
	assert.False(t, SameBooks(a, b))
	assert.False(t, SameBooks(a, a[:1]))
}
