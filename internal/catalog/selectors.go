package catalog

import "sync"

// Selector memoizes a projection of State on the input pointer. Calling
// Select twice with the same *State returns the cached value without running
// the projection again, so slices and pointers it returns are identical.
type Selector[T any] struct {
	project func(*State) T

	mu       sync.Mutex
	last     *State
	value    T
	computed int
}

// NewSelector wraps project in a memoizing Selector.
func NewSelector[T any](project func(*State) T) *Selector[T] {
	return &Selector[T]{project: project}
}

// Select returns the projection of s. A nil state yields the zero value.
func (sel *Selector[T]) Select(s *State) T {
	if s == nil {
		var zero T
		return zero
	}

	sel.mu.Lock()
	defer sel.mu.Unlock()

	if sel.last == s {
		return sel.value
	}
	sel.value = sel.project(s)
	sel.last = s
	sel.computed++
	return sel.value
}

// Recomputations returns how many times the projection has run.
func (sel *Selector[T]) Recomputations() int {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	return sel.computed
}

// Selectors is the set of views the presentation layer reads. Each instance
// keeps its own memo, so independent consumers do not evict each other.
type Selectors struct {
	Books        *Selector[[]Book]
	Loading      *Selector[bool]
	Error        *Selector[string]
	SelectedBook *Selector[*Book]
	IsEditing    *Selector[bool]
	Count        *Selector[int]
}

// NewSelectors builds a fresh selector set.
func NewSelectors() *Selectors {
	return &Selectors{
		Books:        NewSelector(func(s *State) []Book { return s.Books }),
		Loading:      NewSelector(func(s *State) bool { return s.Loading }),
		Error:        NewSelector(func(s *State) string { return s.Error }),
		SelectedBook: NewSelector(func(s *State) *Book { return s.SelectedBook }),
		IsEditing:    NewSelector(func(s *State) bool { return s.IsEditing }),
		Count:        NewSelector(func(s *State) int { return len(s.Books) }),
	}
}

// SameBooks reports whether a and b are the same list: equal length and the
// same backing array. Reduce preserves the slice when books are untouched.
func SameBooks(a, b []Book) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
