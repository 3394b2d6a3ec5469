package catalog

// Reducer computes the next state from the current one and an action.
type Reducer func(s *State, a Action) *State

// Reduce is the catalog reducer. It never writes to s; recognised actions
// yield a new *State and unknown actions yield s itself. A nil s is treated as
// Initial().
func Reduce(s *State, a Action) *State {
	if s == nil {
		s = Initial()
	}

	switch a := a.(type) {
	case LoadRequested:
		next := *s
		next.Loading = true
		return &next

	case LoadSucceeded:
		next := *s
		next.Books = cloneBooks(a.Books)
		next.Loading = false
		next.Error = ""
		return &next

	case LoadFailed:
		next := *s
		next.Error = a.Error
		next.Loading = false
		return &next

	case AddRequested:
		next := *s
		books := make([]Book, len(s.Books), len(s.Books)+1)
		copy(books, s.Books)
		next.Books = append(books, a.Book)
		return &next

	case DeleteRequested:
		next := *s
		next.Books = filterBooks(s.Books, func(b Book) bool { return b.ID != a.ID })
		return &next

	case StartEditRequested:
		next := *s
		sel := a.Book
		next.SelectedBook = &sel
		next.IsEditing = true
		return &next

	case EditRequested:
		next := *s
		next.Books = replaceBook(s.Books, a.Book)
		next.SelectedBook = nil
		next.IsEditing = false
		return &next

	case FinishEditRequested:
		next := *s
		next.SelectedBook = nil
		next.IsEditing = false
		return &next
	}

	return s
}

// filterBooks keeps the books matching keep. When nothing is dropped the
// original slice is returned unchanged.
func filterBooks(books []Book, keep func(Book) bool) []Book {
	var out []Book
	for i, b := range books {
		if keep(b) {
			if out != nil {
				out = append(out, b)
			}
			continue
		}
		if out == nil {
			out = make([]Book, i, len(books))
			copy(out, books[:i])
		}
	}
	if out == nil {
		return books
	}
	return out
}

// replaceBook swaps in book over every entry sharing its ID. An unknown ID
// returns the original slice.
func replaceBook(books []Book, book Book) []Book {
	var out []Book
	for i, b := range books {
		if b.ID != book.ID {
			continue
		}
		if out == nil {
			out = cloneBooks(books)
		}
		out[i] = book
	}
	if out == nil {
		return books
	}
	return out
}
