package catalog

// State is the catalog as seen by the presentation layer. Values reachable
// from a published *State must not be modified.
type State struct {
	Books        []Book
	Loading      bool
	Error        string // last load failure, cleared by the next success
	SelectedBook *Book  // book being edited, nil outside edit mode
	IsEditing    bool
}

// Initial returns the empty catalog state.
func Initial() *State {
	return &State{}
}

// HasError reports whether the last load failed.
func (s *State) HasError() bool {
	return s != nil && s.Error != ""
}

// Clone returns a deep copy that shares nothing with s.
func (s *State) Clone() *State {
	if s == nil {
		return Initial()
	}
	dup := *s
	dup.Books = cloneBooks(s.Books)
	if s.SelectedBook != nil {
		sel := *s.SelectedBook
		dup.SelectedBook = &sel
	}
	return &dup
}

// Find returns the book with id.
func (s *State) Find(id ID) (Book, bool) {
	if s == nil {
		return Book{}, false
	}
	for _, b := range s.Books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}
