package catalog

// Action is a named intent describing a requested state change. Concrete
// action types carry their payload as fields.
type Action interface {
	Type() string
}

// Action type strings.
const (
	TypeLoadRequested       = "[Books] Load Books"
	TypeLoadSucceeded       = "[Books] Load Books Success"
	TypeLoadFailed          = "[Books] Load Books Failure"
	TypeAddRequested        = "[Books] Add Book"
	TypeDeleteRequested     = "[Books] Delete Book"
	TypeStartEditRequested  = "[Books] Start Edit Book"
	TypeEditRequested       = "[Books] Edit Book"
	TypeFinishEditRequested = "[Books] Finish Edit Book"
)

// LoadRequested asks for the catalog to be (re)loaded.
type LoadRequested struct{}

// LoadSucceeded carries the books produced by a load.
type LoadSucceeded struct {
	Books []Book
}

// LoadFailed carries the reason a load did not complete.
type LoadFailed struct {
	Error string
}

// AddRequested appends Book. The ID must already be assigned and unique.
type AddRequested struct {
	Book Book
}

// DeleteRequested removes the book with ID.
type DeleteRequested struct {
	ID ID
}

// StartEditRequested puts Book into edit mode.
type StartEditRequested struct {
	Book Book
}

// EditRequested commits Book over the entry sharing its ID.
type EditRequested struct {
	Book Book
}

// FinishEditRequested leaves edit mode without committing.
type FinishEditRequested struct{}

func (LoadRequested) Type() string       { return TypeLoadRequested }
func (LoadSucceeded) Type() string       { return TypeLoadSucceeded }
func (LoadFailed) Type() string          { return TypeLoadFailed }
func (AddRequested) Type() string        { return TypeAddRequested }
func (DeleteRequested) Type() string     { return TypeDeleteRequested }
func (StartEditRequested) Type() string  { return TypeStartEditRequested }
func (EditRequested) Type() string       { return TypeEditRequested }
func (FinishEditRequested) Type() string { return TypeFinishEditRequested }
