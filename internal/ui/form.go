package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/catalog"
)

type formMode int

const (
	formClosed formMode = iota
	formAdd
	formEdit
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldCount
)

// bookForm is the add/edit form. In edit mode id is the book being edited.
type bookForm struct {
	mode   formMode
	id     catalog.ID
	inputs [fieldCount]textinput.Model
	focus  int
}

func newBookForm(mode formMode, b catalog.Book) (bookForm, tea.Cmd) {
	f := bookForm{mode: mode, id: b.ID}

	title := textinput.New()
	title.Prompt = "Title:  "
	title.Placeholder = "Dune"
	title.CharLimit = 200
	title.SetValue(b.Title)

	author := textinput.New()
	author.Prompt = "Author: "
	author.Placeholder = "Frank Herbert"
	author.CharLimit = 200
	author.SetValue(b.Author)

	f.inputs[fieldTitle] = title
	f.inputs[fieldAuthor] = author
	cmd := f.setFocus(fieldTitle)
	return f, cmd
}

func (f bookForm) active() bool {
	return f.mode != formClosed
}

func (f *bookForm) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for n := range f.inputs {
		if n == f.focus {
			cmd = f.inputs[n].Focus()
			continue
		}
		f.inputs[n].Blur()
	}
	return cmd
}

func (f bookForm) update(msg tea.Msg) (bookForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// book builds the submitted book. Add mode takes a fresh ID from newID.
func (f bookForm) book(newID func() catalog.ID) (catalog.Book, error) {
	b := catalog.Book{
		ID:     f.id,
		Title:  strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Author: strings.TrimSpace(f.inputs[fieldAuthor].Value()),
	}
	if f.mode == formAdd {
		b.ID = newID()
	}
	if err := b.Validate(); err != nil {
		return catalog.Book{}, err
	}
	return b, nil
}

// action returns the action that saves b.
func (f bookForm) action(b catalog.Book) catalog.Action {
	if f.mode == formEdit {
		return catalog.EditRequested{Book: b}
	}
	return catalog.AddRequested{Book: b}
}

func (f bookForm) title() string {
	if f.mode == formEdit {
		return "Edit book " + truncate(f.id.String(), shortIDWidth)
	}
	return "Add book"
}
