package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookshelf/internal/catalog"
)

func newBookTable(theme Theme) table.Model {
	t := table.New(
		table.WithColumns(bookColumns(LayoutCompactWidth)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles(theme))
	return t
}

// bookColumns splits width between the ID, title and author columns.
func bookColumns(width int) []table.Column {
	idWidth := shortIDWidth
	if width >= LayoutWideWidth {
		idWidth = 36
	}
	// Each cell carries one column of padding on both sides.
	rest := width - idWidth - 6
	if rest < 20 {
		rest = 20
	}
	titleWidth := rest * 3 / 5
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Title", Width: titleWidth},
		{Title: "Author", Width: rest - titleWidth},
	}
}

func bookRows(books []catalog.Book, idWidth int) []table.Row {
	rows := make([]table.Row, 0, len(books))
	for _, b := range books {
		rows = append(rows, table.Row{truncate(b.ID.String(), idWidth), b.Title, b.Author})
	}
	return rows
}

func tableStyles(theme Theme) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)
	s.Cell = s.Cell.Foreground(lipgloss.Color(theme.Text))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(theme.SelectionText)).
		Background(lipgloss.Color(theme.SelectionBg)).
		Bold(false)
	return s
}

// setBooks replaces the table rows when books is a different list from the
// one already shown and keeps the cursor inside the new rows.
func (m *Model) setBooks(books []catalog.Book) {
	if m.booksShown && catalog.SameBooks(books, m.books) {
		return
	}
	m.books = books
	m.booksShown = true
	m.refreshRows()
}

func (m *Model) refreshRows() {
	cols := m.table.Columns()
	m.table.SetRows(bookRows(m.books, cols[0].Width))
	switch c := m.table.Cursor(); {
	case len(m.books) == 0:
	case c < 0:
		m.table.SetCursor(0)
	case c >= len(m.books):
		m.table.SetCursor(len(m.books) - 1)
	}
}

// selectedBook returns the book under the cursor.
func (m Model) selectedBook() (catalog.Book, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.books) {
		return catalog.Book{}, false
	}
	return m.books[c], true
}
