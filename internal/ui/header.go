package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())
	b.WriteString("\n")

	// Prompt line: notices, validation errors, delete confirmation
	b.WriteString(m.renderPrompt())
	b.WriteString("\n")

	// Footer: key hints
	b.WriteString(m.renderCommandBar())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewActivity:
		return m.renderActivity()
	default:
		return m.renderBooks()
	}
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sel := m.selectors

	var parts []string

	// Logo
	parts = append(parts, bg.Render("bookshelf", styles.Logo))

	// Book count
	parts = append(parts,
		bg.Render("Books:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", sel.Count.Select(m.current)), styles.Text),
	)

	// Load status
	if sel.Loading.Select(m.current) {
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+
				bg.Render("Loading...", styles.WarningText.Bold(true)))
	}

	// Edit mode
	if sel.IsEditing.Select(m.current) {
		label := "EDIT"
		if b := sel.SelectedBook.Select(m.current); b != nil && !compact {
			label += " " + truncate(b.Title, 30)
		}
		parts = append(parts, styles.Badge(m.theme.Info).Render(label))
	}

	// Load error
	if errText := sel.Error.Select(m.current); errText != "" {
		maxErr := 60
		if compact {
			maxErr = 24
		}
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(errText, maxErr), styles.DangerText))
	}

	// Current view
	if m.currentView == ViewActivity {
		parts = append(parts, bg.Render("Activity", styles.AccentText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderBooks renders the book table and, when open, the form below it.
func (m Model) renderBooks() string {
	t := m.table
	if !m.form.active() {
		if len(m.books) == 0 {
			return m.emptyBooks(t.Height())
		}
		return t.View()
	}

	t.SetHeight(max(t.Height()-formHeight, 3))
	return lipgloss.JoinVertical(lipgloss.Left, t.View(), m.renderForm())
}

func (m Model) emptyBooks(height int) string {
	styles := m.theme.Styles()
	msg := "No books. Press r to load or a to add."
	if m.selectors.Loading.Select(m.current) {
		msg = "Loading books..."
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		Render(styles.FaintText.Render(msg))
}

// renderForm renders the add/edit form box.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(m.form.title()))
	b.WriteString("\n")
	for i := range m.form.inputs {
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("enter save • tab next field • esc cancel"))

	return styles.BorderFocus.
		Width(max(m.width-2, 20)).
		Padding(0, 1).
		Render(b.String())
}

// renderActivity renders the activity log viewport.
func (m Model) renderActivity() string {
	if m.activityErr != nil {
		styles := m.theme.Styles()
		return styles.DangerText.Render("Activity log unavailable: " + m.activityErr.Error())
	}
	return m.activity.View()
}

// renderPrompt renders the single status line above the footer.
func (m Model) renderPrompt() string {
	styles := m.theme.Styles()
	switch {
	case m.pendingDelete != nil:
		return styles.WarningText.Bold(true).Render(
			fmt.Sprintf("Delete %q by %s? (y/n)", truncate(m.pendingDelete.Title, 40), m.pendingDelete.Author))
	case m.notice != "":
		return styles.DangerText.Render(m.notice)
	default:
		return ""
	}
}

// renderCommandBar renders the key hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	theme := bg.Render("T", styles.AccentText) + bg.Sep(":") + bg.Render(m.theme.Name, styles.FaintText)

	return styles.Footer.Width(m.width).Render(hints + bg.Spaces(2) + theme)
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
