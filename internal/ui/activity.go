package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/logtail"
)

// activityMsg carries the tail of the activity log.
type activityMsg struct {
	entries []logtail.Entry
	err     error
}

func readActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		entries, err := logtail.ReadEntries(path, ActivityLimit)
		return activityMsg{entries: entries, err: err}
	}
}

// setActivity renders entries into the viewport, staying pinned to the
// bottom when the user has not scrolled away from it.
func (m *Model) setActivity(msg activityMsg) {
	m.activityErr = msg.err
	follow := m.activity.AtBottom() || m.activity.TotalLineCount() == 0
	m.activity.SetContent(m.renderActivityLines(msg.entries))
	if follow {
		m.activity.GotoBottom()
	}
}

func (m Model) renderActivityLines(entries []logtail.Entry) string {
	styles := m.theme.Styles()
	if len(entries) == 0 {
		return styles.FaintText.Render("No activity yet")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		if !e.Time.IsZero() {
			b.WriteString(styles.MutedText.Render(e.Time.Format("15:04:05")))
			b.WriteString("  ")
		}
		b.WriteString(activityStyle(styles, e.Message).Render(e.Message))
	}
	return b.String()
}

// activityStyle colors a log line by the action it records.
func activityStyle(styles Styles, msg string) lipgloss.Style {
	switch {
	case strings.Contains(msg, catalog.TypeLoadFailed):
		return styles.DangerText
	case strings.Contains(msg, catalog.TypeLoadSucceeded):
		return styles.SuccessText
	case strings.Contains(msg, catalog.TypeDeleteRequested):
		return styles.WarningText
	case strings.HasPrefix(msg, "[Books]"):
		return styles.Text
	default:
		return styles.MutedText
	}
}
