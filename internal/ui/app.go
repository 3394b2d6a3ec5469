package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/prefs"
	"github.com/five82/bookshelf/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBooks View = iota
	ViewActivity
)

// Options configures the UI.
type Options struct {
	Context       context.Context
	Store         *state.Store
	ThemeName     string
	ConfirmDelete bool
	PrefsPath     string
	LogFile       string
	AutoLoad      bool              // dispatch a load when the program starts
	NewID         func() catalog.ID // ID source for added books; nil uses random UUIDs
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	store         *state.Store
	selectors     *catalog.Selectors
	prefsPath     string
	logFile       string
	autoLoad      bool
	confirmDelete bool
	newID         func() catalog.ID

	// Store subscription
	updates     <-chan *catalog.State
	unsubscribe func()

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	current    *catalog.State
	books      []catalog.Book
	booksShown bool

	// Books view
	table         table.Model
	form          bookForm
	pendingDelete *catalog.Book
	notice        string

	// Activity view
	activity    viewport.Model
	activityErr error
}

// New creates a new Bubble Tea model subscribed to opts.Store.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = state.NewStore()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	newID := opts.NewID
	if newID == nil {
		newID = func() catalog.ID { return catalog.ID(uuid.NewString()) }
	}

	theme := GetTheme(themeName)
	updates, unsubscribe := subscribe(store)

	m := Model{
		ctx:           ctx,
		store:         store,
		selectors:     catalog.NewSelectors(),
		prefsPath:     prefsPath,
		logFile:       opts.LogFile,
		autoLoad:      opts.AutoLoad,
		confirmDelete: opts.ConfirmDelete,
		newID:         newID,
		updates:       updates,
		unsubscribe:   unsubscribe,
		theme:         theme,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		currentView:   ViewBooks,
		table:         newBookTable(theme),
		activity:      viewport.New(LayoutCompactWidth, 10),
	}
	m.applyTheme()
	m.applyState(store.State())
	return m
}

// Close detaches the model from its store.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		waitForState(m.ctx, m.updates),
	}
	if m.autoLoad {
		cmds = append(cmds, dispatchCmd(m.store, catalog.LoadRequested{}))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case stateMsg:
		m.applyState(msg.state)
		cmds := []tea.Cmd{waitForState(m.ctx, m.updates)}
		if cmd := m.syncForm(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.currentView == ViewActivity {
			cmds = append(cmds, readActivityCmd(m.logFile))
		}
		return m, tea.Batch(cmds...)

	case activityMsg:
		m.setActivity(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.form.active() {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// applyState records s and refreshes the table when the book list changed.
func (m *Model) applyState(s *catalog.State) {
	if s == nil {
		return
	}
	m.current = s
	m.setBooks(m.selectors.Books.Select(s))
}

// syncForm opens or closes the edit form to follow the store's edit mode.
func (m *Model) syncForm() tea.Cmd {
	editing := m.selectors.IsEditing.Select(m.current)
	selected := m.selectors.SelectedBook.Select(m.current)

	switch {
	case editing && selected != nil:
		if m.form.mode == formEdit && m.form.id == selected.ID {
			return nil
		}
		var cmd tea.Cmd
		m.form, cmd = newBookForm(formEdit, *selected)
		m.notice = ""
		return tea.Batch(cmd, textinput.Blink)
	case m.form.mode == formEdit:
		m.form = bookForm{}
	}
	return nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.form.active() {
		return m.handleFormKey(msg)
	}

	if m.pendingDelete != nil {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		if m.currentView == ViewActivity {
			m.currentView = ViewBooks
			return m, nil
		}
		m.currentView = ViewActivity
		return m, readActivityCmd(m.logFile)

	case key.Matches(msg, m.keys.Load):
		m.notice = ""
		return m, dispatchCmd(m.store, catalog.LoadRequested{})

	case key.Matches(msg, m.keys.Escape):
		m.notice = ""
		if m.currentView == ViewActivity {
			m.currentView = ViewBooks
			return m, nil
		}
		if m.selectors.IsEditing.Select(m.current) {
			return m, dispatchCmd(m.store, catalog.FinishEditRequested{})
		}
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewActivity:
		var cmd tea.Cmd
		m.activity, cmd = m.activity.Update(msg)
		return m, cmd
	default:
		return m.handleBooksKey(msg)
	}
}

// handleBooksKey processes keyboard input for the books view.
func (m Model) handleBooksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.notice = ""
		var cmd tea.Cmd
		m.form, cmd = newBookForm(formAdd, catalog.Book{})
		return m, tea.Batch(cmd, textinput.Blink)

	case key.Matches(msg, m.keys.Edit):
		b, ok := m.selectedBook()
		if !ok {
			return m, nil
		}
		m.notice = ""
		return m, dispatchCmd(m.store, catalog.StartEditRequested{Book: b})

	case key.Matches(msg, m.keys.Delete):
		b, ok := m.selectedBook()
		if !ok {
			return m, nil
		}
		if m.confirmDelete {
			m.pendingDelete = &b
			m.notice = ""
			return m, nil
		}
		return m, dispatchCmd(m.store, catalog.DeleteRequested{ID: b.ID})
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleFormKey processes keyboard input while the add/edit form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		mode := m.form.mode
		m.form = bookForm{}
		m.notice = ""
		if mode == formEdit {
			return m, dispatchCmd(m.store, catalog.FinishEditRequested{})
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		b, err := m.form.book(m.newID)
		if err != nil {
			m.notice = formatValidation(err)
			return m, nil
		}
		action := m.form.action(b)
		m.form = bookForm{}
		m.notice = ""
		return m, dispatchCmd(m.store, action)

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.setFocus(m.form.focus + 1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.setFocus(m.form.focus - 1)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// handleConfirmKey resolves a pending delete prompt.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := *m.pendingDelete
	m.pendingDelete = nil
	if key.Matches(msg, m.keys.Confirm) {
		return m, dispatchCmd(m.store, catalog.DeleteRequested{ID: b.ID})
	}
	m.notice = "Delete cancelled"
	return m, nil
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, ConfirmDelete: m.confirmDelete}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.notice = "Save prefs: " + err.Error()
	}
}

func (m *Model) applyTheme() {
	m.table.SetStyles(tableStyles(m.theme))
	m.help.Styles = helpStyles(m.theme)
	m.spinner.Style = m.theme.Styles().AccentText
}

// resize fits the table and activity viewport to the terminal.
func (m *Model) resize() {
	bodyHeight := max(m.height-chromeHeight, 3)

	m.table.SetColumns(bookColumns(m.width))
	m.table.SetWidth(m.width)
	m.table.SetHeight(bodyHeight)
	m.refreshRows()

	m.activity.Width = m.width
	m.activity.Height = bodyHeight
	m.help.Width = m.width
}

// formatValidation flattens a joined validation error onto one line.
func formatValidation(err error) string {
	var parts []string
	for _, e := range unwrapAll(err) {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	opts.Context = ctx

	m := New(opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && parent.Err() != nil {
		return nil
	}
	return err
}
