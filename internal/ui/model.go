package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/muurk/textterm/internal/design"
	"github.com/muurk/textterm/internal/logging"
	"github.com/muurk/textterm/internal/terminal"
)

// Messages from the terminal and the caller goroutine
type changedMsg struct{}
type closedMsg struct{}
type appDoneMsg struct {
	err error
}

var (
	scrollUp   = key.NewBinding(key.WithKeys("pgup"))
	scrollDown = key.NewBinding(key.WithKeys("pgdown"))
)

// Options configures the host window.
type Options struct {
	Title     string
	AltScreen bool

	// OnDesign is called after the user accepts a new design in the palette
	// or font editor, e.g. to persist it.
	OnDesign func(design.Design) error
}

// Model hosts a terminal: menu bar, display surface, footer and the modal
// editors.
type Model struct {
	term *terminal.Terminal
	opts Options

	keys     keyMap
	help     help.Model
	menu     menuBar
	viewport viewport.Model
	palette  *PaletteEditor
	font     *FontEditor
	about    aboutBox

	snapshot terminal.Snapshot
	status   string
	width    int
	height   int
	quitting bool
	appErr   error
}

// NewModel creates the host model for term.
func NewModel(term *terminal.Terminal, opts Options) Model {
	return Model{
		term:     term,
		opts:     opts,
		keys:     newKeyMap(),
		help:     help.New(),
		menu:     newMenuBar(),
		viewport: viewport.New(0, 0),
		palette:  NewPaletteEditor(),
		font:     NewFontEditor(),
		snapshot: term.Snapshot(),
	}
}

// AppErr returns the error the caller function finished with, if any.
func (m Model) AppErr() error {
	return m.appErr
}

// waitForChange blocks until the terminal reports a change or closes.
func waitForChange(term *terminal.Terminal) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-term.Changes():
			return changedMsg{}
		case <-term.Done():
			return closedMsg{}
		}
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForChange(m.term)}
	if m.opts.Title != "" {
		cmds = append(cmds, tea.SetWindowTitle(m.opts.Title))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refresh()
		return m, nil

	case changedMsg:
		m.refresh()
		return m, waitForChange(m.term)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit

	case appDoneMsg:
		m.appErr = msg.err
		m.quitting = true
		m.term.Close()
		return m, tea.Quit

	case designAcceptedMsg:
		m.applyDesign(msg.design)
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case pasteMsg:
		m.term.Paste(string(msg))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and similar messages for the dialogs
	var cmd tea.Cmd
	switch {
	case m.palette.Visible():
		_, cmd = m.palette.Update(msg)
	case m.font.Visible():
		_, cmd = m.font.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always closes, even with a dialog open
	if msg.Type == tea.KeyCtrlC {
		return m.perform(actionClose)
	}

	switch {
	case m.palette.Visible():
		_, cmd := m.palette.Update(msg)
		return m, cmd
	case m.font.Visible():
		_, cmd := m.font.Update(msg)
		return m, cmd
	case m.about.visible:
		m.about.visible = false
		return m, nil
	case m.menu.open:
		return m.perform(m.menu.update(msg))
	}

	switch {
	case key.Matches(msg, m.keys.Menu):
		m.menu.openMenu(0)
		return m, nil
	case key.Matches(msg, m.keys.Close):
		return m.perform(actionClose)
	case key.Matches(msg, m.keys.Palette):
		return m.perform(actionPalette)
	case key.Matches(msg, m.keys.Font):
		return m.perform(actionFont)
	case key.Matches(msg, m.keys.Copy):
		return m.perform(actionCopy)
	case key.Matches(msg, m.keys.Paste):
		return m.perform(actionPaste)
	case key.Matches(msg, m.keys.About):
		return m.perform(actionAbout)
	case key.Matches(msg, scrollUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil
	case key.Matches(msg, scrollDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil
	}

	if msg.Paste {
		m.term.Paste(string(msg.Runes))
		return m, nil
	}
	if ev, ok := translateKey(msg); ok {
		m.status = ""
		m.term.HandleKey(ev)
	}
	return m, nil
}

// perform runs a menu or shortcut action.
func (m Model) perform(a action) (tea.Model, tea.Cmd) {
	switch a {
	case actionClose:
		logging.Info("Close requested", zap.Bool("reading", m.term.Reading()))
		m.quitting = true
		m.term.Close()
		return m, tea.Quit
	case actionCopy:
		return m, copyCmd(m.term.Text())
	case actionPaste:
		return m, pasteCmd()
	case actionPalette:
		m.palette.Show(m.term.Design())
	case actionFont:
		return m, m.font.Show(m.term.Design())
	case actionAbout:
		m.about.visible = true
	}
	return m, nil
}

// applyDesign replaces the terminal design wholesale and hands it to the
// OnDesign hook.
func (m *Model) applyDesign(d design.Design) {
	m.term.SetDesign(d)
	if m.opts.OnDesign == nil {
		return
	}
	if err := m.opts.OnDesign(d); err != nil {
		logging.Error("Failed to persist design", zap.Error(err))
		m.status = fmt.Sprintf("Design not saved: %v", err)
		return
	}
	m.status = "Design saved"
}

func (m *Model) layout() {
	m.viewport.Width = max(m.width, 1)
	m.viewport.Height = max(m.height-2, 1) // menu bar and footer
	m.help.Width = m.width
}

// refresh re-renders the display from a fresh snapshot and keeps the caret
// row in view.
func (m *Model) refresh() {
	m.snapshot = m.term.Snapshot()
	if m.width == 0 {
		return
	}

	content, caretLine := renderSurface(m.snapshot, m.viewport.Width)
	if n := m.viewport.Height - lipgloss.Height(content); n > 0 {
		content = strings.Join(append([]string{content}, blankRows(m.snapshot, m.viewport.Width, n)...), "\n")
	}
	m.viewport.SetContent(content)

	switch {
	case caretLine < m.viewport.YOffset:
		m.viewport.SetYOffset(caretLine)
	case caretLine >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(caretLine - m.viewport.Height + 1)
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}
	d := m.snapshot.Design

	body := m.viewport.View()
	if m.menu.open {
		body = overlay(body, m.menu.dropdown(d), m.menu.titleOffset(), 0)
	}
	for _, box := range []string{m.palette.View(d), m.font.View(d), m.about.view(d, m.keys)} {
		if box != "" {
			x, y := center(box, m.width, m.viewport.Height)
			body = overlay(body, box, x, y)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.menu.view(d, m.opts.Title, m.width),
		body,
		m.footer(),
	)
}

func (m Model) footer() string {
	d := m.snapshot.Design
	bar := d.MenuBar()

	indicator := bar.Render(" idle ")
	if m.snapshot.Reading {
		indicator = bar.Foreground(d.HighlightColor).Bold(true).Render(" ● input ")
	}
	flag := bar.Foreground(m.snapshot.Flag.Color(d)).Render(m.snapshot.Flag.String())

	left := indicator + bar.Render(" ") + flag
	if m.status != "" {
		left += bar.Render("  " + m.status)
	}

	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	row := left
	if gap > 0 {
		row += bar.Render(strings.Repeat(" ", gap)) + right
	}
	return bar.Width(m.width).Render(ansi.Truncate(row, m.width, ""))
}
