package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/textterm/internal/design"
)

// action is a host command reachable from the menu bar or a shortcut.
type action int

const (
	actionNone action = iota
	actionClose
	actionCopy
	actionPaste
	actionPalette
	actionFont
	actionAbout
)

type menuItem struct {
	label    string
	shortcut string
	action   action
}

type menu struct {
	title string
	items []menuItem
}

func defaultMenus() []menu {
	return []menu{
		{title: "File", items: []menuItem{
			{label: "Close", shortcut: "ctrl+q", action: actionClose},
		}},
		{title: "Edit", items: []menuItem{
			{label: "Copy all", shortcut: "ctrl+y", action: actionCopy},
			{label: "Paste", shortcut: "ctrl+v", action: actionPaste},
		}},
		{title: "Format", items: []menuItem{
			{label: "Palette ...", shortcut: "ctrl+p", action: actionPalette},
			{label: "Font ...", shortcut: "ctrl+f", action: actionFont},
		}},
		{title: "Help", items: []menuItem{
			{label: "About", shortcut: "f1", action: actionAbout},
		}},
	}
}

// menuBar is the single-row menu at the top of the window. While open it
// captures all keys.
type menuBar struct {
	menus  []menu
	open   bool
	active int
	cursor int
}

func newMenuBar() menuBar {
	return menuBar{menus: defaultMenus()}
}

func (m *menuBar) openMenu(index int) {
	m.open = true
	m.active = index
	m.cursor = 0
}

func (m *menuBar) close() {
	m.open = false
	m.cursor = 0
}

var (
	menuLeft   = key.NewBinding(key.WithKeys("left"))
	menuRight  = key.NewBinding(key.WithKeys("right"))
	menuUp     = key.NewBinding(key.WithKeys("up"))
	menuDown   = key.NewBinding(key.WithKeys("down"))
	menuSelect = key.NewBinding(key.WithKeys("enter", " "))
	menuCancel = key.NewBinding(key.WithKeys("esc", "f10"))
)

// update handles a key while the menu is open and returns the chosen action.
func (m *menuBar) update(msg tea.KeyMsg) action {
	if !m.open {
		return actionNone
	}

	items := m.menus[m.active].items
	switch {
	case key.Matches(msg, menuCancel):
		m.close()
	case key.Matches(msg, menuLeft):
		m.openMenu((m.active + len(m.menus) - 1) % len(m.menus))
	case key.Matches(msg, menuRight):
		m.openMenu((m.active + 1) % len(m.menus))
	case key.Matches(msg, menuUp):
		m.cursor = (m.cursor + len(items) - 1) % len(items)
	case key.Matches(msg, menuDown):
		m.cursor = (m.cursor + 1) % len(items)
	case key.Matches(msg, menuSelect):
		a := items[m.cursor].action
		m.close()
		return a
	default:
		// Mnemonic: first letter of a menu title
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			for i, mn := range m.menus {
				if strings.EqualFold(mn.title[:1], string(msg.Runes[0])) {
					m.openMenu(i)
					break
				}
			}
		}
	}
	return actionNone
}

// titleOffset returns the column where the active menu's title starts.
func (m menuBar) titleOffset() int {
	x := 0
	for i := 0; i < m.active; i++ {
		x += lipgloss.Width(m.menus[i].title) + 2
	}
	return x
}

// view renders the bar row.
func (m menuBar) view(d design.Design, title string, width int) string {
	bar := d.MenuBar()
	selected := d.MenuSelected()

	var b strings.Builder
	for i, mn := range m.menus {
		label := " " + mn.title + " "
		if m.open && i == m.active {
			b.WriteString(selected.Render(label))
		} else {
			b.WriteString(bar.Render(label))
		}
	}

	row := b.String()
	if title != "" {
		gap := width - lipgloss.Width(row) - lipgloss.Width(title) - 1
		if gap > 0 {
			row += bar.Render(strings.Repeat(" ", gap) + title + " ")
		}
	}
	return bar.Width(width).Render(row)
}

// dropdown renders the items of the open menu.
func (m menuBar) dropdown(d design.Design) string {
	if !m.open {
		return ""
	}

	items := m.menus[m.active].items
	labelWidth, shortcutWidth := 0, 0
	for _, it := range items {
		labelWidth = max(labelWidth, lipgloss.Width(it.label))
		shortcutWidth = max(shortcutWidth, lipgloss.Width(it.shortcut))
	}

	rows := make([]string, len(items))
	for i, it := range items {
		line := " " + it.label + strings.Repeat(" ", labelWidth-lipgloss.Width(it.label)+2) +
			strings.Repeat(" ", shortcutWidth-lipgloss.Width(it.shortcut)) + it.shortcut + " "
		if i == m.cursor {
			rows[i] = d.MenuSelected().Render(line)
		} else {
			rows[i] = d.MenuBar().Render(line)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(d.TextColor).
		BorderBackground(design.Darker(d.BackColor, 2)).
		Render(strings.Join(rows, "\n"))
}
