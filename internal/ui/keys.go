package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/textterm/internal/terminal"
)

// keyMap defines the host shortcuts. Every other key is routed to the
// terminal surface.
type keyMap struct {
	Menu    key.Binding
	Palette key.Binding
	Font    key.Binding
	Copy    key.Binding
	Paste   key.Binding
	About   key.Binding
	Close   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Palette, k.Font, k.Copy, k.Paste, k.About, k.Close}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Menu, k.About, k.Close},
		{k.Copy, k.Paste},
		{k.Palette, k.Font},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Menu: key.NewBinding(
			key.WithKeys("f10"),
			key.WithHelp("f10", "menu"),
		),
		Palette: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "palette"),
		),
		Font: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "font"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy all"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		About: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "about"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "close"),
		),
	}
}

// translateKey maps a Bubble Tea key press onto the terminal's key model.
// It reports false for keys the terminal surface does not understand.
func translateKey(msg tea.KeyMsg) (terminal.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return terminal.KeyEvent{}, false
		}
		return terminal.Rune(msg.Runes...), true
	case tea.KeySpace:
		return terminal.Rune(' '), true
	case tea.KeyEnter:
		return terminal.Key(terminal.KeyEnter), true
	case tea.KeyBackspace:
		return terminal.Key(terminal.KeyBackspace), true
	case tea.KeyDelete:
		return terminal.Key(terminal.KeyDelete), true
	case tea.KeyLeft:
		return terminal.Key(terminal.KeyLeft), true
	case tea.KeyRight:
		return terminal.Key(terminal.KeyRight), true
	case tea.KeyUp:
		return terminal.Key(terminal.KeyUp), true
	case tea.KeyDown:
		return terminal.Key(terminal.KeyDown), true
	case tea.KeyHome:
		return terminal.Key(terminal.KeyHome), true
	case tea.KeyEnd:
		return terminal.Key(terminal.KeyEnd), true
	case tea.KeyTab:
		return terminal.Key(terminal.KeyTab), true
	}
	return terminal.KeyEvent{}, false
}
