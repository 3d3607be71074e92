package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/textterm/internal/design"
)

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestMenuSelectsAction(t *testing.T) {
	m := newMenuBar()
	if got := m.update(keyType(tea.KeyEnter)); got != actionNone {
		t.Fatalf("closed menu returned %v", got)
	}

	m.openMenu(0)
	m.update(keyType(tea.KeyRight)) // Edit
	m.update(keyType(tea.KeyDown))  // Paste
	if got := m.update(keyType(tea.KeyEnter)); got != actionPaste {
		t.Errorf("update() = %v, want actionPaste", got)
	}
	if m.open {
		t.Error("menu should close after selecting")
	}
}

func TestMenuWrapsAround(t *testing.T) {
	m := newMenuBar()
	m.openMenu(0)

	m.update(keyType(tea.KeyLeft))
	if m.active != len(m.menus)-1 {
		t.Errorf("active = %d, want last menu", m.active)
	}

	m.update(keyType(tea.KeyUp))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 in single-item Help menu", m.cursor)
	}
	if got := m.update(keyType(tea.KeyEnter)); got != actionAbout {
		t.Errorf("update() = %v, want actionAbout", got)
	}
}

func TestMenuMnemonicAndCancel(t *testing.T) {
	m := newMenuBar()
	m.openMenu(0)

	m.update(keyRunes("h"))
	if m.menus[m.active].title != "Help" {
		t.Errorf("mnemonic opened %q, want Help", m.menus[m.active].title)
	}
	m.update(keyRunes("e"))
	m.update(keyType(tea.KeyDown))
	if got := m.update(keyRunes(" ")); got != actionPaste {
		t.Errorf("update() = %v, want actionPaste", got)
	}

	m.openMenu(1)
	m.update(keyType(tea.KeyEsc))
	if m.open {
		t.Error("esc should close the menu")
	}
}

func TestMenuView(t *testing.T) {
	m := newMenuBar()
	d := design.Default()

	bar := ansi.Strip(m.view(d, "Demo", 40))
	if ansi.StringWidth(bar) != 40 {
		t.Errorf("bar width = %d, want 40", ansi.StringWidth(bar))
	}
	for _, title := range []string{"File", "Edit", "Format", "Help", "Demo"} {
		if !strings.Contains(bar, title) {
			t.Errorf("bar %q missing %q", bar, title)
		}
	}

	if m.dropdown(d) != "" {
		t.Error("closed menu should not render a dropdown")
	}
	m.openMenu(2)
	drop := ansi.Strip(m.dropdown(d))
	if !strings.Contains(drop, "Palette ...") || !strings.Contains(drop, "ctrl+f") {
		t.Errorf("dropdown = %q", drop)
	}
	if got := m.titleOffset(); got != len(" File  Edit ") {
		t.Errorf("titleOffset() = %d", got)
	}
}
