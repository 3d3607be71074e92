package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/textterm/internal/terminal"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   terminal.KeyEvent
		wantOK bool
	}{
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, terminal.Rune('a', 'b'), true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, terminal.Rune(' '), true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, terminal.Key(terminal.KeyEnter), true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, terminal.Key(terminal.KeyBackspace), true},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, terminal.Key(terminal.KeyDelete), true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, terminal.Key(terminal.KeyLeft), true},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, terminal.Key(terminal.KeyHome), true},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, terminal.Key(terminal.KeyTab), true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, terminal.KeyEvent{}, false},
		{"function key", tea.KeyMsg{Type: tea.KeyF5}, terminal.KeyEvent{}, false},
		{"ctrl key", tea.KeyMsg{Type: tea.KeyCtrlA}, terminal.KeyEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("translateKey() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Type != tt.want.Type || string(got.Runes) != string(tt.want.Runes) {
				t.Errorf("translateKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := newKeyMap()
	if len(k.ShortHelp()) != 7 {
		t.Errorf("ShortHelp() has %d bindings, want 7", len(k.ShortHelp()))
	}
	n := 0
	for _, col := range k.FullHelp() {
		n += len(col)
	}
	if n != 7 {
		t.Errorf("FullHelp() has %d bindings, want 7", n)
	}
}
