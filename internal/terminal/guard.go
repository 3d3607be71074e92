package terminal

import (
	"go.uber.org/zap"

	"github.com/muurk/textterm/internal/logging"
)

// KeyType identifies a key delivered to the terminal surface.
type KeyType int

const (
	KeyRunes KeyType = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
)

// KeyEvent is a key press destined for the terminal surface. Runes is only
// meaningful for KeyRunes.
type KeyEvent struct {
	Type  KeyType
	Runes []rune
}

// Rune is a convenience constructor for printable input.
func Rune(r ...rune) KeyEvent {
	return KeyEvent{Type: KeyRunes, Runes: r}
}

// Key is a convenience constructor for non-printable keys.
func Key(k KeyType) KeyEvent {
	return KeyEvent{Type: k}
}

// navigates reports whether k only moves the caret.
func (k KeyType) navigates() bool {
	switch k {
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd:
		return true
	}
	return false
}

// KeySurface is implemented by anything that accepts key events for an
// editable text surface. The UI routes keys to the terminal through it.
type KeySurface interface {
	HandleKey(ev KeyEvent) bool
}

var _ KeySurface = (*Terminal)(nil)

// HandleKey applies ev to the buffer and reports whether it was handled.
//
// While a read is outstanding the input region is append-only:
//   - backspace at or before the read start is swallowed;
//   - an edit after the caret was moved backwards is redirected to the end
//     of the buffer first;
//   - return terminates the read.
//
// Outside a read, keys edit the buffer freely.
func (t *Terminal) HandleKey(ev KeyEvent) bool {
	t.mu.Lock()
	handled, finished := t.handleKeyLocked(ev)
	t.mu.Unlock()

	if finished {
		logging.Debug("Return latched", zap.Int("caret", t.Caret()))
	}
	if handled {
		t.notify()
	}
	return handled
}

// Paste feeds text to the surface as if typed. While a read is active, line
// breaks are dropped so a paste cannot terminate the read by itself.
func (t *Terminal) Paste(text string) bool {
	if text == "" {
		return false
	}
	t.mu.Lock()
	runes := []rune(text)
	if t.reading() {
		kept := runes[:0]
		for _, r := range runes {
			if r != '\n' && r != '\r' {
				kept = append(kept, r)
			}
		}
		runes = kept
	}
	handled := false
	if len(runes) > 0 {
		handled, _ = t.handleKeyLocked(KeyEvent{Type: KeyRunes, Runes: runes})
	}
	t.mu.Unlock()

	if handled {
		t.notify()
	}
	return handled
}

func (t *Terminal) handleKeyLocked(ev KeyEvent) (handled, finished bool) {
	s := t.session
	if s == nil || s.returnPressed {
		return t.edit(ev), false
	}

	if ev.Type == KeyBackspace && t.buf.caret <= s.initial {
		return true, false
	}

	if !ev.Type.navigates() && t.buf.caret < s.caret {
		t.buf.moveEnd()
	}

	handled = t.edit(ev)

	if ev.Type == KeyEnter {
		t.finishRead()
		return true, true
	}
	if !ev.Type.navigates() {
		s.caret = t.buf.caret
	}
	return handled, false
}

// edit is the plain text-surface behaviour for ev.
func (t *Terminal) edit(ev KeyEvent) bool {
	switch ev.Type {
	case KeyRunes:
		if len(ev.Runes) == 0 {
			return false
		}
		t.buf.insert(ev.Runes, t.format)
	case KeyEnter:
		t.buf.insert([]rune{'\n'}, t.format)
	case KeyTab:
		t.buf.insert([]rune{'\t'}, t.format)
	case KeyBackspace:
		return t.buf.backspace()
	case KeyDelete:
		return t.buf.deleteForward()
	case KeyLeft:
		t.buf.moveLeft()
	case KeyRight:
		t.buf.moveRight()
	case KeyUp:
		t.buf.moveUp()
	case KeyDown:
		t.buf.moveDown()
	case KeyHome:
		t.buf.moveLineStart()
	case KeyEnd:
		t.buf.moveLineEnd()
	default:
		return false
	}
	return true
}
