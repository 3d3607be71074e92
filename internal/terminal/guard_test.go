package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/textterm/internal/logging"
)

func TestBackspaceAtReadStartIsSwallowed(t *testing.T) {
	term := newTestTerminal()
	term.WriteString("Value: ")

	ch := startRead(t, term, term.ReadLine)
	before := term.Text()

	handled := term.HandleKey(Key(KeyBackspace))

	assert.True(t, handled, "event is consumed")
	assert.Equal(t, before, term.Text(), "readout must not be erased")
	assert.Equal(t, len([]rune(before)), term.Caret())

	typeLine(term, "1")
	assert.Equal(t, "1", await(t, ch).value)
}

func TestBackspaceWithinInput(t *testing.T) {
	term := newTestTerminal()
	term.WriteString("> ")

	ch := startRead(t, term, term.ReadLine)
	term.HandleKey(Rune('a'))
	term.HandleKey(Rune('b'))
	term.HandleKey(Key(KeyBackspace))
	term.HandleKey(Key(KeyBackspace))
	term.HandleKey(Key(KeyBackspace)) // at read start: swallowed
	typeLine(term, "c")

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "c", r.value)
	assert.Equal(t, "> c\n", term.Text())
}

func TestEditAfterMovingBackIsAppended(t *testing.T) {
	term := newTestTerminal()
	term.WriteString("> ")

	ch := startRead(t, term, term.ReadLine)
	term.HandleKey(Rune('a'))
	term.HandleKey(Rune('b'))
	term.HandleKey(Key(KeyLeft))
	term.HandleKey(Key(KeyLeft))
	term.HandleKey(Key(KeyLeft))
	require.Equal(t, 1, term.Caret(), "navigation itself is allowed")

	term.HandleKey(Rune('c'))
	assert.Equal(t, "> abc", term.Text())

	term.HandleKey(Key(KeyHome))
	term.HandleKey(Key(KeyBackspace)) // caret before read start: swallowed
	assert.Equal(t, "> abc", term.Text())

	term.HandleKey(Key(KeyLeft))
	term.HandleKey(Key(KeyEnter))

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "abc", r.value)
	assert.Equal(t, "> abc\n", term.Text())
}

func TestBackspaceAfterMovingBackDeletesFromEnd(t *testing.T) {
	term := newTestTerminal()

	ch := startRead(t, term, term.ReadLine)
	term.HandleKey(Rune('x', 'y', 'z'))
	term.HandleKey(Key(KeyLeft))
	term.HandleKey(Key(KeyLeft))
	term.HandleKey(Key(KeyBackspace))
	assert.Equal(t, "xy", term.Text())

	term.HandleKey(Key(KeyEnter))
	assert.Equal(t, "xy", await(t, ch).value)
}

func TestDeleteCannotReachReadout(t *testing.T) {
	term := newTestTerminal()
	term.WriteString("abc")

	ch := startRead(t, term, term.ReadLine)
	term.HandleKey(Key(KeyHome))
	term.HandleKey(Key(KeyDelete))
	assert.Equal(t, "abc", term.Text())

	term.HandleKey(Key(KeyEnter))
	assert.Equal(t, "", await(t, ch).value)
}

func TestKeysOutsideReadEditFreely(t *testing.T) {
	term := newTestTerminal()
	term.WriteString("abc")

	term.HandleKey(Key(KeyHome))
	term.HandleKey(Key(KeyDelete))
	term.HandleKey(Key(KeyEnd))
	term.HandleKey(Key(KeyBackspace))
	term.HandleKey(Key(KeyEnter))
	term.HandleKey(Key(KeyTab))

	assert.Equal(t, "b\n\t", term.Text())
	assert.False(t, term.Reading())
}

func TestTypedTextUsesCurrentFormat(t *testing.T) {
	term := newTestTerminal()
	term.SetCurrentState(StateSuccess, false)

	ch := startRead(t, term, term.ReadLine)
	typeLine(term, "ok")
	await(t, ch)

	assert.Equal(t, []Segment{{Text: "ok\n", Format: Format{State: StateSuccess}}}, term.Segments())
}

func TestPasteDuringReadDropsLineBreaks(t *testing.T) {
	term := newTestTerminal()

	ch := startRead(t, term, term.ReadLine)
	assert.True(t, term.Paste("12\n34"))
	assert.True(t, term.Reading(), "paste must not terminate the read")
	assert.False(t, term.Paste("\n"))

	term.HandleKey(Key(KeyEnter))
	assert.Equal(t, "1234", await(t, ch).value)
}

func TestPasteOutsideRead(t *testing.T) {
	term := newTestTerminal()
	assert.False(t, term.Paste(""))
	assert.True(t, term.Paste("a\nb"))
	assert.Equal(t, "a\nb", term.Text())
}

func TestUnknownAndEmptyKeys(t *testing.T) {
	term := newTestTerminal()
	assert.False(t, term.HandleKey(KeyEvent{Type: KeyType(100)}))
	assert.False(t, term.HandleKey(KeyEvent{Type: KeyRunes}))
}

func TestKeysWhileReadingOnDefaultLogger(t *testing.T) {
	logging.SetLogger(nil)
	term := newTestTerminal()

	ch := startRead(t, term, term.ReadLine)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			term.HandleKey(Key(KeyBackspace))
		}
	}()
	<-done
	typeLine(term, "ok")

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "ok", r.value)
}
