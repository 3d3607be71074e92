package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineReturnsTypedText(t *testing.T) {
	term := newTestTerminal()
	term.WriteString("Name: ")

	ch := startRead(t, term, term.ReadLine)
	typeLine(term, "Ada")

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "Ada", r.value)
	assert.Equal(t, "Name: Ada\n", term.Text())
	assert.False(t, term.Reading())
}

func TestReadLineImmediateReturn(t *testing.T) {
	term := newTestTerminal()
	term.WriteString("> ")

	ch := startRead(t, term, term.ReadLine)
	term.HandleKey(Key(KeyEnter))

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "", r.value)
	assert.Equal(t, StateSuccess, term.Flag(), "plain reads leave the flag alone")
}

func TestReadStringTruncates(t *testing.T) {
	term := newTestTerminal()

	ch := startRead(t, term, func(ctx context.Context) (string, error) {
		return term.ReadString(ctx, 3)
	})
	typeLine(term, "héllo")

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "hél", r.value)
}

func TestReadChar(t *testing.T) {
	term := newTestTerminal()

	ch := startRead(t, term, term.ReadChar)
	typeLine(term, "yes")

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, 'y', r.value)
}

func TestReadCharEmpty(t *testing.T) {
	term := newTestTerminal()

	ch := startRead(t, term, term.ReadChar)
	term.HandleKey(Key(KeyEnter))

	r := await(t, ch)
	assert.ErrorIs(t, r.err, ErrInputEmpty)
}

func TestConcurrentReadRejected(t *testing.T) {
	term := newTestTerminal()

	ch := startRead(t, term, term.ReadLine)

	_, err := term.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrReadInProgress)

	typeLine(term, "first")
	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "first", r.value)
}

func TestReadCancelledByContext(t *testing.T) {
	term := newTestTerminal()
	ctx, cancel := context.WithCancel(context.Background())

	ch := startReadCtx(t, term, ctx, term.ReadLine)
	cancel()

	r := await(t, ch)
	assert.ErrorIs(t, r.err, context.Canceled)
	assert.False(t, term.Reading())

	// The session guard is released, so a new read can start.
	ch = startRead(t, term, term.ReadLine)
	typeLine(term, "again")
	assert.Equal(t, "again", await(t, ch).value)
}

func TestReadReleasedByClose(t *testing.T) {
	term := newTestTerminal()

	ch := startRead(t, term, term.ReadLine)
	term.Close()

	r := await(t, ch)
	assert.ErrorIs(t, r.err, ErrClosed)

	_, err := term.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrClosed)

	select {
	case <-term.Done():
	case <-time.After(time.Second):
		t.Fatal("Done() not closed")
	}
}

func TestClearThenReadLine(t *testing.T) {
	term := newTestTerminal()
	term.WriteLine("old output")
	term.Clear()

	ch := startRead(t, term, term.ReadLine)
	typeLine(term, "fresh")

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "fresh", r.value)
	assert.Equal(t, "fresh\n", term.Text())
}

func TestClearDuringRead(t *testing.T) {
	term := newTestTerminal()
	term.WriteString("prompt> ")

	ch := startRead(t, term, term.ReadLine)
	typeLine(term, "")
	require.Equal(t, "", await(t, ch).value)

	ch = startRead(t, term, term.ReadLine)
	term.HandleKey(Rune('a'))
	term.Clear()
	typeLine(term, "bc")

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, "bc", r.value)
}

func TestSnapshotReportsReading(t *testing.T) {
	term := newTestTerminal()
	assert.False(t, term.Snapshot().Reading)

	ch := startRead(t, term, term.ReadLine)
	assert.True(t, term.Snapshot().Reading)

	typeLine(term, "")
	await(t, ch)
	assert.False(t, term.Snapshot().Reading)
}
