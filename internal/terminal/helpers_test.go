package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/muurk/textterm/internal/design"
)

type readResult[T any] struct {
	value T
	err   error
}

// startRead runs fn on its own goroutine and waits until the terminal is
// accepting input.
func startRead[T any](t *testing.T, term *Terminal, fn func(context.Context) (T, error)) <-chan readResult[T] {
	t.Helper()
	return startReadCtx(t, term, context.Background(), fn)
}

func startReadCtx[T any](t *testing.T, term *Terminal, ctx context.Context, fn func(context.Context) (T, error)) <-chan readResult[T] {
	t.Helper()
	out := make(chan readResult[T], 1)
	go func() {
		v, err := fn(ctx)
		out <- readResult[T]{value: v, err: err}
	}()
	waitReading(t, term)
	return out
}

func waitReading(t *testing.T, term *Terminal) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !term.Reading() {
		if time.Now().After(deadline) {
			t.Fatal("read never became active")
		}
		time.Sleep(time.Millisecond)
	}
}

func await[T any](t *testing.T, ch <-chan readResult[T]) readResult[T] {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("read did not return")
	}
	return readResult[T]{}
}

// typeLine types s followed by return.
func typeLine(term *Terminal, s string) {
	for _, r := range s {
		term.HandleKey(Rune(r))
	}
	term.HandleKey(Key(KeyEnter))
}

func newTestTerminal() *Terminal {
	return New(design.Default())
}
