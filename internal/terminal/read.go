package terminal

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/textterm/internal/logging"
)

// session tracks one outstanding read.
type session struct {
	initial       int // caret offset when the read began
	caret         int // last caret offset observed after an editing key
	returnPressed bool
	span          string // captured when return is latched
	done          chan struct{}
	started       time.Time
}

func (t *Terminal) reading() bool {
	return t.session != nil && !t.session.returnPressed
}

// readRaw blocks until the user presses return and yields the text entered
// since the read began, without the terminating line break.
func (t *Terminal) readRaw(ctx context.Context) (string, error) {
	select {
	case <-t.closed:
		return "", ErrClosed
	default:
	}

	t.mu.Lock()
	if t.session != nil {
		t.mu.Unlock()
		logging.Error("Read requested while another read is outstanding")
		return "", ErrReadInProgress
	}
	s := &session{
		initial: t.buf.caret,
		caret:   t.buf.caret,
		done:    make(chan struct{}),
		started: time.Now(),
	}
	t.session = s
	fields := bufferFields(&t.buf)
	t.mu.Unlock()

	logging.LogReadSession("started", fields...)
	t.notify()

	select {
	case <-s.done:
		logging.LogReadSession("completed",
			zap.Int("runes", len([]rune(s.span))),
			zap.Duration("waited", time.Since(s.started)),
		)
		return s.span, nil
	case <-ctx.Done():
		if span, ok := t.abandon(s); ok {
			return span, nil
		}
		logging.LogReadSession("cancelled", zap.Error(ctx.Err()))
		return "", ctx.Err()
	case <-t.closed:
		if span, ok := t.abandon(s); ok {
			return span, nil
		}
		logging.LogReadSession("closed")
		return "", ErrClosed
	}
}

// abandon tears down s after cancellation. If return was latched in the
// meantime the captured span is still delivered.
func (t *Terminal) abandon(s *session) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s.returnPressed {
		return s.span, true
	}
	if t.session == s {
		t.session = nil
	}
	t.notify()
	return "", false
}

// finishRead latches the return key for the active session. Called with
// t.mu held, after the line break has been inserted at the caret.
func (t *Terminal) finishRead() {
	s := t.session
	s.returnPressed = true
	s.span = t.buf.text(s.initial, t.buf.caret-1)
	t.session = nil
	close(s.done)
}

// ReadLine reads one line of input. An immediate return yields "".
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	return t.readRaw(ctx)
}

// ReadString reads one line and keeps at most maxSize runes of it.
func (t *Terminal) ReadString(ctx context.Context, maxSize int) (string, error) {
	s, err := t.readRaw(ctx)
	if err != nil {
		return "", err
	}
	runes := []rune(s)
	if maxSize < 0 {
		maxSize = 0
	}
	if len(runes) > maxSize {
		runes = runes[:maxSize]
	}
	return string(runes), nil
}

// ReadChar reads one line and returns its first rune. An empty line yields
// ErrInputEmpty.
func (t *Terminal) ReadChar(ctx context.Context) (rune, error) {
	s, err := t.readRaw(ctx)
	if err != nil {
		return 0, err
	}
	for _, r := range s {
		return r, nil
	}
	return 0, ErrInputEmpty
}
