package terminal

import (
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/textterm/internal/design"
	"github.com/muurk/textterm/internal/logging"
)

// Terminal is a terminal-style text surface with formatted output and
// blocking, typed input.
//
// Writers and readers run on the caller's goroutine; the UI delivers key
// events through HandleKey from its own goroutine. All state is guarded by
// one mutex, and at most one read may be outstanding at a time.
type Terminal struct {
	mu      sync.Mutex
	buf     buffer
	format  Format
	design  design.Design
	flag    TextState
	session *session

	changes   chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

// New creates an empty terminal rendering with d.
func New(d design.Design) *Terminal {
	return &Terminal{
		design:  d,
		flag:    StateSuccess,
		changes: make(chan struct{}, 1),
		closed:  make(chan struct{}),
	}
}

// Changes returns a channel that receives a value after the buffer, design
// or read state changed. Notifications coalesce: a single pending value
// stands for any number of changes.
func (t *Terminal) Changes() <-chan struct{} {
	return t.changes
}

// Done returns a channel closed when the terminal is closed.
func (t *Terminal) Done() <-chan struct{} {
	return t.closed
}

// Close releases a pending read with ErrClosed and makes every later read
// fail the same way. Writes to a closed terminal are still accepted.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		logging.Debug("Terminal closed")
		close(t.closed)
	})
}

// Design returns the current design snapshot.
func (t *Terminal) Design() design.Design {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.design
}

// SetDesign replaces the design wholesale. Existing text is re-rendered
// from the new snapshot on the next draw.
func (t *Terminal) SetDesign(d design.Design) {
	t.mu.Lock()
	t.design = d
	t.mu.Unlock()

	logging.LogDesignChange(string(d.BackColor), string(d.TextColor), d.Font.String())
	t.notify()
}

// Flag returns the outcome of the most recent typed read.
func (t *Terminal) Flag() TextState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flag
}

// Reading reports whether a read is waiting for the return key.
func (t *Terminal) Reading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reading()
}

// Text returns the whole buffer as plain text.
func (t *Terminal) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}

// Segments returns the buffer split into runs of equal format.
func (t *Terminal) Segments() []Segment {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.segments()
}

// Caret returns the caret offset in runes.
func (t *Terminal) Caret() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.caret
}

// Snapshot is a consistent view of everything needed to draw the terminal.
type Snapshot struct {
	Segments []Segment
	Caret    int
	Design   design.Design
	Reading  bool
	Flag     TextState
}

// Snapshot captures the render state under a single lock.
func (t *Terminal) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Segments: t.buf.segments(),
		Caret:    t.buf.caret,
		Design:   t.design,
		Reading:  t.reading(),
		Flag:     t.flag,
	}
}

// Clear empties the buffer. A pending read keeps waiting; its positions are
// clamped to the empty buffer so it still terminates cleanly.
func (t *Terminal) Clear() {
	t.mu.Lock()
	t.buf.clear()
	if t.session != nil {
		t.session.initial = 0
		t.session.caret = 0
	}
	t.mu.Unlock()

	logging.Debug("Terminal cleared")
	t.notify()
}

func (t *Terminal) setFlag(s TextState) {
	t.mu.Lock()
	t.flag = s
	t.mu.Unlock()
}

// notify signals the UI without ever blocking the writer.
func (t *Terminal) notify() {
	select {
	case t.changes <- struct{}{}:
	default:
	}
}

func bufferFields(b *buffer) []zap.Field {
	return []zap.Field{
		zap.Int("length", b.len()),
		zap.Int("caret", b.caret),
	}
}
