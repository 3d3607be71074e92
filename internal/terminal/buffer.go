package terminal

// cell is one rune of the display buffer together with its format.
type cell struct {
	r rune
	f Format
}

// Segment is a maximal run of text sharing one format.
type Segment struct {
	Text   string
	Format Format
}

// buffer is the editable display surface: a flat sequence of formatted
// runes and a caret offset into it. Line breaks are '\n' cells.
// buffer is not safe for concurrent use; Terminal serializes access.
type buffer struct {
	cells []cell
	caret int
}

func (b *buffer) len() int { return len(b.cells) }

// insert places runes at the caret and advances the caret past them.
func (b *buffer) insert(runes []rune, f Format) {
	if len(runes) == 0 {
		return
	}
	b.clampCaret()
	added := make([]cell, len(runes))
	for i, r := range runes {
		added[i] = cell{r: r, f: f}
	}
	tail := append(added, b.cells[b.caret:]...)
	b.cells = append(b.cells[:b.caret], tail...)
	b.caret += len(runes)
}

// appendText places runes at the end of the buffer and moves the caret to
// the end.
func (b *buffer) appendText(runes []rune, f Format) {
	b.caret = len(b.cells)
	b.insert(runes, f)
	b.caret = len(b.cells)
}

// backspace removes the rune before the caret.
func (b *buffer) backspace() bool {
	b.clampCaret()
	if b.caret == 0 {
		return false
	}
	b.cells = append(b.cells[:b.caret-1], b.cells[b.caret:]...)
	b.caret--
	return true
}

// deleteForward removes the rune under the caret.
func (b *buffer) deleteForward() bool {
	b.clampCaret()
	if b.caret >= len(b.cells) {
		return false
	}
	b.cells = append(b.cells[:b.caret], b.cells[b.caret+1:]...)
	return true
}

func (b *buffer) moveLeft() {
	if b.caret > 0 {
		b.caret--
	}
}

func (b *buffer) moveRight() {
	if b.caret < len(b.cells) {
		b.caret++
	}
}

func (b *buffer) moveEnd() { b.caret = len(b.cells) }

// lineStart returns the offset of the first rune of the line containing pos.
func (b *buffer) lineStart(pos int) int {
	for pos > 0 && b.cells[pos-1].r != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the '\n' ending the line containing pos,
// or the buffer length for the last line.
func (b *buffer) lineEnd(pos int) int {
	for pos < len(b.cells) && b.cells[pos].r != '\n' {
		pos++
	}
	return pos
}

func (b *buffer) moveLineStart() {
	b.clampCaret()
	b.caret = b.lineStart(b.caret)
}

func (b *buffer) moveLineEnd() {
	b.clampCaret()
	b.caret = b.lineEnd(b.caret)
}

// moveUp moves the caret to the same column of the previous line, clamped
// to that line's length.
func (b *buffer) moveUp() {
	b.clampCaret()
	start := b.lineStart(b.caret)
	if start == 0 {
		return
	}
	col := b.caret - start
	prevStart := b.lineStart(start - 1)
	prevLen := start - 1 - prevStart
	b.caret = prevStart + min(col, prevLen)
}

// moveDown moves the caret to the same column of the next line, clamped to
// that line's length.
func (b *buffer) moveDown() {
	b.clampCaret()
	end := b.lineEnd(b.caret)
	if end >= len(b.cells) {
		return
	}
	col := b.caret - b.lineStart(b.caret)
	nextStart := end + 1
	nextLen := b.lineEnd(nextStart) - nextStart
	b.caret = nextStart + min(col, nextLen)
}

func (b *buffer) clear() {
	b.cells = nil
	b.caret = 0
}

func (b *buffer) clampCaret() {
	if b.caret < 0 {
		b.caret = 0
	}
	if b.caret > len(b.cells) {
		b.caret = len(b.cells)
	}
}

// text returns the runes in [from, to) as a string. Out-of-range bounds are
// clamped and an inverted range yields "".
func (b *buffer) text(from, to int) string {
	from = max(from, 0)
	to = min(to, len(b.cells))
	if from >= to {
		return ""
	}
	runes := make([]rune, 0, to-from)
	for _, c := range b.cells[from:to] {
		runes = append(runes, c.r)
	}
	return string(runes)
}

func (b *buffer) String() string { return b.text(0, len(b.cells)) }

// segments splits the buffer into runs of equal format.
func (b *buffer) segments() []Segment {
	var segs []Segment
	var run []rune
	for i, c := range b.cells {
		if i > 0 && c.f != b.cells[i-1].f {
			segs = append(segs, Segment{Text: string(run), Format: b.cells[i-1].f})
			run = run[:0]
		}
		run = append(run, c.r)
	}
	if len(run) > 0 {
		segs = append(segs, Segment{Text: string(run), Format: b.cells[len(b.cells)-1].f})
	}
	return segs
}
