package terminal

// SetCurrentState selects the format of subsequent writes. Text already in
// the buffer keeps the format it was written with.
func (t *Terminal) SetCurrentState(state TextState, highlight bool) {
	t.mu.Lock()
	t.format = Format{State: state, Highlight: highlight}
	t.mu.Unlock()
}

// CurrentFormat returns the format applied to the next write.
func (t *Terminal) CurrentFormat() Format {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.format
}

// WriteChar appends a single rune.
func (t *Terminal) WriteChar(r rune) {
	t.write([]rune{r})
}

// WriteString appends s.
func (t *Terminal) WriteString(s string) {
	t.write([]rune(s))
}

// WriteLine appends s followed by a line break.
func (t *Terminal) WriteLine(s string) {
	t.write(append([]rune(s), '\n'))
}

// WriteUnsigned appends v rendered in the base selected by f.
func (t *Terminal) WriteUnsigned(v uint64, f NumberFormat) {
	t.WriteString(FormatUnsigned(v, f))
}

// WriteFloat appends v with 6 fractional digits.
func (t *Terminal) WriteFloat(v float32) {
	t.WriteString(FormatFloat(v))
}

// WriteDouble appends v with 12 fractional digits.
func (t *Terminal) WriteDouble(v float64) {
	t.WriteString(FormatDouble(v))
}

func (t *Terminal) write(runes []rune) {
	if len(runes) == 0 {
		return
	}
	t.mu.Lock()
	t.buf.appendText(runes, t.format)
	t.mu.Unlock()
	t.notify()
}
