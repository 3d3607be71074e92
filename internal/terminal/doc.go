// Package terminal implements a terminal-style text surface with formatted,
// colorized output and blocking, typed input.
//
// # Writing
//
// Writes append to the end of the buffer using the current format, which is
// chosen with SetCurrentState:
//
//	term.WriteString("This is a ")
//	term.SetCurrentState(terminal.StateSuccess, false)
//	term.WriteString("green ")
//	term.SetCurrentState(terminal.StateNormal, false)
//	term.WriteLine("string.")
//
// Each cell remembers the state it was written with; colors are resolved
// against the current design.Design when the surface is drawn.
//
// # Reading
//
// Reads block the calling goroutine until the user presses return on the
// UI goroutine, which delivers keys through HandleKey:
//
//	line, err := term.ReadLine(ctx)
//	n, err := term.ReadUInt8(ctx)
//	if term.Flag() != terminal.StateSuccess {
//	    // the user already saw a diagnostic line
//	}
//
// Only one read may be outstanding; a second concurrent read fails with
// ErrReadInProgress. Closing the terminal or cancelling ctx releases a
// pending read.
//
// # Input guard
//
// While a read is outstanding the region typed by the user is append-only:
// backspace cannot erase text that was on screen before the read began, and
// an edit after moving the caret backwards is redirected to the end of the
// buffer. Return terminates the read; the line break itself is not part of
// the returned text.
//
// # Typed reads
//
// Numeric reads convert the line and degrade rather than abort. Text that is
// not a number writes an Error-colored diagnostic, sets the flag to Error and
// returns zero. A number too wide for the target type writes a
// Warning-colored diagnostic, sets the flag to Warning and returns the value
// truncated to its low bits.
package terminal
