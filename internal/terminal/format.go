package terminal

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/textterm/internal/design"
)

// TextState selects the design color used by subsequent writes. It is also
// the type of the status flag, where only Success, Error and Warning occur.
type TextState int

const (
	StateNormal TextState = iota
	StateError
	StateSuccess
	StateWarning
)

// String returns a human-readable name for the state
func (s TextState) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateError:
		return "Error"
	case StateSuccess:
		return "Success"
	case StateWarning:
		return "Warning"
	default:
		return fmt.Sprintf("TextState(%d)", int(s))
	}
}

// Color returns the foreground color of s in d.
func (s TextState) Color(d design.Design) lipgloss.Color {
	switch s {
	case StateError:
		return d.ErrorColor
	case StateSuccess:
		return d.SuccessColor
	case StateWarning:
		return d.WarningColor
	default:
		return d.TextColor
	}
}

// NumberFormat selects the base used by WriteUnsigned.
type NumberFormat int

const (
	Decimal NumberFormat = iota
	Hexadecimal
	Octal
	Binary
)

// Base returns the numeric base for f. Unknown formats are decimal.
func (f NumberFormat) Base() int {
	switch f {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hexadecimal:
		return 16
	default:
		return 10
	}
}

// String returns a human-readable name for the format
func (f NumberFormat) String() string {
	switch f {
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	case Octal:
		return "Octal"
	case Binary:
		return "Binary"
	default:
		return fmt.Sprintf("NumberFormat(%d)", int(f))
	}
}

// Format is the character format recorded with every cell of the buffer.
// Colors are resolved against the current design at render time, so a new
// design restyles everything while a state change only affects later writes.
type Format struct {
	State     TextState
	Highlight bool
}

// Style resolves f against d.
func (f Format) Style(d design.Design) lipgloss.Style {
	return d.Text(f.State.Color(d), f.Highlight)
}
