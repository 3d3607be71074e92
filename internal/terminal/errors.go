package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrReadInProgress is returned when a read is requested while another
	// read on the same terminal is still outstanding. Reads must be serialized
	// by the caller.
	ErrReadInProgress = errors.New("terminal: read already in progress")

	// ErrClosed is returned by reads on a closed terminal, including a read
	// that was pending when the terminal closed.
	ErrClosed = errors.New("terminal: closed")

	// ErrInputEmpty is returned by ReadChar when the user entered nothing.
	ErrInputEmpty = errors.New("terminal: input empty")
)

// ErrorType represents the category of a parse failure
type ErrorType int

const (
	// ErrTypeConversion indicates the text is not a valid number of the requested kind
	ErrTypeConversion ErrorType = iota
	// ErrTypeRange indicates a valid number that does not fit the requested width
	ErrTypeRange
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeConversion:
		return "Conversion Error"
	case ErrTypeRange:
		return "Range Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// NumberKind identifies what a parser was asked to produce.
type NumberKind int

const (
	KindUnsigned NumberKind = iota
	KindFloat
	KindHex
)

// ParseError describes why typed input could not be converted cleanly.
type ParseError struct {
	Type  ErrorType  // Category of failure
	Kind  NumberKind // Requested number kind
	Bits  int        // Requested width in bits
	Input string     // Raw text as entered
	Err   error      // Underlying strconv error (conversion failures only)
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q (caused by: %v)", e.Type, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %q does not fit in %d bits", e.Type, e.Input, e.Bits)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Diagnostic returns the line written to the terminal when the error is
// reported to the user.
func (e *ParseError) Diagnostic() string {
	if e.Type == ErrTypeRange {
		return fmt.Sprintf("Entered number exceeds %s range.", rangeName(e.Bits))
	}
	switch e.Kind {
	case KindFloat:
		return "Entered text is not a floating-point number."
	case KindHex:
		return "Entered text is not a hex number."
	default:
		return "Entered text is not a number."
	}
}

// IsConversionError reports whether err is a ParseError of type ErrTypeConversion.
func IsConversionError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Type == ErrTypeConversion
}

// IsRangeError reports whether err is a ParseError of type ErrTypeRange.
func IsRangeError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Type == ErrTypeRange
}

func rangeName(bits int) string {
	switch bits {
	case 8:
		return "byte"
	case 16:
		return "short"
	case 32:
		return "integer"
	default:
		return fmt.Sprintf("%d-bit", bits)
	}
}
