package terminal

import (
	"context"
	"errors"

	"github.com/muurk/textterm/internal/logging"
)

// Typed reads share one template: the flag is reset to Success, a line is
// read, and the line is converted. Conversion failures and range overflows
// are reported inline and recorded in the flag; they are never returned as
// errors. The returned error is only set when the read itself failed
// (closed terminal, cancelled context, concurrent read).

// ReadUInt8 reads a decimal byte. Values above 255 are truncated to their
// low 8 bits and flagged as a warning.
func (t *Terminal) ReadUInt8(ctx context.Context) (uint8, error) {
	v, err := t.readUnsigned(ctx, 8)
	return uint8(v), err
}

// ReadUInt16 reads a decimal 16-bit unsigned integer.
func (t *Terminal) ReadUInt16(ctx context.Context) (uint16, error) {
	v, err := t.readUnsigned(ctx, 16)
	return uint16(v), err
}

// ReadUInt32 reads a decimal 32-bit unsigned integer.
func (t *Terminal) ReadUInt32(ctx context.Context) (uint32, error) {
	v, err := t.readUnsigned(ctx, 32)
	return uint32(v), err
}

// ReadUInt64 reads a decimal 64-bit unsigned integer.
func (t *Terminal) ReadUInt64(ctx context.Context) (uint64, error) {
	return t.readUnsigned(ctx, 64)
}

// ReadHex reads a hexadecimal 64-bit unsigned integer, accepting a "$",
// "&h" or "0x" prefix.
func (t *Terminal) ReadHex(ctx context.Context) (uint64, error) {
	raw, err := t.beginTyped(ctx)
	if err != nil {
		return 0, err
	}
	v, perr := ParseHex(raw)
	return v, t.report(perr)
}

// ReadFloat reads a single-precision floating-point number.
func (t *Terminal) ReadFloat(ctx context.Context) (float32, error) {
	raw, err := t.beginTyped(ctx)
	if err != nil {
		return 0, err
	}
	v, perr := ParseFloat(raw)
	return v, t.report(perr)
}

// ReadDouble reads a double-precision floating-point number.
func (t *Terminal) ReadDouble(ctx context.Context) (float64, error) {
	raw, err := t.beginTyped(ctx)
	if err != nil {
		return 0, err
	}
	v, perr := ParseDouble(raw)
	return v, t.report(perr)
}

func (t *Terminal) readUnsigned(ctx context.Context, bits int) (uint64, error) {
	raw, err := t.beginTyped(ctx)
	if err != nil {
		return 0, err
	}
	v, perr := ParseUnsigned(raw, bits)
	return v, t.report(perr)
}

func (t *Terminal) beginTyped(ctx context.Context) (string, error) {
	t.setFlag(StateSuccess)
	return t.readRaw(ctx)
}

// report writes the diagnostic for a parse failure and records the outcome
// in the flag. It always returns nil: parse failures are not read errors.
func (t *Terminal) report(err error) error {
	if err == nil {
		logging.LogParseOutcome(StateSuccess.String(), "")
		return nil
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}

	state := StateError
	if pe.Type == ErrTypeRange {
		state = StateWarning
	}

	t.SetCurrentState(state, false)
	t.WriteLine(pe.Diagnostic())
	t.SetCurrentState(StateNormal, false)
	t.setFlag(state)

	logging.LogParseOutcome(state.String(), pe.Input)
	return nil
}
