package main

import (
	"context"
	"errors"

	"github.com/muurk/textterm/internal/terminal"
)

// hexDemo greets with a colored line, then alternates between reading a
// line and a hex number until the line "exit" is entered.
func hexDemo(ctx context.Context, t *terminal.Terminal) error {
	t.WriteString("This is a ")
	t.SetCurrentState(terminal.StateSuccess, false)
	t.WriteString("green ")
	t.SetCurrentState(terminal.StateNormal, false)
	t.WriteString("string.\n")

	for {
		line, err := t.ReadLine(ctx)
		if err != nil {
			return err
		}
		if line == "exit" {
			return nil
		}

		v, err := t.ReadHex(ctx)
		if err != nil {
			return err
		}
		if t.Flag() == terminal.StateSuccess {
			t.SetCurrentState(terminal.StateNormal, true)
			t.WriteString("= ")
			t.WriteUnsigned(v, terminal.Decimal)
			t.SetCurrentState(terminal.StateNormal, false)
			t.WriteLine("")
		}
	}
}

// numbersDemo walks through every typed read and output format.
func numbersDemo(ctx context.Context, t *terminal.Terminal) error {
	t.SetCurrentState(terminal.StateWarning, false)
	t.WriteLine("Typed input tour. Invalid input is reported inline.")
	t.SetCurrentState(terminal.StateNormal, false)

	t.WriteString("Byte (0-255): ")
	b, err := t.ReadUInt8(ctx)
	if err != nil {
		return err
	}
	t.WriteString("  binary ")
	t.WriteUnsigned(uint64(b), terminal.Binary)
	t.WriteString(", octal ")
	t.WriteUnsigned(uint64(b), terminal.Octal)
	t.WriteString(", hex ")
	t.WriteUnsigned(uint64(b), terminal.Hexadecimal)
	t.WriteChar('\n')

	t.WriteString("Short (0-65535): ")
	s, err := t.ReadUInt16(ctx)
	if err != nil {
		return err
	}
	t.WriteString("  hex ")
	t.WriteUnsigned(uint64(s), terminal.Hexadecimal)
	t.WriteChar('\n')

	t.WriteString("Integer: ")
	i, err := t.ReadUInt32(ctx)
	if err != nil {
		return err
	}
	t.WriteString("  doubled ")
	t.WriteUnsigned(uint64(i)*2, terminal.Decimal)
	t.WriteChar('\n')

	t.WriteString("Long: ")
	l, err := t.ReadUInt64(ctx)
	if err != nil {
		return err
	}
	t.WriteString("  octal ")
	t.WriteUnsigned(l, terminal.Octal)
	t.WriteChar('\n')

	t.WriteString("Float: ")
	f, err := t.ReadFloat(ctx)
	if err != nil {
		return err
	}
	t.WriteString("  halved ")
	t.WriteFloat(f / 2)
	t.WriteChar('\n')

	t.WriteString("Double: ")
	d, err := t.ReadDouble(ctx)
	if err != nil {
		return err
	}
	t.WriteString("  squared ")
	t.WriteDouble(d * d)
	t.WriteChar('\n')

	t.WriteString("Name (up to 16 characters): ")
	name, err := t.ReadString(ctx, 16)
	if err != nil {
		return err
	}
	t.SetCurrentState(terminal.StateSuccess, true)
	t.WriteString("Thanks, " + name)
	t.SetCurrentState(terminal.StateNormal, false)
	t.WriteChar('\n')

	for {
		t.WriteString("Clear the screen? [y/n] ")
		c, err := t.ReadChar(ctx)
		if errors.Is(err, terminal.ErrInputEmpty) {
			continue
		}
		if err != nil {
			return err
		}
		if c == 'y' || c == 'Y' {
			t.Clear()
		}
		break
	}

	t.WriteLine("Press enter to close.")
	_, err = t.ReadLine(ctx)
	return err
}
