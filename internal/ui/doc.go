// Package ui hosts a terminal.Terminal in a Bubble Tea program.
//
// The window is a single column: a menu bar, the display surface and a
// footer with the read indicator, the status flag and key help.
//
// # Architecture
//
//   - Model: the tea.Model. It waits on Terminal.Changes for re-renders and
//     routes every key that is not a host shortcut to Terminal.HandleKey,
//     which applies the input guard while a read is pending.
//   - Run: starts the program and runs the caller function on its own
//     goroutine. Closing the window closes the terminal, releasing a blocked
//     read with terminal.ErrClosed.
//   - PaletteEditor and FontEditor: modal dialogs working on a copy of the
//     current design. Accepting applies the copy with Terminal.SetDesign and
//     hands it to Options.OnDesign.
//   - Printer: styled non-interactive output for CLI subcommands.
//
// # Keys
//
//	f10     menu (File, Edit, Format, Help)
//	ctrl+p  palette editor
//	ctrl+f  font editor
//	ctrl+y  copy the whole buffer to the clipboard
//	ctrl+v  paste from the clipboard
//	f1      about
//	ctrl+q  close (ctrl+c also works)
//	pgup    scroll back
//
// # Usage Pattern
//
//	term := terminal.New(design.Default())
//	err := ui.Run(ctx, term, func(ctx context.Context, t *terminal.Terminal) error {
//	    t.WriteString("Name: ")
//	    name, err := t.ReadLine(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    t.WriteLine("Hello, " + name)
//	    return nil
//	}, ui.Options{Title: "hello", AltScreen: true})
package ui
