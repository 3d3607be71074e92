package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/textterm/internal/logging"
	"github.com/muurk/textterm/internal/safego"
	"github.com/muurk/textterm/internal/terminal"
)

// appShutdownGrace bounds how long Run waits for the caller after the
// window is gone.
var appShutdownGrace = 2 * time.Second

// App is a console program driven through a terminal. It runs on its own
// goroutine and may block in the terminal's read methods.
type App func(ctx context.Context, term *terminal.Terminal) error

// Run shows term in a Bubble Tea program and runs app against it. The window
// closes when app returns; closing the window first closes term, which
// releases a pending read with terminal.ErrClosed and cancels app's context.
//
// The returned error is app's error, unless it only reports that the
// terminal was closed or the context cancelled.
func Run(ctx context.Context, term *terminal.Terminal, app App, opts Options, progOpts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	popts = append(popts, progOpts...)
	p := tea.NewProgram(NewModel(term, opts), popts...)

	appDone := make(chan error, 1)
	safego.Go("caller", func() {
		err := safego.Err("app", func() error { return app(ctx, term) })
		appDone <- err
		p.Send(appDoneMsg{err: err})
	})

	logging.Info("Terminal window opened", zap.String("title", opts.Title))
	_, runErr := p.Run()

	parentErr := ctx.Err()
	cancel()
	term.Close()

	var appErr error
	select {
	case appErr = <-appDone:
	case <-time.After(appShutdownGrace):
		logging.Warn("Caller did not return after the window closed", zap.Duration("waited", appShutdownGrace))
	}
	logging.Info("Terminal window closed", zap.NamedError("app_error", appErr))

	if runErr != nil {
		if parentErr != nil {
			return parentErr
		}
		return fmt.Errorf("terminal UI failed: %w", runErr)
	}
	if errors.Is(appErr, terminal.ErrClosed) || errors.Is(appErr, context.Canceled) {
		return nil
	}
	return appErr
}
