// Textterm is a text terminal for interactive console programs.
//
// It hosts a scrollback buffer with colored output and blocking, validated
// line input in a full-screen terminal UI, with a palette and font editor
// whose choices are saved to the user's configuration file.
//
// Usage:
//
//	textterm [command] [flags]
//
// Running without arguments starts the demo session.
// See 'textterm --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/textterm/internal/logging"
	"github.com/muurk/textterm/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textterm",
	Short: "Text terminal for interactive console programs",
	Long: `A text terminal with colored output and validated line input.

The default command runs the hex demo: type a line, then a hex number.
Typing "exit" as the line ends the session. Use F10 for the menu,
ctrl+p and ctrl+f to edit the palette and font.`,
	Version:           version.Full(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the hex demo when no subcommand provided
		return runDemo(cmd, hexDemo)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.About())
	},
}
