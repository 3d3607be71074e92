package ui

import (
	"os"

	"golang.org/x/term"
)

// Layout constants for non-interactive output
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Status marker
const (
	SuccessMarker = "✓"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
