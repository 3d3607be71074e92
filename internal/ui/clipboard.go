package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/textterm/internal/logging"
)

// Clipboard access, replaceable in tests.
var (
	writeClipboard = copyToClipboard
	readClipboard  = clipboard.ReadAll
)

// statusMsg sets the transient footer message.
type statusMsg string

// pasteMsg carries clipboard text to paste into the terminal.
type pasteMsg string

// copyToClipboard writes text to the system clipboard with a macOS pbcopy fallback.
func copyToClipboard(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return clipboard.WriteAll(text)
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			logging.Warn("Clipboard write failed", zap.Error(err))
			return statusMsg("Copy failed: " + err.Error())
		}
		return statusMsg(fmt.Sprintf("Copied %d characters", len([]rune(text))))
	}
}

func pasteCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := readClipboard()
		if err != nil {
			logging.Warn("Clipboard read failed", zap.Error(err))
			return statusMsg("Paste failed: " + err.Error())
		}
		return pasteMsg(text)
	}
}
