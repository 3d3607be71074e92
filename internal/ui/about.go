package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/muurk/textterm/internal/design"
	"github.com/muurk/textterm/internal/version"
)

// aboutBox shows version information and the full key help.
type aboutBox struct {
	visible bool
}

func (a aboutBox) view(chrome design.Design, keys keyMap) string {
	if !a.visible {
		return ""
	}
	base := chrome.Base()

	h := help.New()
	h.ShowAll = true
	h.Width = dialogWidth - 4

	lines := []string{
		base.Bold(true).Render("About"),
		"",
		base.Render(version.About()),
		"",
		h.View(keys),
		"",
		base.Faint(true).Render("press any key"),
	}
	return dialogBox(chrome).Render(strings.Join(lines, "\n"))
}
