package design

import "github.com/charmbracelet/lipgloss"

// Base returns the style for plain text on the terminal surface.
func (d Design) Base() lipgloss.Style {
	return d.fontStyle().
		Foreground(d.TextColor).
		Background(d.BackColor)
}

// Text returns the style for text written in fg, optionally on the
// highlight background.
func (d Design) Text(fg lipgloss.Color, highlight bool) lipgloss.Style {
	bg := d.BackColor
	if highlight {
		bg = d.HighlightColor
	}
	return d.fontStyle().Foreground(fg).Background(bg)
}

// Caret returns the style of the cell under the caret (inverted colors).
func (d Design) Caret() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(d.BackColor).
		Background(d.TextColor)
}

// MenuBar returns the style of the menu bar row. Like the menu style sheet
// of desktop builds it is derived entirely from the back and text colors.
func (d Design) MenuBar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(d.TextColor).
		Background(Darker(d.BackColor, 2))
}

// MenuSelected returns the style of the open menu title or selected entry.
func (d Design) MenuSelected() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(d.TextColor).
		Background(Darker(d.BackColor, 4)).
		Bold(true)
}

// Border returns the border color used by dialogs drawn over the terminal.
func (d Design) Border() lipgloss.Color {
	return d.HighlightColor
}

func (d Design) fontStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(d.Font.Bold).
		Italic(d.Font.Italic)
}
