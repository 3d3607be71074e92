package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/textterm/internal/design"
)

// Printer writes styled, non-interactive output for CLI subcommands.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintSuccess prints a one-line confirmation.
func (p *Printer) PrintSuccess(msg string) {
	p.Println(lipgloss.NewStyle().Foreground(design.DefaultSuccessColor).Render(SuccessMarker + " " + msg))
}

// PrintDesign prints every color role with a swatch, then the font.
func (p *Printer) PrintDesign(d design.Design, source string) {
	p.Println(RenderDesign(d, source, p.width))
}

// RenderDesign renders a design summary box.
func RenderDesign(d design.Design, source string, width int) string {
	key := lipgloss.NewStyle().Width(12)
	var lines []string
	for _, role := range design.Roles {
		c := d.Color(role)
		swatch := lipgloss.NewStyle().Background(c).Render("    ")
		lines = append(lines, key.Render(role.Label()+":")+" "+swatch+" "+string(c))
	}
	lines = append(lines, key.Render("Font:")+" "+d.Font.String())

	sample := make([]string, 0, 4)
	for _, st := range []struct {
		label string
		fg    lipgloss.Color
	}{
		{"normal", d.TextColor},
		{"success", d.SuccessColor},
		{"warning", d.WarningColor},
		{"error", d.ErrorColor},
	} {
		sample = append(sample, d.Text(st.fg, false).Render(" "+st.label+" "))
	}
	lines = append(lines, "", strings.Join(sample, "")+d.Text(d.TextColor, true).Render(" highlight "))

	if source != "" {
		lines = append(lines, "", lipgloss.NewStyle().Faint(true).Render(source))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.Border()).
		Padding(0, 1).
		Width(min(width, MaxContentWidth) - 2).
		Render(strings.Join(lines, "\n"))
}
