package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/textterm/internal/terminal"
)

const tabWidth = 8

// runKind identifies how a run of cells is styled.
type runKind struct {
	format terminal.Format
	caret  bool
	fill   bool
}

// surfaceRenderer turns a terminal snapshot into fixed-width rows,
// soft-wrapping long lines and tracking the row the caret is on.
type surfaceRenderer struct {
	snap  terminal.Snapshot
	width int

	rows      []string
	line      strings.Builder
	col       int
	run       strings.Builder
	kind      runKind
	caretLine int
}

// renderSurface renders snap at the given width. It returns the rendered
// rows joined by newlines and the index of the row holding the caret.
func renderSurface(snap terminal.Snapshot, width int) (string, int) {
	if width < 1 {
		width = 1
	}
	r := &surfaceRenderer{snap: snap, width: width}

	pos := 0
	for _, seg := range snap.Segments {
		for _, ch := range seg.Text {
			r.cell(ch, seg.Format, pos == snap.Caret)
			pos++
		}
	}
	if snap.Caret >= pos {
		r.put(" ", 1, runKind{caret: true})
		r.caretLine = len(r.rows)
	}
	r.newline()

	return strings.Join(r.rows, "\n"), r.caretLine
}

func (r *surfaceRenderer) cell(ch rune, f terminal.Format, atCaret bool) {
	switch ch {
	case '\n':
		if atCaret {
			r.put(" ", 1, runKind{caret: true})
			r.caretLine = len(r.rows)
		}
		r.newline()
	case '\t':
		if r.col >= r.width {
			r.newline()
		}
		n := tabWidth - r.col%tabWidth
		if r.col+n > r.width {
			n = r.width - r.col
		}
		if atCaret {
			r.put(" ", 1, runKind{caret: true})
			r.caretLine = len(r.rows)
			n--
		}
		if n > 0 {
			r.put(strings.Repeat(" ", n), n, runKind{format: f})
		}
	default:
		s := string(ch)
		w := lipgloss.Width(s)
		if w == 0 {
			// Control characters have no glyph; show a placeholder.
			s, w = "·", 1
		}
		r.put(s, w, runKind{format: f, caret: atCaret})
		if atCaret {
			r.caretLine = len(r.rows)
		}
	}
}

// put appends text of display width w, wrapping first if it would overflow.
func (r *surfaceRenderer) put(text string, w int, k runKind) {
	if r.col > 0 && r.col+w > r.width {
		r.newline()
	}
	if k != r.kind {
		r.flushRun()
		r.kind = k
	}
	r.run.WriteString(text)
	r.col += w
}

func (r *surfaceRenderer) flushRun() {
	if r.run.Len() == 0 {
		return
	}
	d := r.snap.Design
	var st lipgloss.Style
	switch {
	case r.kind.caret:
		st = d.Caret()
	case r.kind.fill:
		st = d.Base()
	default:
		st = r.kind.format.Style(d)
	}
	r.line.WriteString(st.Render(r.run.String()))
	r.run.Reset()
}

// newline pads the current row to full width with the background color.
func (r *surfaceRenderer) newline() {
	if r.col < r.width {
		r.put(strings.Repeat(" ", r.width-r.col), r.width-r.col, runKind{fill: true})
	}
	r.flushRun()
	r.rows = append(r.rows, r.line.String())
	r.line.Reset()
	r.col = 0
	r.kind = runKind{}
}

// blankRows returns n empty rows in the background color.
func blankRows(snap terminal.Snapshot, width, n int) []string {
	if n <= 0 {
		return nil
	}
	row := snap.Design.Base().Render(strings.Repeat(" ", max(width, 1)))
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

// overlay draws box over base with its top-left corner at column x, row y.
func overlay(base, box string, x, y int) string {
	if box == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	x = max(x, 0)
	y = max(y, 0)

	for i, bl := range boxLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		line := baseLines[row]
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(bl), "")
		baseLines[row] = left + bl + right
	}
	return strings.Join(baseLines, "\n")
}

// center returns the top-left position that centers a box in a w×h area.
func center(box string, w, h int) (int, int) {
	return max((w-lipgloss.Width(box))/2, 0), max((h-lipgloss.Height(box))/2, 0)
}
