package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/textterm/internal/design"
)

const dialogWidth = 44

// designAcceptedMsg carries a design confirmed in one of the editors.
type designAcceptedMsg struct {
	design design.Design
}

func acceptDesign(d design.Design) tea.Cmd {
	return func() tea.Msg { return designAcceptedMsg{design: d} }
}

var (
	dialogUp     = key.NewBinding(key.WithKeys("up", "shift+tab"))
	dialogDown   = key.NewBinding(key.WithKeys("down", "tab"))
	dialogEnter  = key.NewBinding(key.WithKeys("enter"))
	dialogCancel = key.NewBinding(key.WithKeys("esc"))
	paletteReset = key.NewBinding(key.WithKeys("r"))
)

// PaletteEditor edits the six colors of a design copy. The terminal's own
// design is untouched until the edited copy is accepted.
type PaletteEditor struct {
	visible bool
	design  design.Design

	// cursor indexes design.Roles, then the OK and Cancel buttons.
	cursor  int
	editing bool
	input   textinput.Model
	errMsg  string
}

// NewPaletteEditor creates a hidden palette editor.
func NewPaletteEditor() *PaletteEditor {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "#rrggbb"
	in.CharLimit = 7
	in.Width = 8
	return &PaletteEditor{input: in}
}

func (e *PaletteEditor) okIndex() int     { return len(design.Roles) }
func (e *PaletteEditor) cancelIndex() int { return len(design.Roles) + 1 }

// Show opens the editor on a copy of d.
func (e *PaletteEditor) Show(d design.Design) {
	e.visible = true
	e.design = d
	e.cursor = 0
	e.editing = false
	e.errMsg = ""
}

// Hide closes the editor, discarding unaccepted changes.
func (e *PaletteEditor) Hide() {
	e.visible = false
	e.editing = false
	e.input.Blur()
}

// Visible returns whether the editor is visible.
func (e *PaletteEditor) Visible() bool {
	return e.visible
}

// Design returns the edited copy.
func (e *PaletteEditor) Design() design.Design {
	return e.design
}

// Update handles messages while the editor is visible.
func (e *PaletteEditor) Update(msg tea.Msg) (*PaletteEditor, tea.Cmd) {
	if !e.visible {
		return e, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if e.editing {
			var cmd tea.Cmd
			e.input, cmd = e.input.Update(msg)
			return e, cmd
		}
		return e, nil
	}

	if e.editing {
		switch {
		case key.Matches(keyMsg, dialogCancel):
			e.editing = false
			e.errMsg = ""
			e.input.Blur()
			return e, nil
		case key.Matches(keyMsg, dialogEnter):
			e.applyInput()
			return e, nil
		}
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(keyMsg)
		return e, cmd
	}

	last := e.cancelIndex()
	switch {
	case key.Matches(keyMsg, dialogCancel):
		e.Hide()
	case key.Matches(keyMsg, dialogUp):
		e.cursor = (e.cursor + last) % (last + 1)
	case key.Matches(keyMsg, dialogDown):
		e.cursor = (e.cursor + 1) % (last + 1)
	case key.Matches(keyMsg, paletteReset):
		if e.cursor < e.okIndex() {
			role := design.Roles[e.cursor]
			e.design = e.design.WithColor(role, design.Default().Color(role))
		}
	case key.Matches(keyMsg, dialogEnter):
		switch e.cursor {
		case e.okIndex():
			e.Hide()
			return e, acceptDesign(e.design)
		case e.cancelIndex():
			e.Hide()
		default:
			return e, e.startEditing()
		}
	}
	return e, nil
}

func (e *PaletteEditor) startEditing() tea.Cmd {
	e.editing = true
	e.errMsg = ""
	e.input.SetValue(string(e.design.Color(design.Roles[e.cursor])))
	e.input.CursorEnd()
	return e.input.Focus()
}

func (e *PaletteEditor) applyInput() {
	c, err := design.ParseColor(strings.TrimSpace(e.input.Value()))
	if err != nil {
		e.errMsg = "Not a color; use #rrggbb or #rgb."
		return
	}
	e.design = e.design.WithColor(design.Roles[e.cursor], c)
	e.editing = false
	e.errMsg = ""
	e.input.Blur()
}

// View renders the dialog using chrome for its frame.
func (e *PaletteEditor) View(chrome design.Design) string {
	if !e.visible {
		return ""
	}
	base := chrome.Base()
	selected := chrome.MenuSelected()
	inner := dialogWidth - 4

	lines := []string{base.Bold(true).Render("Format editor"), ""}
	for i, role := range design.Roles {
		c := e.design.Color(role)
		swatch := lipgloss.NewStyle().Background(c).Render("    ")

		value := string(c)
		if e.editing && i == e.cursor {
			value = e.input.View()
		}
		label := lipgloss.NewStyle().Width(12).Render(role.Label())
		text := label + " " + value
		if i == e.cursor {
			text = selected.Render("> " + text)
		} else {
			text = base.Render("  " + text)
		}
		lines = append(lines, ansi.Truncate(swatch+" "+text, inner, ""))
	}

	lines = append(lines, "", e.buttons(chrome))
	if e.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(chrome.ErrorColor).Render(e.errMsg))
	}
	hint := "enter edit · r default · esc cancel"
	if e.editing {
		hint = "enter apply · esc discard"
	}
	lines = append(lines, "", base.Faint(true).Render(hint))

	return dialogBox(chrome).Render(strings.Join(lines, "\n"))
}

func (e *PaletteEditor) buttons(chrome design.Design) string {
	return renderButtons(chrome, []string{"OK", "Cancel"}, e.cursor-e.okIndex())
}

// renderButtons draws a row of buttons; focused indexes the active one
// (any out-of-range value means none is focused).
func renderButtons(chrome design.Design, labels []string, focused int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		style := chrome.MenuBar().Padding(0, 1)
		if i == focused {
			style = chrome.MenuSelected().Padding(0, 1)
		}
		parts[i] = style.Render(l)
	}
	return strings.Join(parts, " ")
}

func dialogBox(chrome design.Design) lipgloss.Style {
	return chrome.Base().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(chrome.Border()).
		BorderBackground(chrome.BackColor).
		Padding(0, 1).
		Width(dialogWidth)
}
