package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/textterm/internal/design"
)

// Families offered by the font editor. A family loaded from settings that is
// not listed here is added to the front.
var Families = []string{
	design.DefaultFontFamily,
	"Cascadia Mono",
	"Consolas",
	"Courier New",
	"DejaVu Sans Mono",
	"Fira Code",
	"JetBrains Mono",
	"Menlo",
	"Source Code Pro",
	"Ubuntu Mono",
}

const (
	minFontSize = 4
	maxFontSize = 96
)

type familyItem string

func (f familyItem) FilterValue() string { return string(f) }
func (f familyItem) Title() string       { return string(f) }
func (f familyItem) Description() string { return "" }

type fontField int

const (
	fieldFamily fontField = iota
	fieldSize
	fieldBold
	fieldItalic
	fieldOK
	fieldCancel
	fontFieldCount
)

var fontToggle = key.NewBinding(key.WithKeys(" ", "enter"))

// FontEditor edits the font of a design copy.
type FontEditor struct {
	visible bool
	design  design.Design

	focus    fontField
	families list.Model
	size     textinput.Model
	bold     bool
	italic   bool
	errMsg   string
}

// NewFontEditor creates a hidden font editor.
func NewFontEditor() *FontEditor {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	families := list.New(nil, delegate, dialogWidth-4, 6)
	families.SetShowTitle(false)
	families.SetShowStatusBar(false)
	families.SetShowHelp(false)
	families.SetFilteringEnabled(false)
	families.SetShowPagination(false)

	size := textinput.New()
	size.Prompt = ""
	size.CharLimit = 2
	size.Width = 3

	return &FontEditor{families: families, size: size}
}

// Show opens the editor on a copy of d.
func (e *FontEditor) Show(d design.Design) tea.Cmd {
	e.visible = true
	e.design = d
	e.errMsg = ""
	e.bold = d.Font.Bold
	e.italic = d.Font.Italic

	names := Families
	found := false
	for _, f := range names {
		if f == d.Font.Family {
			found = true
			break
		}
	}
	if !found && d.Font.Family != "" {
		names = append([]string{d.Font.Family}, names...)
	}
	items := make([]list.Item, len(names))
	selected := 0
	for i, f := range names {
		items[i] = familyItem(f)
		if f == d.Font.Family {
			selected = i
		}
	}
	cmd := e.families.SetItems(items)
	e.families.Select(selected)

	e.size.SetValue(strconv.Itoa(d.Font.Size))
	return tea.Batch(cmd, e.setFocus(fieldFamily))
}

// Hide closes the editor, discarding unaccepted changes.
func (e *FontEditor) Hide() {
	e.visible = false
	e.size.Blur()
}

// Visible returns whether the editor is visible.
func (e *FontEditor) Visible() bool {
	return e.visible
}

// Font returns the font as currently entered. The size is clamped.
func (e *FontEditor) Font() design.Font {
	f := design.Font{
		Family: e.design.Font.Family,
		Size:   e.design.Font.Size,
		Bold:   e.bold,
		Italic: e.italic,
	}
	if item, ok := e.families.SelectedItem().(familyItem); ok {
		f.Family = string(item)
	}
	if n, err := parseFontSize(e.size.Value()); err == nil {
		f.Size = n
	}
	return f
}

func parseFontSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("size must be a number")
	}
	if n < minFontSize || n > maxFontSize {
		return 0, fmt.Errorf("size must be between %d and %d", minFontSize, maxFontSize)
	}
	return n, nil
}

func (e *FontEditor) setFocus(f fontField) tea.Cmd {
	e.focus = f
	if f == fieldSize {
		e.size.CursorEnd()
		return e.size.Focus()
	}
	e.size.Blur()
	return nil
}

// Update handles messages while the editor is visible.
func (e *FontEditor) Update(msg tea.Msg) (*FontEditor, tea.Cmd) {
	if !e.visible {
		return e, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		e.size, cmd = e.size.Update(msg)
		return e, cmd
	}

	switch {
	case key.Matches(keyMsg, dialogCancel):
		e.Hide()
		return e, nil
	case keyMsg.String() == "tab":
		return e, e.setFocus((e.focus + 1) % fontFieldCount)
	case keyMsg.String() == "shift+tab":
		return e, e.setFocus((e.focus + fontFieldCount - 1) % fontFieldCount)
	}

	var cmd tea.Cmd
	switch e.focus {
	case fieldFamily:
		e.families, cmd = e.families.Update(keyMsg)
	case fieldSize:
		if key.Matches(keyMsg, dialogEnter) {
			return e, e.setFocus(fieldOK)
		}
		e.size, cmd = e.size.Update(keyMsg)
	case fieldBold:
		if key.Matches(keyMsg, fontToggle) {
			e.bold = !e.bold
		}
	case fieldItalic:
		if key.Matches(keyMsg, fontToggle) {
			e.italic = !e.italic
		}
	case fieldOK:
		if key.Matches(keyMsg, dialogEnter) {
			if _, err := parseFontSize(e.size.Value()); err != nil {
				e.errMsg = err.Error()
				return e, e.setFocus(fieldSize)
			}
			e.Hide()
			return e, acceptDesign(e.design.WithFont(e.Font()))
		}
	case fieldCancel:
		if key.Matches(keyMsg, dialogEnter) {
			e.Hide()
		}
	}
	return e, cmd
}

// View renders the dialog using chrome for its frame.
func (e *FontEditor) View(chrome design.Design) string {
	if !e.visible {
		return ""
	}
	base := chrome.Base()
	label := func(f fontField, s string) string {
		if e.focus == f {
			return chrome.MenuSelected().Render(s)
		}
		return base.Render(s)
	}
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}

	lines := []string{
		base.Bold(true).Render("Font"),
		"",
		label(fieldFamily, "Family"),
		e.families.View(),
		label(fieldSize, "Size") + base.Render(" ") + e.size.View(),
		label(fieldBold, check(e.bold)+" Bold") + base.Render("  ") + label(fieldItalic, check(e.italic)+" Italic"),
		"",
		renderButtons(chrome, []string{"OK", "Cancel"}, int(e.focus-fieldOK)),
	}
	if e.errMsg != "" {
		lines = append(lines, base.Foreground(chrome.ErrorColor).Render(e.errMsg))
	}
	preview := e.design.WithFont(e.Font())
	lines = append(lines, "", preview.Base().Render("Sample: "+preview.Font.String()))
	lines = append(lines, base.Faint(true).Render("tab next · space toggle · esc cancel"))

	return dialogBox(chrome).Render(strings.Join(lines, "\n"))
}
