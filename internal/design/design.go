package design

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Default palette, matching the classic dark console look.
const (
	DefaultBackColor      = lipgloss.Color("#333333")
	DefaultTextColor      = lipgloss.Color("#dddddd")
	DefaultErrorColor     = lipgloss.Color("#ff3000")
	DefaultSuccessColor   = lipgloss.Color("#30ff00")
	DefaultWarningColor   = lipgloss.Color("#ff8000")
	DefaultHighlightColor = lipgloss.Color("#3030ff")

	DefaultFontFamily = "Monospace"
	DefaultFontSize   = 10
)

// Font describes the typeface used to render terminal text.
// Terminals cannot switch families, so Family and Size are carried for
// persistence and display only; Bold and Italic are applied when rendering.
type Font struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
	Bold   bool   `yaml:"bold,omitempty"`
	Italic bool   `yaml:"italic,omitempty"`
}

// String returns a short human-readable description, e.g. "Monospace 10pt bold".
func (f Font) String() string {
	s := fmt.Sprintf("%s %dpt", f.Family, f.Size)
	if f.Bold {
		s += " bold"
	}
	if f.Italic {
		s += " italic"
	}
	return s
}

// Design bundles the colors and font a terminal renders with.
//
// Design is a value type. Every With* method returns a modified copy, so a
// Design handed to an editor can never alter the one a terminal is rendering
// until it is explicitly applied.
type Design struct {
	BackColor      lipgloss.Color `yaml:"back_color"`
	TextColor      lipgloss.Color `yaml:"text_color"`
	Font           Font           `yaml:"font"`
	ErrorColor     lipgloss.Color `yaml:"error_color"`
	SuccessColor   lipgloss.Color `yaml:"success_color"`
	WarningColor   lipgloss.Color `yaml:"warning_color"`
	HighlightColor lipgloss.Color `yaml:"highlight_color"`
}

// Default returns the stock design.
func Default() Design {
	return Design{
		BackColor:      DefaultBackColor,
		TextColor:      DefaultTextColor,
		Font:           Font{Family: DefaultFontFamily, Size: DefaultFontSize},
		ErrorColor:     DefaultErrorColor,
		SuccessColor:   DefaultSuccessColor,
		WarningColor:   DefaultWarningColor,
		HighlightColor: DefaultHighlightColor,
	}
}

func (d Design) WithBackColor(c lipgloss.Color) Design      { d.BackColor = c; return d }
func (d Design) WithTextColor(c lipgloss.Color) Design      { d.TextColor = c; return d }
func (d Design) WithFont(f Font) Design                     { d.Font = f; return d }
func (d Design) WithErrorColor(c lipgloss.Color) Design     { d.ErrorColor = c; return d }
func (d Design) WithSuccessColor(c lipgloss.Color) Design   { d.SuccessColor = c; return d }
func (d Design) WithWarningColor(c lipgloss.Color) Design   { d.WarningColor = c; return d }
func (d Design) WithHighlightColor(c lipgloss.Color) Design { d.HighlightColor = c; return d }

// Validate reports the first color that is not a valid hex color.
func (d Design) Validate() error {
	for _, role := range Roles {
		if _, err := ParseColor(string(d.Color(role))); err != nil {
			return fmt.Errorf("%s: %w", role, err)
		}
	}
	if d.Font.Size <= 0 {
		return fmt.Errorf("font size must be positive, got %d", d.Font.Size)
	}
	return nil
}

// Normalize fills zero-valued fields from the default design. It is used
// when loading partially written settings files.
func (d Design) Normalize() Design {
	def := Default()
	for _, role := range Roles {
		if d.Color(role) == "" {
			d = d.WithColor(role, def.Color(role))
		}
	}
	if d.Font.Family == "" {
		d.Font.Family = def.Font.Family
	}
	if d.Font.Size <= 0 {
		d.Font.Size = def.Font.Size
	}
	return d
}

// ParseColor validates a hex color string ("#rrggbb" or "#rgb") and returns
// it in canonical lowercase "#rrggbb" form.
func ParseColor(s string) (lipgloss.Color, error) {
	c, err := colorful.Hex(expandShortHex(s))
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return lipgloss.Color(c.Hex()), nil
}

// Darker returns c darkened by factor the way a value-scaling "darker"
// works: factor 2 halves the brightness. Invalid colors are returned as-is.
func Darker(c lipgloss.Color, factor float64) lipgloss.Color {
	if factor <= 0 {
		return c
	}
	col, err := colorful.Hex(expandShortHex(string(c)))
	if err != nil {
		return c
	}
	h, s, v := col.Hsv()
	return lipgloss.Color(colorful.Hsv(h, s, v/factor).Clamped().Hex())
}

func expandShortHex(s string) string {
	if len(s) == 4 && s[0] == '#' {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s
}
