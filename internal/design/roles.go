package design

import "github.com/charmbracelet/lipgloss"

// Role names one of the six editable colors of a Design.
type Role string

const (
	RoleBack      Role = "back"
	RoleText      Role = "text"
	RoleSuccess   Role = "success"
	RoleError     Role = "error"
	RoleWarning   Role = "warning"
	RoleHighlight Role = "highlight"
)

// Roles lists every color role in palette-editor order.
var Roles = []Role{RoleBack, RoleText, RoleSuccess, RoleError, RoleWarning, RoleHighlight}

// Label returns the caption shown next to the role in editors.
func (r Role) Label() string {
	switch r {
	case RoleBack:
		return "Background"
	case RoleText:
		return "Text"
	case RoleSuccess:
		return "Success"
	case RoleError:
		return "Error"
	case RoleWarning:
		return "Warning"
	case RoleHighlight:
		return "Highlight"
	default:
		return string(r)
	}
}

// ParseRole maps a role name to a Role.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Color returns the color assigned to role. Unknown roles yield "".
func (d Design) Color(role Role) lipgloss.Color {
	switch role {
	case RoleBack:
		return d.BackColor
	case RoleText:
		return d.TextColor
	case RoleSuccess:
		return d.SuccessColor
	case RoleError:
		return d.ErrorColor
	case RoleWarning:
		return d.WarningColor
	case RoleHighlight:
		return d.HighlightColor
	}
	return ""
}

// WithColor returns a copy of d with role set to c. Unknown roles leave d unchanged.
func (d Design) WithColor(role Role, c lipgloss.Color) Design {
	switch role {
	case RoleBack:
		return d.WithBackColor(c)
	case RoleText:
		return d.WithTextColor(c)
	case RoleSuccess:
		return d.WithSuccessColor(c)
	case RoleError:
		return d.WithErrorColor(c)
	case RoleWarning:
		return d.WithWarningColor(c)
	case RoleHighlight:
		return d.WithHighlightColor(c)
	}
	return d
}
