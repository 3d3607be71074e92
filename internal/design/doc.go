// Package design holds the Design value: the palette and font a terminal
// renders with.
//
// A Design is replaced wholesale, never patched in place. Editors receive a
// copy, build a new value with the With* methods and hand it back; the
// terminal then swaps its snapshot and re-renders every cell from it.
//
//	d := design.Default().
//	    WithErrorColor("#ff0000").
//	    WithFont(design.Font{Family: "Monospace", Size: 12, Bold: true})
//	term.SetDesign(d)
//
// Colors are lipgloss hex colors; go-colorful is used to validate them and
// to derive the darker shades used for menu chrome.
package design
