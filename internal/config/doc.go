// Package config provides user configuration management for textterm.
//
// This package manages a YAML-based configuration file that stores the
// terminal design (palette and font) and application preferences. The file
// follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/textterm/config.yaml or $HOME/.config/textterm/config.yaml
//   - macOS: $HOME/.config/textterm/config.yaml
//   - Windows: %LOCALAPPDATA%\textterm\config.yaml
//
// Every function taking a path falls back to this location when the path is
// empty, so the --config flag and tests can point elsewhere.
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.SetDesign(settings.CurrentDesign().WithErrorColor("#ff0000"))
//	if err := settings.Save(""); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// File operations are protected by a mutex and saves are atomic
// (temporary file plus rename).
package config
