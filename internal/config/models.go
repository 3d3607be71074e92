package config

import "github.com/muurk/textterm/internal/design"

// CurrentVersion is the settings file format version written by Save.
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version     int            `yaml:"version"`
	Design      *design.Design `yaml:"design,omitempty"`
	Preferences *Preferences   `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	Title     string `yaml:"title"`              // Window title shown in the menu bar
	AltScreen bool   `yaml:"alt_screen"`         // Run full-screen in the alternate buffer
	LogLevel  string `yaml:"log_level,omitempty"` // Default log level when no flag/env is given
	LogFile   string `yaml:"log_file,omitempty"`  // Log destination (defaults to the config directory)
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	d := design.Default()
	return &Settings{
		Version: CurrentVersion,
		Design:  &d,
		Preferences: &Preferences{
			Title:     "textterm",
			AltScreen: true,
		},
	}
}

// CurrentDesign returns the stored design, filling gaps from the defaults.
func (s *Settings) CurrentDesign() design.Design {
	if s.Design == nil {
		return design.Default()
	}
	return s.Design.Normalize()
}

// SetDesign stores a copy of d.
func (s *Settings) SetDesign(d design.Design) {
	s.Design = &d
}

// ResetDesign restores the default design.
func (s *Settings) ResetDesign() {
	s.SetDesign(design.Default())
}
